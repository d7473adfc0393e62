package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waddlebot/waddlebot-core/pkg/config"
	"github.com/waddlebot/waddlebot-core/pkg/models"
)

func testAuthenticator() *Authenticator {
	return NewAuthenticator(
		config.JWTConfig{Secret: testJWTSecret, Algorithm: "HS256", ExpirationSeconds: 3600},
		NewAPIKeyRegistry(map[string]APIKeyRecord{
			"good-key": {Name: "collector", Permissions: []string{"events:write"}},
		}),
	)
}

func authRequest(headers map[string]string) *http.Request {
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func TestJWTAuthentication(t *testing.T) {
	a := testAuthenticator()

	token := signedToken(t, jwt.MapClaims{
		"sub":      "user-1",
		"username": "penguin",
		"email":    "penguin@example.com",
		"roles":    []any{"admin", "streamer"},
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	user, err := a.authenticate(authRequest(map[string]string{"Authorization": "Bearer " + token}))
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.Subject)
	assert.Equal(t, "penguin", user.Username)
	assert.Equal(t, "penguin@example.com", user.Email)
	assert.Equal(t, []string{"admin", "streamer"}, user.Roles)
	assert.Equal(t, models.CredentialJWT, user.Credential)
	assert.True(t, user.HasPermission("anything"), "JWT users pass all permission checks")
}

func TestJWTRejections(t *testing.T) {
	a := testAuthenticator()

	t.Run("expired token", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{
			"sub": "user-1",
			"exp": time.Now().Add(-time.Minute).Unix(),
		})
		_, err := a.authenticate(authRequest(map[string]string{"Authorization": "Bearer " + token}))
		assert.Error(t, err)
	})

	t.Run("wrong signature", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "user-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("some-other-secret"))
		require.NoError(t, err)
		_, err = a.authenticate(authRequest(map[string]string{"Authorization": "Bearer " + token}))
		assert.Error(t, err)
	})

	t.Run("unsigned algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"sub": "user-1",
			"exp": time.Now().Add(time.Hour).Unix(),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = a.authenticate(authRequest(map[string]string{"Authorization": "Bearer " + token}))
		assert.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
		_, err := a.authenticate(authRequest(map[string]string{"Authorization": "Bearer " + token}))
		assert.Error(t, err)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		_, err := a.authenticate(authRequest(map[string]string{"Authorization": "Basic dXNlcjpwYXNz"}))
		assert.Error(t, err)
	})
}

func TestAPIKeyAuthentication(t *testing.T) {
	a := testAuthenticator()

	user, err := a.authenticate(authRequest(map[string]string{"X-API-Key": "good-key"}))
	require.NoError(t, err)
	assert.Equal(t, "collector", user.Subject)
	assert.Equal(t, models.CredentialAPIKey, user.Credential)
	assert.True(t, user.HasPermission("events:write"))
	assert.False(t, user.HasPermission("manage"), "API keys are scoped to their permission list")

	_, err = a.authenticate(authRequest(map[string]string{"X-API-Key": "bad-key"}))
	assert.Error(t, err)
}

func TestMissingCredentials(t *testing.T) {
	a := testAuthenticator()
	_, err := a.authenticate(authRequest(nil))
	assert.Error(t, err)
}

func TestAuthMiddlewareRejectsWithEnvelope(t *testing.T) {
	fx := setupAPI(t)

	rec := fx.request(t, http.MethodGet, "/api/v1/commands", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	envelope := decodeError(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "unauthorized", envelope.Error.Code)
}

func TestParseAPIKeys(t *testing.T) {
	keys := ParseAPIKeys("collector:k1:events:write, admin:k2:manage|events:write ,bare:k3,:broken")

	rec, ok := keys["k1"]
	require.True(t, ok)
	assert.Equal(t, "collector", rec.Name)
	assert.Equal(t, []string{"events:write"}, rec.Permissions)

	rec, ok = keys["k2"]
	require.True(t, ok)
	assert.Equal(t, []string{"manage", "events:write"}, rec.Permissions)

	rec, ok = keys["k3"]
	require.True(t, ok)
	assert.Empty(t, rec.Permissions)

	assert.Len(t, keys, 3)
}
