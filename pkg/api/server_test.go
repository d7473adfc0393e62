package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waddlebot/waddlebot-core/pkg/config"
	"github.com/waddlebot/waddlebot-core/pkg/models"
	"github.com/waddlebot/waddlebot-core/pkg/router"
	"github.com/waddlebot/waddlebot-core/pkg/stream"
)

const testJWTSecret = "test-secret-for-api"

type apiFixture struct {
	server *Server
	rdb    *redis.Client
	topics stream.Topics
}

func setupAPI(t *testing.T) *apiFixture {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})

	streamClient := stream.NewClient(rdb, config.StreamConfig{
		Enabled:    true,
		Prefix:     "events",
		DLQPrefix:  "dlq",
		MaxRetries: 3,
		BatchSize:  10,
		BlockMS:    20,
		MaxLen:     10000,
	})
	topics := stream.NewTopics("events")

	registry := router.NewRegistry()
	registry.Register(router.Trigger{Kind: router.TriggerCommand, Pattern: "!song", Module: "music"})
	registry.Register(router.Trigger{Kind: router.TriggerCommand, Pattern: "!help", Module: "help"})

	jwtCfg := config.JWTConfig{Secret: testJWTSecret, Algorithm: "HS256", ExpirationSeconds: 3600}
	auth := NewAuthenticator(jwtCfg, NewAPIKeyRegistry(map[string]APIKeyRecord{
		"collector-key": {Name: "twitch-collector", Permissions: []string{"events:write"}},
		"admin-key":     {Name: "admin", Permissions: []string{"*"}},
	}))

	cfg := &config.Config{JWT: jwtCfg}
	server := NewServer(cfg, nil, streamClient, topics, registry, auth)

	return &apiFixture{server: server, rdb: rdb, topics: topics}
}

func (f *apiFixture) request(t *testing.T, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, req)
	return rec
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func bearerHeaders(t *testing.T) map[string]string {
	return map[string]string{"Authorization": "Bearer " + signedToken(t, jwt.MapClaims{
		"sub":      "user-1",
		"username": "penguin",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorEnvelope {
	t.Helper()
	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestPostEventAcceptedAndPublished(t *testing.T) {
	fx := setupAPI(t)

	body := `{"platform":"twitch","message_type":"chatMessage","user_id":"u1","username":"penguin","channel_id":"chan-1","message":"!song next"}`
	rec := fx.request(t, http.MethodPost, "/api/v1/events", body, map[string]string{"X-API-Key": "collector-key"})
	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp EventAcceptedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Accepted)
	assert.NotEmpty(t, resp.SessionID)

	msgs, err := fx.rdb.XRange(context.Background(), fx.topics.Inbound(), "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	var envelope models.EventEnvelope
	require.NoError(t, json.Unmarshal([]byte(msgs[0].Values["data"].(string)), &envelope))
	assert.Equal(t, resp.SessionID, envelope.SessionID)
	assert.Equal(t, "!song next", envelope.Message)
	assert.False(t, envelope.ReceivedAt.IsZero())
}

func TestPostEventValidation(t *testing.T) {
	fx := setupAPI(t)
	headers := map[string]string{"X-API-Key": "collector-key"}

	cases := []struct {
		name string
		body string
	}{
		{"unknown platform", `{"platform":"myspace","message_type":"chatMessage","user_id":"u1","channel_id":"c1"}`},
		{"unknown message type", `{"platform":"twitch","message_type":"telegraph","user_id":"u1","channel_id":"c1"}`},
		{"missing user id", `{"platform":"twitch","message_type":"chatMessage","channel_id":"c1"}`},
		{"missing channel id", `{"platform":"twitch","message_type":"chatMessage","user_id":"u1"}`},
		{"malformed json", `{not json`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := fx.request(t, http.MethodPost, "/api/v1/events", tc.body, headers)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			envelope := decodeError(t, rec)
			assert.False(t, envelope.Success)
			assert.Equal(t, "bad_request", envelope.Error.Code)
			assert.False(t, envelope.Error.Timestamp.IsZero())
		})
	}

	msgs, err := fx.rdb.XRange(context.Background(), fx.topics.Inbound(), "-", "+").Result()
	require.NoError(t, err)
	assert.Empty(t, msgs, "rejected events must not reach the stream")
}

func TestPostResponseForwardedToStream(t *testing.T) {
	fx := setupAPI(t)

	body := `{"session_id":"sess-1","module_name":"music","success":true,"response_action":"chat_message","response_data":{"text":"now playing"}}`
	rec := fx.request(t, http.MethodPost, "/api/v1/responses", body, bearerHeaders(t))
	require.Equal(t, http.StatusAccepted, rec.Code)

	msgs, err := fx.rdb.XRange(context.Background(), fx.topics.Responses(), "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	var resp models.ModuleResponse
	require.NoError(t, json.Unmarshal([]byte(msgs[0].Values["data"].(string)), &resp))
	assert.Equal(t, "sess-1", resp.SessionID)
	assert.Equal(t, "music", resp.ModuleName)
}

func TestPostResponseRequiresIdentity(t *testing.T) {
	fx := setupAPI(t)

	rec := fx.request(t, http.MethodPost, "/api/v1/responses", `{"module_name":"music"}`, bearerHeaders(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = fx.request(t, http.MethodPost, "/api/v1/responses", `{"session_id":"s1"}`, bearerHeaders(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCommands(t *testing.T) {
	fx := setupAPI(t)

	rec := fx.request(t, http.MethodGet, "/api/v1/commands?platform=twitch", "", bearerHeaders(t))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CommandListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "twitch", resp.Platform)
	require.Len(t, resp.Commands, 2)
	assert.Equal(t, "!help", resp.Commands[0].Command)
	assert.Equal(t, "!song", resp.Commands[1].Command)

	rec = fx.request(t, http.MethodGet, "/api/v1/commands?platform=myspace", "", bearerHeaders(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthUnauthenticated(t *testing.T) {
	fx := setupAPI(t)

	rec := fx.request(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, healthStatusHealthy, resp.Status)
	assert.Equal(t, healthStatusHealthy, resp.Checks["stream"].Status)
}

func TestManagementEndpointsUnavailableWithoutServices(t *testing.T) {
	fx := setupAPI(t)

	rec := fx.request(t, http.MethodGet, "/api/v1/gateways?community_id=c1", "", bearerHeaders(t))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unavailable", decodeError(t, rec).Error.Code)
}
