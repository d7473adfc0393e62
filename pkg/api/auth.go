package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	echo "github.com/labstack/echo/v5"

	"github.com/waddlebot/waddlebot-core/pkg/config"
	"github.com/waddlebot/waddlebot-core/pkg/models"
)

const userContextKey = "waddlebot.user"

// APIKeyRecord names an issued key and its permission scope.
type APIKeyRecord struct {
	Name        string
	Permissions []string
}

// APIKeyRegistry holds the issued API keys. Keys are static for the process
// lifetime; rotation is a restart.
type APIKeyRegistry struct {
	keys map[string]APIKeyRecord
}

// NewAPIKeyRegistry creates a registry over the given key table.
func NewAPIKeyRegistry(keys map[string]APIKeyRecord) *APIKeyRegistry {
	if keys == nil {
		keys = make(map[string]APIKeyRecord)
	}
	return &APIKeyRegistry{keys: keys}
}

// Lookup returns the record for key.
func (r *APIKeyRegistry) Lookup(key string) (APIKeyRecord, bool) {
	rec, ok := r.keys[key]
	return rec, ok
}

// ParseAPIKeys parses the API_KEYS env format:
// "name:key:perm|perm,name2:key2:perm" — permissions optional.
func ParseAPIKeys(raw string) map[string]APIKeyRecord {
	keys := make(map[string]APIKeyRecord)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		rec := APIKeyRecord{Name: parts[0]}
		if len(parts) == 3 && parts[2] != "" {
			rec.Permissions = strings.Split(parts[2], "|")
		}
		keys[parts[1]] = rec
	}
	return keys
}

// Authenticator validates bearer JWTs and API keys. Both paths produce the
// same UserContext.
type Authenticator struct {
	cfg  config.JWTConfig
	keys *APIKeyRegistry
}

// NewAuthenticator creates an authenticator from the JWT settings and key
// registry.
func NewAuthenticator(cfg config.JWTConfig, keys *APIKeyRegistry) *Authenticator {
	if keys == nil {
		keys = NewAPIKeyRegistry(nil)
	}
	return &Authenticator{cfg: cfg, keys: keys}
}

// Middleware authenticates the request and attaches the UserContext.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			user, err := a.authenticate(c.Request())
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}
			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

func (a *Authenticator) authenticate(req *http.Request) (models.UserContext, error) {
	if auth := req.Header.Get("Authorization"); auth != "" {
		raw, found := strings.CutPrefix(auth, "Bearer ")
		if !found {
			return models.UserContext{}, fmt.Errorf("authorization header must be a bearer token")
		}
		return a.verifyJWT(raw)
	}

	if key := req.Header.Get("X-API-Key"); key != "" {
		rec, ok := a.keys.Lookup(key)
		if !ok {
			return models.UserContext{}, fmt.Errorf("unknown api key")
		}
		return models.UserContext{
			Subject:     rec.Name,
			Username:    rec.Name,
			Permissions: rec.Permissions,
			Credential:  models.CredentialAPIKey,
		}, nil
	}

	return models.UserContext{}, fmt.Errorf("missing credentials")
}

// verifyJWT validates signature, algorithm, and expiry, then maps the claims.
func (a *Authenticator) verifyJWT(raw string) (models.UserContext, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte(a.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{a.cfg.Algorithm}))
	if err != nil {
		return models.UserContext{}, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.UserContext{}, fmt.Errorf("invalid token claims")
	}

	user := models.UserContext{Credential: models.CredentialJWT}
	user.Subject, _ = claims["sub"].(string)
	user.Username, _ = claims["username"].(string)
	user.Email, _ = claims["email"].(string)
	if user.Subject == "" {
		return models.UserContext{}, fmt.Errorf("token missing subject")
	}
	if user.Username == "" {
		user.Username = user.Subject
	}
	if roles, ok := claims["roles"].([]any); ok {
		for _, r := range roles {
			if s, ok := r.(string); ok {
				user.Roles = append(user.Roles, s)
			}
		}
	}
	return user, nil
}

// currentUser returns the authenticated identity set by the middleware.
func currentUser(c *echo.Context) models.UserContext {
	user, _ := c.Get(userContextKey).(models.UserContext)
	return user
}

// requirePermission rejects API keys lacking the named permission. JWT
// users pass every permission check.
func requirePermission(c *echo.Context, name string) error {
	if !currentUser(c).HasPermission(name) {
		return echo.NewHTTPError(http.StatusForbidden, fmt.Sprintf("requires %s permission", name))
	}
	return nil
}
