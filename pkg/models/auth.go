package models

// CredentialKind tags how a request authenticated.
type CredentialKind string

const (
	CredentialJWT    CredentialKind = "jwt"
	CredentialAPIKey CredentialKind = "api_key"
)

// UserContext is the authenticated identity attached to a request. JWT and
// API-key authentication both produce this one shape.
type UserContext struct {
	Subject     string         `json:"subject"`
	Username    string         `json:"username"`
	Email       string         `json:"email,omitempty"`
	Roles       []string       `json:"roles,omitempty"`
	Permissions []string       `json:"permissions,omitempty"`
	Credential  CredentialKind `json:"credential"`
}

// HasPermission reports whether the context carries the named permission.
// JWT-authenticated users pass all permission checks; API keys are scoped to
// their configured permission list.
func (u UserContext) HasPermission(name string) bool {
	if u.Credential == CredentialJWT {
		return true
	}
	for _, p := range u.Permissions {
		if p == name || p == "*" {
			return true
		}
	}
	return false
}
