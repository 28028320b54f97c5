package response

// MeResponse is the internal-user identity decoded from the bearer token.
type MeResponse struct {
	UID      string   `json:"uid"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Picture  string   `json:"picture"`
	TenantID string   `json:"tenant_id"`
	Roles    []string `json:"roles"`
}
