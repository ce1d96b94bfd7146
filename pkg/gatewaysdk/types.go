package gatewaysdk

// ScopeItem is the backend's wire shape for one data-access scope.
type ScopeItem struct {
	ScopeName string `json:"scope_name"`
	Enabled   bool   `json:"enabled"`
}

// AdminProfile is the admin account returned by the login endpoint.
type AdminProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

// LoginData is the payload of a successful admin login.
type LoginData struct {
	Token string       `json:"token"`
	Admin AdminProfile `json:"admin"`
}

// loginRequest is the admin login body.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// scopesUpdateRequest is the body for replacing a partner's scope set.
type scopesUpdateRequest struct {
	Scopes []ScopeItem `json:"scopes"`
}

// HealthResponse is returned by the console's health check endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks contains individual dependency check results.
type HealthChecks struct {
	Database string `json:"database"`
	Backend  string `json:"backend"`
}
