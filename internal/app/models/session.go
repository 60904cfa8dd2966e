package models

// Session is the redis-backed payload referenced by the JWT a client
// holds. Role is either constvars.RolePatient or constvars.RoleDoctor.
type Session struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Role      string `json:"role"`
}
