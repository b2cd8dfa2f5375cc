package models

// Session is the process-wide authentication state
type Session struct {
	Token           string `json:"token"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	User            *User  `json:"user,omitempty"`
}
