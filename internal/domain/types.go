package domain

import "strings"

// Role is the access level of an authenticated caller.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole accepts the known roles case-insensitively.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	}
	return "", false
}

// Principal is the authenticated caller of a request.
type Principal struct {
	Subject string `json:"subject,omitempty"`
	Role    Role   `json:"role"`
}
