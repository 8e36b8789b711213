package domain

import "time"

// User models a principal in the platform: a regular member or a production
// company. Both share one identity record distinguished by the Role tag;
// authorization only ever consults the projection below (id, username, email,
// role, suspension state).
type User struct {
	ID              string     `json:"id"`
	Username        string     `json:"username"`
	Email           string     `json:"email,omitempty"`
	PasswordHash    string     `json:"-"`
	Role            Role       `json:"role"`
	DisplayName     string     `json:"display_name,omitempty"`
	SuspendedUntil  *time.Time `json:"suspended_until,omitempty"`
	SuspendedReason string     `json:"suspended_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
