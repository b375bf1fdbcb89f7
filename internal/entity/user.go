package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account for data transfer between layers.
type User struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	IsSuperUser bool       `json:"is_super_user"`
	IsTenant    bool       `json:"is_tenant"`
	InvitedBy   *string    `json:"invited_by,omitempty"`
	TrialEndsAt *time.Time `json:"trial_ends_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UserStatistics is a User joined with its activity aggregate for the
// superuser dashboard.
type UserStatistics struct {
	User
	ActivityCount int        `json:"activity_count"`
	LastActivity  *time.Time `json:"last_activity,omitempty"`
}
