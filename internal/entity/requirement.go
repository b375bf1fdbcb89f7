package entity

import (
	"time"

	"github.com/google/uuid"
)

// Requirement represents the customer's stated need, owned by one Work.
type Requirement struct {
	ID            uuid.UUID `json:"id"`
	WorkID        uuid.UUID `json:"work_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	VersionNumber int       `json:"version_number"`
	UpdateCount   int       `json:"update_count"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
