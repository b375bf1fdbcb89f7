package entity

import (
	"time"

	"github.com/google/uuid"
)

// History is one recorded user action; statistics count these per user.
type History struct {
	ID          uuid.UUID `json:"id"`
	UserEmail   string    `json:"user_email"`
	TenantEmail string    `json:"tenant_email"`
	Content     string    `json:"content"`
	AIAgentType *string   `json:"ai_agent_type,omitempty"`
	FileType    *string   `json:"file_type,omitempty"`
	FileName    *string   `json:"file_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
