package entity

import (
	"time"

	"github.com/google/uuid"
)

// Work represents a "my work" record for data transfer between layers.
// It is the root of the Work → Requirement → Offer chain.
type Work struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Location     string    `json:"location"`
	CustomerName string    `json:"customer_name"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"`
	TotalPrice   float64   `json:"total_price"`
	TenantEmail  string    `json:"tenant_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
