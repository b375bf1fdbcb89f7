package entity

import (
	"time"

	"github.com/google/uuid"
)

// OfferItem is one priced line inside an offer. Monetary fields are whole
// currency units at rest; New marks lines absent from the tenant catalog
// when the offer was created.
type OfferItem struct {
	Name              string  `json:"name"`
	Unit              string  `json:"unit"`
	Quantity          float64 `json:"quantity"`
	UnitPrice         float64 `json:"unitPrice"`
	MaterialUnitPrice float64 `json:"materialUnitPrice"`
	WorkTotal         float64 `json:"workTotal"`
	MaterialTotal     float64 `json:"materialTotal"`
	TotalPrice        float64 `json:"totalPrice"`
	Source            string  `json:"source"`
	New               bool    `json:"new"`
	Description       string  `json:"description,omitempty"`
}

// Offer represents a priced quote for data transfer between layers.
type Offer struct {
	ID                      uuid.UUID   `json:"id"`
	RequirementID           uuid.UUID   `json:"requirement_id"`
	RecordID                string      `json:"record_id"`
	Title                   string      `json:"title"`
	Status                  string      `json:"status"`
	Description             string      `json:"description"`
	Location                string      `json:"location"`
	TotalPrice              float64     `json:"total_price"`
	MaterialTotal           float64     `json:"material_total"`
	WorkTotal               float64     `json:"work_total"`
	Items                   []OfferItem `json:"items"`
	Notes                   *string     `json:"notes,omitempty"`
	OfferSummary            *string     `json:"offer_summary,omitempty"`
	EstimatedDuration       string      `json:"estimated_duration"`
	ValidUntil              time.Time   `json:"valid_until"`
	IsConvertedFromExisting bool        `json:"is_converted_from_existing"`
	TenantEmail             string      `json:"tenant_email"`
	CreatedAt               time.Time   `json:"created_at"`
	UpdatedAt               time.Time   `json:"updated_at"`
}
