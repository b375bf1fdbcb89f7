package llm

//go:generate mockgen -destination=mocks/generator.go -package=mocks github.com/Zoli1212/awsflow/internal/llm OfferGenerator

import "context"

// ProposedItem is one line item as proposed by the model, before any
// catalog reconciliation. Source classifies which catalog tier the model
// claims to have picked from.
type ProposedItem struct {
	Task         string  `json:"task"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	Quantity     float64 `json:"quantity"`
	Source       string  `json:"source"`
	CustomTask   bool    `json:"customTask"`
	CustomReason string  `json:"customReason,omitempty"`
}

// OfferDraft is the normalized shape we want from the generation call.
type OfferDraft struct {
	Title         string         `json:"title"`
	Location      string         `json:"location"`
	CustomerName  string         `json:"customerName"`
	EstimatedTime string         `json:"estimatedTime"`
	OfferSummary  string         `json:"offerSummary,omitempty"`
	Items         []ProposedItem `json:"items"`
	Questions     []string       `json:"questions,omitempty"`
}

// PriceEstimate is one row from the price-estimation call.
type PriceEstimate struct {
	Task         string  `json:"task"`
	LaborCost    float64 `json:"laborCost"`
	MaterialCost float64 `json:"materialCost"`
}

// GenerateRequest carries the fully assembled user instruction for the
// generation call. Prompt text is built by this package; the client only
// ships it.
type GenerateRequest struct {
	UserInput string // composed instruction (requirement + catalog section)
}

// OfferGenerator is the interface the offer pipeline depends on.
type OfferGenerator interface {
	// GenerateOffer runs the main generation call and returns the parsed
	// draft plus the raw JSON content it was decoded from.
	GenerateOffer(ctx context.Context, req GenerateRequest) (OfferDraft, []byte, error)
	// EstimatePrices runs the cheaper estimation call for items with no
	// catalog match. Callers treat its failure as non-fatal.
	EstimatePrices(ctx context.Context, items []ProposedItem) ([]PriceEstimate, error)
}
