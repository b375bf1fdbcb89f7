package offers

import (
	"context"
	"fmt"
	"math"

	"github.com/Zoli1212/awsflow/internal/catalog"
	"github.com/Zoli1212/awsflow/internal/common"
	"github.com/Zoli1212/awsflow/internal/entity"
	"github.com/Zoli1212/awsflow/internal/repository"
)

// ConvertItem is one already-priced line from a legacy offer document.
type ConvertItem struct {
	Name              string  `json:"name"`
	Quantity          float64 `json:"quantity"`
	Unit              string  `json:"unit"`
	UnitPrice         float64 `json:"unitPrice"`
	TotalPrice        float64 `json:"totalPrice"`
	MaterialUnitPrice float64 `json:"materialUnitPrice,omitempty"`
	MaterialTotal     float64 `json:"materialTotal,omitempty"`
	WorkTotal         float64 `json:"workTotal,omitempty"`
	Description       string  `json:"description,omitempty"`
}

// ConvertRequest imports a legacy offer into the Work → Requirement → Offer
// chain without running the model pipeline.
type ConvertRequest struct {
	TenantEmail   string
	Title         string
	Location      string
	CustomerName  string
	EstimatedTime string
	Description   string
	OfferSummary  string
	TotalPrice    float64
	Items         []ConvertItem
	Notes         []string
}

// ConvertResult identifies the three created records.
type ConvertResult struct {
	WorkID        string `json:"myWorkId"`
	RequirementID string `json:"requirementId"`
	OfferID       string `json:"offerId"`
}

// Convert imports a legacy offer. Unlike Generate, failures surface as
// plain errors. Every monetary field is rounded per item up front; the
// aggregates are summed from those rounded values and rounded once more.
// Items whose cleaned name is missing from the tenant price list get the
// new flag, the cleaned name, and an entry in the generated notes block.
func (s *Service) Convert(ctx context.Context, req ConvertRequest) (*ConvertResult, error) {
	if err := validateConvertRequest(req); err != nil {
		return nil, err
	}
	s.logger.Info("offer.convert.start", "tenant", req.TenantEmail, "items", len(req.Items))

	var (
		lines         []entity.OfferItem
		newTaskNames  []string
		materialTotal float64
		workTotal     float64
	)
	for _, item := range req.Items {
		cleaned := catalog.CleanTaskName(item.Name)

		line := entity.OfferItem{
			Name:              item.Name,
			Unit:              item.Unit,
			Quantity:          item.Quantity,
			UnitPrice:         math.Round(item.UnitPrice),
			MaterialUnitPrice: math.Round(item.MaterialUnitPrice),
			WorkTotal:         math.Round(item.WorkTotal),
			MaterialTotal:     math.Round(item.MaterialTotal),
			TotalPrice:        math.Round(item.TotalPrice),
			Description:       item.Description,
		}

		exists, err := s.pricelists.TenantTaskExists(ctx, req.TenantEmail, cleaned)
		if err != nil {
			return nil, fmt.Errorf("check tenant price list for %q: %w", cleaned, err)
		}
		if !exists {
			line.Name = cleaned
			line.New = true
			newTaskNames = append(newTaskNames, cleaned)
		}

		lines = append(lines, line)
		materialTotal += line.MaterialTotal
		workTotal += line.WorkTotal
	}

	workTitle := req.Title
	if req.Location != "" {
		workTitle = req.Title + " - " + req.Location
	}
	customerName := req.CustomerName
	if customerName == "" {
		customerName = "Új ügyfél"
	}
	duration := req.EstimatedTime
	if duration == "" {
		duration = "1-2 nap"
	}

	notes := BuildConversionNotes(req.Notes, newTaskNames)
	bundle := &repository.OfferBundle{
		TenantEmail: req.TenantEmail,

		WorkTitle:    workTitle,
		Location:     req.Location,
		CustomerName: customerName,
		Duration:     duration,

		RequirementTitle:       "Követelmény - " + req.Title,
		RequirementDescription: "Meglévő ajánlatból konvertálva.\n\n" + req.Description,
		QuestionCount:          0,

		OfferTitle:              req.Title,
		Description:             req.Description,
		Notes:                   optionalString(notes),
		OfferSummary:            optionalString(req.OfferSummary),
		Items:                   lines,
		TotalPrice:              math.Round(req.TotalPrice),
		MaterialTotal:           math.Round(materialTotal),
		WorkTotal:               math.Round(workTotal),
		IsConvertedFromExisting: true,
	}

	result, err := s.works.CreateOfferBundle(ctx, bundle)
	if err != nil {
		return nil, err
	}

	s.logger.Info("offer.convert.done",
		"tenant", req.TenantEmail,
		"offer_id", result.Offer.ID,
		"new_items", len(newTaskNames),
	)
	return &ConvertResult{
		WorkID:        result.Work.ID.String(),
		RequirementID: result.Requirement.ID.String(),
		OfferID:       result.Offer.ID.String(),
	}, nil
}

func validateConvertRequest(req ConvertRequest) error {
	v := common.NewValidator()
	v.Field("tenantEmail", req.TenantEmail, common.Required, common.Email)
	v.Field("title", req.Title, common.Required)
	return common.ValidateAndReturnError(v)
}
