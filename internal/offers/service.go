package offers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Zoli1212/awsflow/constants"
	"github.com/Zoli1212/awsflow/internal/catalog"
	"github.com/Zoli1212/awsflow/internal/common"
	"github.com/Zoli1212/awsflow/internal/entity"
	"github.com/Zoli1212/awsflow/internal/llm"
	"github.com/Zoli1212/awsflow/internal/rag"
	"github.com/Zoli1212/awsflow/internal/repository"
)

// GenerateRequest is one offer-generation call for a tenant.
type GenerateRequest struct {
	TenantEmail string
	UserInput   string
	// ExistingItems lets a caller regenerate against an offer already in
	// progress; the model is told not to duplicate them.
	ExistingItems []entity.OfferItem
}

// GenerateResult is the outward shape of a generation call. Failures are
// reported in-band: Success=false plus the error text, never a partial
// record set.
type GenerateResult struct {
	Success       bool               `json:"success"`
	Error         string             `json:"error,omitempty"`
	WorkID        string             `json:"workId,omitempty"`
	RequirementID string             `json:"requirementId,omitempty"`
	OfferID       string             `json:"offerId,omitempty"`
	Offer         *llm.OfferDraft    `json:"offer,omitempty"`
	Items         []entity.OfferItem `json:"items,omitempty"`
}

// Service orchestrates the offer pipeline: prompt assembly, model
// invocation, reconciliation against the price catalogs, and the atomic
// Work → Requirement → Offer write.
type Service struct {
	catalogs   *catalog.Loader
	generator  llm.OfferGenerator
	works      repository.WorkRepository
	pricelists repository.PriceListRepository
	augmenter  rag.Augmenter
	ragEnabled bool
	logger     *slog.Logger
}

func NewService(
	catalogs *catalog.Loader,
	generator llm.OfferGenerator,
	works repository.WorkRepository,
	pricelists repository.PriceListRepository,
	augmenter rag.Augmenter,
	ragEnabled bool,
	logger *slog.Logger,
) *Service {
	return &Service{
		catalogs:   catalogs,
		generator:  generator,
		works:      works,
		pricelists: pricelists,
		augmenter:  augmenter,
		ragEnabled: ragEnabled,
		logger:     logger,
	}
}

// Generate runs the full pipeline. Any failure after input validation is
// folded into the result rather than returned, matching the contract that
// callers always get a well-formed envelope.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) GenerateResult {
	if err := validateGenerateRequest(req); err != nil {
		return GenerateResult{Success: false, Error: err.Error()}
	}

	result, draft, items, err := s.generate(ctx, req)
	if err != nil {
		s.logger.Error("offer generation failed", "tenant", req.TenantEmail, "error", err)
		return GenerateResult{Success: false, Error: err.Error()}
	}

	return GenerateResult{
		Success:       true,
		WorkID:        result.Work.ID.String(),
		RequirementID: result.Requirement.ID.String(),
		OfferID:       result.Offer.ID.String(),
		Offer:         &draft,
		Items:         items,
	}
}

func (s *Service) generate(ctx context.Context, req GenerateRequest) (*repository.OfferBundleResult, llm.OfferDraft, []entity.OfferItem, error) {
	start := time.Now()
	s.logger.Info("offer.generate.start", "tenant", req.TenantEmail, "input_len", len(req.UserInput))

	composed := llm.ComposeUserInput(req.UserInput, req.ExistingItems)
	composed = rag.Enhance(ctx, s.augmenter, s.ragEnabled, composed, req.UserInput, s.logger)

	tc, err := s.catalogs.TaskCatalog(ctx, req.TenantEmail)
	if err != nil {
		return nil, llm.OfferDraft{}, nil, fmt.Errorf("load task catalog: %w", err)
	}
	composed = llm.AppendCatalogSection(composed, tc.Tenant, tc.Global)

	draft, _, err := s.generator.GenerateOffer(ctx, llm.GenerateRequest{UserInput: composed})
	if err != nil {
		return nil, llm.OfferDraft{}, nil, err
	}

	pc, err := s.catalogs.PricedCatalog(ctx, req.TenantEmail, itemCategories(draft.Items))
	if err != nil {
		return nil, llm.OfferDraft{}, nil, fmt.Errorf("load priced catalog: %w", err)
	}

	rec := Reconcile(draft.Items, pc)
	if len(rec.Unmatched) > 0 {
		estimates, err := s.generator.EstimatePrices(ctx, rec.Unmatched)
		if err != nil {
			// Estimation is best-effort: unpriced items drop out of the offer.
			s.logger.Warn("price estimation failed, dropping unmatched items",
				"tenant", req.TenantEmail,
				"unmatched", len(rec.Unmatched),
				"error", err,
			)
		} else {
			rec.ApplyEstimates(estimates)
		}
	}

	notes := BuildNotes(draft.Location, req.UserInput, rec.Unmatched, draft.Questions)
	bundle := &repository.OfferBundle{
		TenantEmail: req.TenantEmail,

		WorkTitle:    draft.Title,
		Location:     draft.Location,
		CustomerName: draft.CustomerName,
		Duration:     draft.EstimatedTime,

		RequirementTitle:       "Követelmény - " + draft.Title,
		RequirementDescription: req.UserInput,
		QuestionCount:          len(draft.Questions),

		OfferTitle:    draft.Title,
		Description:   notes,
		Notes:         optionalString(notes),
		OfferSummary:  optionalString(draft.OfferSummary),
		Items:         rec.Lines,
		TotalPrice:    rec.TotalPrice(),
		MaterialTotal: rec.RoundedMaterialTotal(),
		WorkTotal:     rec.RoundedWorkTotal(),
		ValidUntil:    time.Now().AddDate(0, 0, constants.OfferValidityDays),
	}

	result, err := s.works.CreateOfferBundle(ctx, bundle)
	if err != nil {
		return nil, llm.OfferDraft{}, nil, err
	}

	s.logger.Info("offer.generate.done",
		"tenant", req.TenantEmail,
		"offer_id", result.Offer.ID,
		"items", len(rec.Lines),
		"custom_items", len(rec.Unmatched),
		"total_price", bundle.TotalPrice,
		"duration", time.Since(start),
	)
	return result, draft, rec.Lines, nil
}

func validateGenerateRequest(req GenerateRequest) error {
	v := common.NewValidator()
	v.Field("tenantEmail", req.TenantEmail, common.Required, common.Email)
	v.Field("userInput", req.UserInput, common.Required)
	return common.ValidateAndReturnError(v)
}

// itemCategories collects the distinct non-empty categories the model used,
// preserving first-seen order.
func itemCategories(items []llm.ProposedItem) []string {
	seen := make(map[string]struct{}, len(items))
	categories := make([]string, 0, len(items))
	for _, item := range items {
		if item.Category == "" {
			continue
		}
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	return categories
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
