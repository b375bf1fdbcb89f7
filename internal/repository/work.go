package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Zoli1212/awsflow/gen/ent"
	"github.com/Zoli1212/awsflow/internal/entity"
)

// OfferBundle carries everything needed to persist one generated offer:
// the Work root, its Requirement, and the Offer itself. The three rows are
// written in a single transaction — a partially created chain must never be
// observable.
type OfferBundle struct {
	TenantEmail string

	WorkTitle    string
	Location     string
	CustomerName string
	Duration     string

	RequirementTitle       string
	RequirementDescription string
	QuestionCount          int

	OfferTitle              string
	Description             string
	Notes                   *string
	OfferSummary            *string
	Items                   []entity.OfferItem
	TotalPrice              float64
	MaterialTotal           float64
	WorkTotal               float64
	ValidUntil              time.Time
	IsConvertedFromExisting bool
}

// OfferBundleResult holds the three created records.
type OfferBundleResult struct {
	Work        *entity.Work
	Requirement *entity.Requirement
	Offer       *entity.Offer
}

type WorkRepository interface {
	// CreateOfferBundle writes Work → Requirement → Offer atomically.
	CreateOfferBundle(ctx context.Context, bundle *OfferBundle) (*OfferBundleResult, error)
}

type workRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewWorkRepository(client *ent.Client, logger *slog.Logger) WorkRepository {
	return &workRepository{
		client: client,
		logger: logger,
	}
}

func (r *workRepository) CreateOfferBundle(ctx context.Context, bundle *OfferBundle) (*OfferBundleResult, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		r.logger.Error("failed to open transaction", "tenant", bundle.TenantEmail, "error", err)
		return nil, err
	}

	result, err := r.createBundle(ctx, tx, bundle)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		r.logger.Error("offer bundle write failed", "tenant", bundle.TenantEmail, "error", err)
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		r.logger.Error("failed to commit offer bundle", "tenant", bundle.TenantEmail, "error", err)
		return nil, err
	}

	r.logger.Info("offer bundle created",
		"tenant", bundle.TenantEmail,
		"work_id", result.Work.ID,
		"requirement_id", result.Requirement.ID,
		"offer_id", result.Offer.ID,
	)
	return result, nil
}

func (r *workRepository) createBundle(ctx context.Context, tx *ent.Tx, bundle *OfferBundle) (*OfferBundleResult, error) {
	work, err := tx.Work.Create().
		SetTitle(bundle.WorkTitle).
		SetLocation(bundle.Location).
		SetCustomerName(bundle.CustomerName).
		SetDate(time.Now()).
		SetTime(bundle.Duration).
		SetTotalPrice(bundle.TotalPrice).
		SetTenantEmail(bundle.TenantEmail).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create work: %w", err)
	}

	requirement, err := tx.Requirement.Create().
		SetWorkID(work.ID).
		SetTitle(bundle.RequirementTitle).
		SetDescription(bundle.RequirementDescription).
		SetVersionNumber(1).
		SetUpdateCount(1).
		SetQuestionCount(bundle.QuestionCount).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create requirement: %w", err)
	}

	offerBuilder := tx.Offer.Create().
		SetRequirementID(requirement.ID).
		SetRecordID(uuid.NewString()).
		SetTitle(bundle.OfferTitle).
		SetStatus("draft").
		SetDescription(bundle.Description).
		SetLocation(bundle.Location).
		SetTotalPrice(bundle.TotalPrice).
		SetMaterialTotal(bundle.MaterialTotal).
		SetWorkTotal(bundle.WorkTotal).
		SetItems(bundle.Items).
		SetEstimatedDuration(bundle.Duration).
		SetIsConvertedFromExisting(bundle.IsConvertedFromExisting).
		SetTenantEmail(bundle.TenantEmail)
	if !bundle.ValidUntil.IsZero() {
		offerBuilder = offerBuilder.SetValidUntil(bundle.ValidUntil)
	}
	if bundle.Notes != nil {
		offerBuilder = offerBuilder.SetNotes(*bundle.Notes)
	}
	if bundle.OfferSummary != nil {
		offerBuilder = offerBuilder.SetOfferSummary(*bundle.OfferSummary)
	}
	offer, err := offerBuilder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}

	return &OfferBundleResult{
		Work:        toWork(work),
		Requirement: toRequirement(requirement),
		Offer:       toOffer(offer),
	}, nil
}

func toWork(w *ent.Work) *entity.Work {
	return &entity.Work{
		ID:           w.ID,
		Title:        w.Title,
		Location:     w.Location,
		CustomerName: w.CustomerName,
		Date:         w.Date,
		Time:         w.Time,
		TotalPrice:   w.TotalPrice,
		TenantEmail:  w.TenantEmail,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

func toRequirement(r *ent.Requirement) *entity.Requirement {
	return &entity.Requirement{
		ID:            r.ID,
		WorkID:        r.WorkID,
		Title:         r.Title,
		Description:   r.Description,
		VersionNumber: r.VersionNumber,
		UpdateCount:   r.UpdateCount,
		QuestionCount: r.QuestionCount,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toOffer(o *ent.Offer) *entity.Offer {
	return &entity.Offer{
		ID:                      o.ID,
		RequirementID:           o.RequirementID,
		RecordID:                o.RecordID,
		Title:                   o.Title,
		Status:                  o.Status,
		Description:             o.Description,
		Location:                o.Location,
		TotalPrice:              o.TotalPrice,
		MaterialTotal:           o.MaterialTotal,
		WorkTotal:               o.WorkTotal,
		Items:                   o.Items,
		Notes:                   o.Notes,
		OfferSummary:            o.OfferSummary,
		EstimatedDuration:       o.EstimatedDuration,
		ValidUntil:              o.ValidUntil,
		IsConvertedFromExisting: o.IsConvertedFromExisting,
		TenantEmail:             o.TenantEmail,
		CreatedAt:               o.CreatedAt,
		UpdatedAt:               o.UpdatedAt,
	}
}
