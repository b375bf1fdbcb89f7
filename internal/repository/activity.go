package repository

import (
	"context"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/Zoli1212/awsflow/gen/ent"
	"github.com/Zoli1212/awsflow/gen/ent/billing"
	"github.com/Zoli1212/awsflow/gen/ent/history"
	"github.com/Zoli1212/awsflow/gen/ent/offer"
	"github.com/Zoli1212/awsflow/gen/ent/work"
	"github.com/Zoli1212/awsflow/internal/entity"
)

// ActivityRepository serves the statistics dashboard: history rows are
// matched on either user_email or tenant_email, record counts are matched
// on tenant_email only.
type ActivityRepository interface {
	CountHistory(ctx context.Context, email string) (int, error)
	LastActivity(ctx context.Context, email string) (*time.Time, error)
	RecentHistory(ctx context.Context, email string, limit int) ([]*entity.History, error)
	CountOffers(ctx context.Context, tenantEmail string) (int, error)
	CountWorks(ctx context.Context, tenantEmail string) (int, error)
	CountBillings(ctx context.Context, tenantEmail string) (int, error)
}

type activityRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewActivityRepository(client *ent.Client, logger *slog.Logger) ActivityRepository {
	return &activityRepository{
		client: client,
		logger: logger,
	}
}

func (r *activityRepository) CountHistory(ctx context.Context, email string) (int, error) {
	n, err := r.client.History.Query().
		Where(history.Or(
			history.UserEmail(email),
			history.TenantEmail(email),
		)).
		Count(ctx)
	if err != nil {
		r.logger.Error("failed to count history", "email", email, "error", err)
		return 0, err
	}
	return n, nil
}

func (r *activityRepository) LastActivity(ctx context.Context, email string) (*time.Time, error) {
	row, err := r.client.History.Query().
		Where(history.Or(
			history.UserEmail(email),
			history.TenantEmail(email),
		)).
		Order(history.ByCreatedAt(sql.OrderDesc())).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to fetch last activity", "email", email, "error", err)
		return nil, err
	}
	t := row.CreatedAt
	return &t, nil
}

func (r *activityRepository) RecentHistory(ctx context.Context, email string, limit int) ([]*entity.History, error) {
	rows, err := r.client.History.Query().
		Where(history.Or(
			history.UserEmail(email),
			history.TenantEmail(email),
		)).
		Order(history.ByCreatedAt(sql.OrderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list recent history", "email", email, "error", err)
		return nil, err
	}

	result := make([]*entity.History, len(rows))
	for i, row := range rows {
		result[i] = &entity.History{
			ID:          row.ID,
			UserEmail:   row.UserEmail,
			TenantEmail: row.TenantEmail,
			Content:     row.Content,
			AIAgentType: row.AiAgentType,
			FileType:    row.FileType,
			FileName:    row.FileName,
			CreatedAt:   row.CreatedAt,
		}
	}
	return result, nil
}

func (r *activityRepository) CountOffers(ctx context.Context, tenantEmail string) (int, error) {
	return r.client.Offer.Query().
		Where(offer.TenantEmail(tenantEmail)).
		Count(ctx)
}

func (r *activityRepository) CountWorks(ctx context.Context, tenantEmail string) (int, error) {
	return r.client.Work.Query().
		Where(work.TenantEmail(tenantEmail)).
		Count(ctx)
}

func (r *activityRepository) CountBillings(ctx context.Context, tenantEmail string) (int, error) {
	return r.client.Billing.Query().
		Where(billing.TenantEmail(tenantEmail)).
		Count(ctx)
}
