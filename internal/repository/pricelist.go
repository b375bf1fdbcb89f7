package repository

import (
	"context"
	"log/slog"

	"entgo.io/ent/dialect/sql"

	"github.com/Zoli1212/awsflow/gen/ent"
	"github.com/Zoli1212/awsflow/gen/ent/pricelist"
	"github.com/Zoli1212/awsflow/gen/ent/tenantpricelist"
	"github.com/Zoli1212/awsflow/internal/entity"
)

// PriceListRepository reads the two price catalogs. Both lists are
// reference data from the offer pipeline's point of view; nothing here
// mutates them.
type PriceListRepository interface {
	// ListTenantEntries returns the tenant-private rows, optionally
	// restricted to a category set. A nil category set means all rows.
	ListTenantEntries(ctx context.Context, tenantEmail string, categories []string) ([]entity.PriceEntry, error)
	// ListGlobalEntries returns the shared rows visible to every tenant.
	ListGlobalEntries(ctx context.Context, categories []string) ([]entity.PriceEntry, error)
	// TenantTaskExists reports whether the tenant catalog holds a row with
	// the given task name, regardless of category.
	TenantTaskExists(ctx context.Context, tenantEmail, task string) (bool, error)
}

type priceListRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPriceListRepository(client *ent.Client, logger *slog.Logger) PriceListRepository {
	return &priceListRepository{
		client: client,
		logger: logger,
	}
}

func (r *priceListRepository) ListTenantEntries(ctx context.Context, tenantEmail string, categories []string) ([]entity.PriceEntry, error) {
	q := r.client.TenantPriceList.Query().
		Where(tenantpricelist.TenantEmail(tenantEmail))
	if categories != nil {
		if len(categories) == 0 {
			return nil, nil
		}
		q = q.Where(tenantpricelist.CategoryIn(categories...))
	}
	rows, err := q.
		Order(tenantpricelist.ByCategory(sql.OrderAsc()), tenantpricelist.ByTask(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list tenant price entries", "tenant", tenantEmail, "error", err)
		return nil, err
	}

	result := make([]entity.PriceEntry, len(rows))
	for i, row := range rows {
		result[i] = entity.PriceEntry{
			Category:     row.Category,
			Task:         row.Task,
			Unit:         row.Unit,
			LaborCost:    row.LaborCost,
			MaterialCost: row.MaterialCost,
		}
	}
	return result, nil
}

func (r *priceListRepository) ListGlobalEntries(ctx context.Context, categories []string) ([]entity.PriceEntry, error) {
	q := r.client.PriceList.Query()
	if categories != nil {
		if len(categories) == 0 {
			return nil, nil
		}
		q = q.Where(pricelist.CategoryIn(categories...))
	}
	rows, err := q.
		Order(pricelist.ByCategory(sql.OrderAsc()), pricelist.ByTask(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list global price entries", "error", err)
		return nil, err
	}

	result := make([]entity.PriceEntry, len(rows))
	for i, row := range rows {
		result[i] = entity.PriceEntry{
			Category:     row.Category,
			Task:         row.Task,
			Unit:         row.Unit,
			LaborCost:    row.LaborCost,
			MaterialCost: row.MaterialCost,
		}
	}
	return result, nil
}

func (r *priceListRepository) TenantTaskExists(ctx context.Context, tenantEmail, task string) (bool, error) {
	exists, err := r.client.TenantPriceList.Query().
		Where(
			tenantpricelist.TenantEmail(tenantEmail),
			tenantpricelist.Task(task),
		).
		Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check tenant task existence", "tenant", tenantEmail, "task", task, "error", err)
		return false, err
	}
	return exists, nil
}
