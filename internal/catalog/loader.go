package catalog

import (
	"context"
	"log/slog"

	"github.com/Zoli1212/awsflow/internal/entity"
	"github.com/Zoli1212/awsflow/internal/repository"
)

// TaskCatalog is the unpriced, priority-ordered view handed to the prompt
// assembler: tenant rows first, global rows second.
type TaskCatalog struct {
	Tenant []entity.TaskRef
	Global []entity.TaskRef
}

// Empty reports whether neither tier has any row.
func (tc TaskCatalog) Empty() bool {
	return len(tc.Tenant) == 0 && len(tc.Global) == 0
}

// PricedCatalog is the priced, per-tier view used by reconciliation.
type PricedCatalog struct {
	Tenant PriceMap
	Global PriceMap
}

// Loader reads the two price lists and produces the merged and per-tier
// views the offer pipeline needs.
type Loader struct {
	repo   repository.PriceListRepository
	cache  *Cache
	logger *slog.Logger
}

func NewLoader(repo repository.PriceListRepository, cache *Cache, logger *slog.Logger) *Loader {
	return &Loader{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// TaskCatalog loads every tenant and global task (no prices) for the prompt.
// The result is cached per tenant; price-list edits show up after the TTL.
func (l *Loader) TaskCatalog(ctx context.Context, tenantEmail string) (TaskCatalog, error) {
	key := CacheKey(tenantEmail, nil)
	if v, ok := l.cache.Get(key); ok {
		return v.(TaskCatalog), nil
	}

	tenant, err := l.repo.ListTenantEntries(ctx, tenantEmail, nil)
	if err != nil {
		return TaskCatalog{}, err
	}
	global, err := l.repo.ListGlobalEntries(ctx, nil)
	if err != nil {
		return TaskCatalog{}, err
	}

	tc := TaskCatalog{
		Tenant: toTaskRefs(tenant, "tenant"),
		Global: toTaskRefs(global, "global"),
	}
	l.cache.Put(key, tc)
	l.logger.Info("task catalog loaded",
		"tenant", tenantEmail,
		"tenant_tasks", len(tc.Tenant),
		"global_tasks", len(tc.Global),
	)
	return tc, nil
}

// PricedCatalog loads priced rows scoped to the categories the model used.
// Always reads through: reconciliation must see current prices.
func (l *Loader) PricedCatalog(ctx context.Context, tenantEmail string, categories []string) (PricedCatalog, error) {
	if categories == nil {
		categories = []string{}
	}
	tenant, err := l.repo.ListTenantEntries(ctx, tenantEmail, categories)
	if err != nil {
		return PricedCatalog{}, err
	}
	global, err := l.repo.ListGlobalEntries(ctx, categories)
	if err != nil {
		return PricedCatalog{}, err
	}

	pc := PricedCatalog{
		Tenant: NewPriceMap(tenant),
		Global: NewPriceMap(global),
	}
	l.logger.Info("priced catalog loaded",
		"tenant", tenantEmail,
		"categories", len(categories),
		"tenant_rows", len(tenant),
		"global_rows", len(global),
	)
	return pc, nil
}

// Merged returns the tenant-over-global union for the given categories.
func (l *Loader) Merged(ctx context.Context, tenantEmail string, categories []string) (PriceMap, error) {
	pc, err := l.PricedCatalog(ctx, tenantEmail, categories)
	if err != nil {
		return nil, err
	}
	merged := make(PriceMap, len(pc.Tenant)+len(pc.Global))
	for k, v := range pc.Global {
		merged[k] = v
	}
	for k, v := range pc.Tenant {
		merged[k] = v
	}
	return merged, nil
}

func toTaskRefs(entries []entity.PriceEntry, source string) []entity.TaskRef {
	refs := make([]entity.TaskRef, len(entries))
	for i, e := range entries {
		refs[i] = entity.TaskRef{
			Category: e.Category,
			Task:     e.Task,
			Unit:     e.Unit,
			Source:   source,
		}
	}
	return refs
}
