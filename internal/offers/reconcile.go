package offers

import (
	"math"

	"github.com/Zoli1212/awsflow/constants"
	"github.com/Zoli1212/awsflow/internal/catalog"
	"github.com/Zoli1212/awsflow/internal/entity"
	"github.com/Zoli1212/awsflow/internal/llm"
)

// ReconcileResult carries the priced lines, the items still needing a price,
// and the running aggregate sums. WorkSum and MaterialSum accumulate the
// unrounded per-line products; only the offer-level totals get rounded.
type ReconcileResult struct {
	Lines       []entity.OfferItem
	Unmatched   []llm.ProposedItem
	WorkSum     float64
	MaterialSum float64
}

// TotalPrice returns the rounded offer-level total.
func (r *ReconcileResult) TotalPrice() float64 {
	return math.Round(r.WorkSum + r.MaterialSum)
}

// RoundedWorkTotal returns the rounded offer-level labor sum.
func (r *ReconcileResult) RoundedWorkTotal() float64 {
	return math.Round(r.WorkSum)
}

// RoundedMaterialTotal returns the rounded offer-level material sum.
func (r *ReconcileResult) RoundedMaterialTotal() float64 {
	return math.Round(r.MaterialSum)
}

// Reconcile matches each proposed item against the priced catalogs.
// Tenant-sourced items fall back to the global catalog when the tenant has
// no row for the key; global-sourced items match the global catalog only;
// custom items skip the lookup entirely and join the unmatched list.
func Reconcile(items []llm.ProposedItem, pc catalog.PricedCatalog) *ReconcileResult {
	result := &ReconcileResult{}

	for _, item := range items {
		source := constants.NormalizeItemSource(item.Source)
		task := catalog.CleanTaskName(item.Task)

		var (
			match entity.PriceEntry
			found bool
		)
		switch source {
		case constants.SourceTenant:
			match, found = pc.Tenant.Lookup(item.Category, task)
			if !found {
				match, found = pc.Global.Lookup(item.Category, task)
			}
		case constants.SourceGlobal:
			match, found = pc.Global.Lookup(item.Category, task)
		}

		if !found {
			result.Unmatched = append(result.Unmatched, item)
			continue
		}

		unit := item.Unit
		if unit == "" {
			unit = match.Unit
		}
		result.addLine(task, unit, item.Quantity, match.LaborCost, match.MaterialCost, source, false)
	}
	return result
}

// ApplyEstimates converts estimated unmatched items into priced lines.
// Items with no estimate row stay absent from the offer; so do all of them
// when the estimation call failed and estimates is nil.
func (r *ReconcileResult) ApplyEstimates(estimates []llm.PriceEstimate) {
	byTask := make(map[string]llm.PriceEstimate, len(estimates))
	for _, e := range estimates {
		byTask[e.Task] = e
	}

	for _, item := range r.Unmatched {
		est, ok := byTask[item.Task]
		if !ok {
			continue
		}
		r.addLine(item.Task, item.Unit, item.Quantity, est.LaborCost, est.MaterialCost, constants.SourceCustom, true)
	}
}

// addLine appends one priced line. Line-level monetary fields are rounded
// here, at the persistence boundary; the aggregate sums stay unrounded.
func (r *ReconcileResult) addLine(name, unit string, quantity, laborCost, materialCost float64, source constants.ItemSource, isNew bool) {
	workTotal := laborCost * quantity
	materialTotal := materialCost * quantity

	r.Lines = append(r.Lines, entity.OfferItem{
		Name:              name,
		Unit:              unit,
		Quantity:          quantity,
		UnitPrice:         math.Round(laborCost),
		MaterialUnitPrice: math.Round(materialCost),
		WorkTotal:         math.Round(workTotal),
		MaterialTotal:     math.Round(materialTotal),
		TotalPrice:        math.Round(workTotal + materialTotal),
		Source:            string(source),
		New:               isNew,
	})
	r.WorkSum += workTotal
	r.MaterialSum += materialTotal
}
