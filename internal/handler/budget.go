package handler

import (
	"context"
	"slices"

	"github.com/rs/zerolog"

	"hallbook/internal/filter"
	"hallbook/internal/logging"
	"hallbook/internal/models"
	"hallbook/internal/storage"
)

// BudgetController manages the wedding budget. Spent amounts may exceed
// the budgeted amount of a category.
type BudgetController struct {
	deps Deps
	log  zerolog.Logger
}

func NewBudgetController(deps Deps) *BudgetController {
	return &BudgetController{
		deps: deps,
		log:  logging.Component(deps.Log, "budget"),
	}
}

// Plan returns the persisted budget plan
func (c *BudgetController) Plan(ctx context.Context) models.BudgetPlan {
	return storage.Load(ctx, c.deps.Store, storage.SlotWeddingBudget, c.deps.Catalog.DefaultBudget())
}

// Summary returns the totals and per-category usage of the persisted plan
func (c *BudgetController) Summary(ctx context.Context) filter.BudgetSummary {
	return filter.SummarizeBudget(c.Plan(ctx))
}

// SetSpent records the amount spent in the named category. Unknown
// categories and negative amounts are no-ops.
func (c *BudgetController) SetSpent(ctx context.Context, category string, amount int) (models.BudgetPlan, bool) {
	if amount < 0 {
		return c.Plan(ctx), false
	}

	plan, changed, err := storage.Update(ctx, c.deps.Store, storage.SlotWeddingBudget, c.deps.Catalog.DefaultBudget(),
		func(plan models.BudgetPlan) (models.BudgetPlan, bool) {
			i := slices.IndexFunc(plan.Categories, func(bc models.BudgetCategory) bool { return bc.Name == category })
			if i < 0 {
				return plan, false
			}
			plan.Categories = slices.Clone(plan.Categories)
			plan.Categories[i].Spent = amount
			return plan, true
		})
	if !applied(c.log, changed, err, "set spent") {
		return plan, false
	}

	c.log.Info().Str("category", category).Int("spent", amount).Msg("Budget spend updated")
	return plan, true
}

// SetTotal replaces the total budget. Negative amounts are no-ops.
func (c *BudgetController) SetTotal(ctx context.Context, amount int) (models.BudgetPlan, bool) {
	if amount < 0 {
		return c.Plan(ctx), false
	}

	plan, changed, err := storage.Update(ctx, c.deps.Store, storage.SlotWeddingBudget, c.deps.Catalog.DefaultBudget(),
		func(plan models.BudgetPlan) (models.BudgetPlan, bool) {
			plan.TotalBudget = amount
			return plan, true
		})
	return plan, applied(c.log, changed, err, "set total budget")
}
