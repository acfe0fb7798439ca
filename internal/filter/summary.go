package filter

import "hallbook/internal/models"

// GuestStats counts the guest list by flag
type GuestStats struct {
	Total     int `json:"total"`
	Invited   int `json:"invited"`
	Confirmed int `json:"confirmed"`
}

// SummarizeGuests counts invited and confirmed guests independently
func SummarizeGuests(guests []models.Guest) GuestStats {
	stats := GuestStats{Total: len(guests)}
	for _, g := range guests {
		if g.Invited {
			stats.Invited++
		}
		if g.Confirmed {
			stats.Confirmed++
		}
	}
	return stats
}

// UsageLevel grades how much of a budget line has been spent
type UsageLevel string

const (
	UsageOK      UsageLevel = "ok"
	UsageWarning UsageLevel = "warning"
	UsageOver    UsageLevel = "over"
)

// Thresholds, in percent used, above which a category is graded
const (
	WarningPercent = 70
	OverPercent    = 90
)

// CategoryUsage is the spend ratio of one budget category
type CategoryUsage struct {
	models.BudgetCategory
	Percent float64    `json:"percent"`
	Level   UsageLevel `json:"level"`
}

// BudgetSummary is the derived view of a BudgetPlan
type BudgetSummary struct {
	TotalBudget int             `json:"totalBudget"`
	Allocated   int             `json:"allocated"`
	Spent       int             `json:"spent"`
	Remaining   int             `json:"remaining"`
	Categories  []CategoryUsage `json:"categories"`
}

// SummarizeBudget totals the plan and grades each category. Remaining is
// measured against the total budget and may be negative.
func SummarizeBudget(plan models.BudgetPlan) BudgetSummary {
	sum := BudgetSummary{
		TotalBudget: plan.TotalBudget,
		Categories:  make([]CategoryUsage, 0, len(plan.Categories)),
	}
	for _, c := range plan.Categories {
		sum.Allocated += c.Budgeted
		sum.Spent += c.Spent

		pct := percentUsed(c.Spent, c.Budgeted)
		sum.Categories = append(sum.Categories, CategoryUsage{
			BudgetCategory: c,
			Percent:        pct,
			Level:          levelFor(pct),
		})
	}
	sum.Remaining = plan.TotalBudget - sum.Spent
	return sum
}

func percentUsed(spent, budgeted int) float64 {
	if budgeted <= 0 {
		return 0
	}
	return float64(spent) / float64(budgeted) * 100
}

func levelFor(pct float64) UsageLevel {
	switch {
	case pct > OverPercent:
		return UsageOver
	case pct > WarningPercent:
		return UsageWarning
	default:
		return UsageOK
	}
}
