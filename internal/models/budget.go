package models

// BudgetCategory is one line of the wedding budget
type BudgetCategory struct {
	Name     string `json:"name" yaml:"name"`
	Budgeted int    `json:"budgeted" yaml:"budgeted"`
	Spent    int    `json:"spent" yaml:"spent"`
	Color    string `json:"color" yaml:"color"`
}

// BudgetPlan is the whole wedding budget document. Spent may exceed
// Budgeted; nothing enforces it.
type BudgetPlan struct {
	TotalBudget int              `json:"totalBudget" yaml:"totalBudget"`
	Categories  []BudgetCategory `json:"categories" yaml:"categories"`
}
