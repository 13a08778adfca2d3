package summary

// Totals are the aggregate amounts of one period, in minor units.
type Totals struct {
	Income    int64
	Expenses  int64
	Remaining int64
}

// Summary is the dashboard payload for one period.
type Summary struct {
	RemainingAmount int64           `json:"remainingAmount"`
	RemainingChange float64         `json:"remainingChange"`
	IncomeAmount    int64           `json:"incomeAmount"`
	IncomeChange    float64         `json:"incomeChange"`
	ExpensesAmount  int64           `json:"expensesAmount"`
	ExpensesChange  float64         `json:"expensesChange"`
	Categories      []CategoryTotal `json:"categories"`
	Days            []DayTotal      `json:"days"`
}

// Build assembles a Summary from the raw store results. categories must be
// ordered by descending magnitude and days may be sparse.
func Build(p Period, current, previous Totals, categories []CategoryTotal, days []DayTotal) *Summary {
	return &Summary{
		RemainingAmount: current.Remaining,
		RemainingChange: PercentageChange(current.Remaining, previous.Remaining),
		IncomeAmount:    current.Income,
		IncomeChange:    PercentageChange(current.Income, previous.Income),
		ExpensesAmount:  current.Expenses,
		ExpensesChange:  PercentageChange(current.Expenses, previous.Expenses),
		Categories:      RollupCategories(categories),
		Days:            FillMissingDays(days, p.Start, p.End),
	}
}
