package domain

import "github.com/shopspring/decimal"

// Budget caps spending in one category. Spent is a cached aggregate: it starts
// from the seed snapshot and grows with every manual expense in the category.
type Budget struct {
	Category Category        `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Spent    decimal.Decimal `json:"spent"`
}

// Utilization is spent as a percentage of limit. Unbounded is set when the
// limit is zero but something was spent, in which case Percent is zero.
type Utilization struct {
	Percent   decimal.Decimal `json:"percent"`
	Unbounded bool            `json:"unbounded"`
}

// BudgetLevel is the status shown on the budget manager cards
type BudgetLevel string

const (
	BudgetLevelOnTrack BudgetLevel = "on_track"
	BudgetLevelWarning BudgetLevel = "warning"
	BudgetLevelOver    BudgetLevel = "over"
)

// BudgetTone is the colour band used by the dashboard progress bars
type BudgetTone string

const (
	BudgetToneHealthy  BudgetTone = "healthy"
	BudgetToneCaution  BudgetTone = "caution"
	BudgetToneCritical BudgetTone = "critical"
)

// Thresholds in percent
var (
	BudgetWarningThreshold  = decimal.NewFromInt(80)
	BudgetOverThreshold     = decimal.NewFromInt(100)
	BudgetCautionThreshold  = decimal.NewFromInt(70)
	BudgetCriticalThreshold = decimal.NewFromInt(90)
)

// BudgetStatus is a budget together with its derived figures
type BudgetStatus struct {
	Budget
	Utilization Utilization     `json:"utilization"`
	Level       BudgetLevel     `json:"level"`
	Tone        BudgetTone      `json:"tone"`
	Remaining   decimal.Decimal `json:"remaining"`
}
