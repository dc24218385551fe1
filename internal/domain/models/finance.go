package models

// UserStatus is the backend's view of a chat user.
type UserStatus struct {
	Registered bool   `json:"registered"`
	Language   string `json:"language"`
}

// Goal is a savings goal as reported by the backend. Amounts are integer
// minor currency units.
type Goal struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	AmountTotal int64  `json:"amount_total"`
	AmountSaved int64  `json:"amount_saved"`
	Deadline    string `json:"deadline"`
	IsPrimary   bool   `json:"is_primary"`
	Priority    int    `json:"priority"`
	Status      string `json:"status"`
}

// Percent returns the goal's progress in whole percent, 0 when no target set.
func (g Goal) Percent() int {
	if g.AmountTotal <= 0 {
		return 0
	}
	return int(g.AmountSaved * 100 / g.AmountTotal)
}

// Budget is the recalculated monthly budget.
type Budget struct {
	Month      string `json:"month"`
	Income     int64  `json:"income"`
	Expenses   int64  `json:"expenses"`
	DailyLimit int64  `json:"recommended_daily_limit"`
	Exists     bool   `json:"exists"`
}

// TransactionItem is a single transaction in a daily listing.
type TransactionItem struct {
	Amount      int64  `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// DailyStats is the day's transactions with totals.
type DailyStats struct {
	Date    string            `json:"date"`
	Income  int64             `json:"income"`
	Expense int64             `json:"expense"`
	Items   []TransactionItem `json:"items"`
}

// SmartSaveResult is the outcome of the backend's smart-save computation.
// A non-"success" status with a recognised code means no usable amount was
// produced and the local fallback advisor may run.
type SmartSaveResult struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	SafeSave int64  `json:"safe_save"`
	Goal     *Goal  `json:"goal"`
}

// Insight is an AI-produced summary with an optional recommendation.
type Insight struct {
	Summary        string `json:"summary"`
	Recommendation string `json:"recommendation"`
	Text           string `json:"insight"`
}

// GoalAnalysis is the AI assessment of a single goal.
type GoalAnalysis struct {
	Summary        string         `json:"summary"`
	Recommendation string         `json:"recommendation"`
	Numbers        map[string]int `json:"numbers"`
}

// UserFlags drives menu availability; every flag defaults to true so menus
// degrade to fully enabled when the backend is unreachable.
type UserFlags struct {
	HasGoals        bool
	HasBudget       bool
	HasTransactions bool
	SmartSave       bool
	IsNewUser       bool
}
