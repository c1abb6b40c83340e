package core

// CategoryAmount represents an amount aggregated by category.
type CategoryAmount struct {
	Category ResolvedCategory
	Amount   Money
}

// MonthSummary holds the realized and planned totals of one calendar month.
type MonthSummary struct {
	Month              YearMonth
	Income             Money
	Expense            Money
	PlannedExpense     Money
	Net                Money   // income - expense
	BudgetUsagePercent float64 // 0 when nothing is planned
}

// DailySpend is one bar of the recent spending chart.
type DailySpend struct {
	Date          Date
	Total         Money
	HeightPercent float64
}

// AccountBalance is an account with its running balance.
type AccountBalance struct {
	Account Account
	Balance Money
}

// InvoiceCycle is the date range of card charges billed together.
type InvoiceCycle struct {
	Start     Date // inclusive
	End       Date // inclusive
	CloseDate Date
	DueDate   Date
}

// Invoice is the content of one card invoice cycle.
type Invoice struct {
	Card           Card
	Cycle          InvoiceCycle
	Total          Money // expenses minus payments and credits
	AvailableLimit Money
	Transactions   []Transaction
}

// BudgetState classifies how much of a budget line has been used.
type BudgetState string

const (
	BudgetOK        BudgetState = "ok"
	BudgetAttention BudgetState = "attention"
	BudgetExceeded  BudgetState = "exceeded"
)

// BudgetLine compares planned and realized spend of one category in a month.
type BudgetLine struct {
	Category ResolvedCategory
	Planned  Money
	Spent    Money
	Percent  float64
	State    BudgetState
	Over     bool // percent > 100
}

// InvestmentReturn is an investment with its accrued gain.
type InvestmentReturn struct {
	Investment Investment
	Returns    Money
	Value      Money // principal + returns
}

// Dashboard is the home-screen snapshot.
type Dashboard struct {
	Date         Date
	WalletTotal  Money
	VoucherTotal Money
	Month        MonthSummary
	Invoices     []Invoice
}

// LedgerEntry is a transaction with its category resolved for display.
type LedgerEntry struct {
	Transaction Transaction
	Category    ResolvedCategory
}
