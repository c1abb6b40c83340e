package storage

import (
	"database/sql"
)

type Account struct {
	ID                  int64
	Name                string
	Kind                string
	OpeningBalanceCents int64
	CreatedAt           string
}

type Card struct {
	ID               int64
	Name             string
	Description      string
	CreditLimitCents int64
	ClosingDay       int64
	DueDay           int64
}

type Category struct {
	ID        int64
	Name      string
	Icon      string
	Color     string
	Kind      string
	CreatedAt string
	Permanent int64
	Archived  int64
}

type Transaction struct {
	ID               int64
	Kind             string
	AmountCents      int64
	Date             string
	CategoryLabel    string
	Note             string
	AccountID        sql.NullInt64
	CreatedAt        string
	CardID           sql.NullInt64
	InstallmentIndex int64
	InstallmentCount int64
	InstallmentGroup sql.NullString
	Planned          int64
	Status           string
	CategoryID       sql.NullInt64
}

type Investment struct {
	ID             int64
	Name           string
	PrincipalCents int64
	AnnualRate     sql.NullString
	StartDate      sql.NullString
	Notes          string
}

type AccountWithSum struct {
	Account
	RealizedCents int64
}

type DailyTotal struct {
	Date       string
	TotalCents int64
}
