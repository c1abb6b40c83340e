package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	Wallet      AccountKind = "wallet"
	MealVoucher AccountKind = "meal_voucher"
	FoodVoucher AccountKind = "food_voucher"

	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"

	Pending TransactionStatus = "pending"
	Paid    TransactionStatus = "paid"
)

// InvoicePaymentLabel tags both rows written by an invoice payment so they can
// be told apart from ordinary spend.
const InvoicePaymentLabel = "Invoice payment"

const (
	maxNameLength = 100
	maxNoteLength = 500
)

type (
	AccountKind       string
	TransactionKind   string
	TransactionStatus string

	Account struct {
		ID             int64
		Name           string
		Kind           AccountKind
		OpeningBalance Money // signed
		CreatedAt      time.Time
	}

	Card struct {
		ID          int64
		Name        string
		Description string
		CreditLimit Money
		ClosingDay  int // 1-31
		DueDay      int // 1-31
	}

	Category struct {
		ID        int64
		Name      string
		Icon      string
		Color     string
		Kind      TransactionKind
		Permanent bool // visible every month, otherwise only in the creation month
		Archived  bool
		CreatedAt time.Time
	}

	Transaction struct {
		ID       int64
		Kind     TransactionKind
		Amount   Money // per-installment amount, always positive
		Date     Date
		Category CategoryRef
		Note     string
		Planned  bool

		// Payment target: at most one is set, exactly one for realized entries.
		AccountID int64
		CardID    int64

		InstallmentIndex int    // 1-based
		InstallmentCount int    // >= 1
		InstallmentGroup string // empty when InstallmentCount == 1

		Status    TransactionStatus
		CreatedAt time.Time
	}

	// TransactionPatch carries the fields of a partial update; nil means unchanged.
	TransactionPatch struct {
		Kind      *TransactionKind
		Amount    *Money
		Date      *Date
		Category  *CategoryRef
		Note      *string
		Planned   *bool
		AccountID *int64 // 0 clears the reference
		CardID    *int64 // 0 clears the reference
		Status    *TransactionStatus
	}
)

var (
	ErrNotFound  = errors.New("not found")
	ErrInUse     = errors.New("still referenced by transactions")
	ErrEmptyName = errors.New("empty name")
	ErrNameLong  = fmt.Errorf("name too long (max %d characters)", maxNameLength)
	ErrNoteLong  = fmt.Errorf("note too long (max %d characters)", maxNoteLength)

	ErrInvalidDay            = errors.New("invalid day of month")
	ErrInvalidMonth          = errors.New("invalid month")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidKind           = errors.New("invalid kind")
	ErrInvalidAccountKind    = errors.New("invalid account kind")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidInstallments   = errors.New("invalid installment count")
	ErrBothTargets           = errors.New("transaction cannot reference both an account and a card")
	ErrNoTarget              = errors.New("realized transaction must reference an account or a card")
	ErrCategoryKindMismatch  = errors.New("category kind does not match transaction kind")
	ErrCategoryArchived      = errors.New("category is archived")
	ErrAccountKindImmutable  = errors.New("account kind cannot change")
	ErrNotPlanned            = errors.New("transaction is not a planned item")
	ErrAlreadyPaid           = errors.New("planned item already paid")
	ErrNegativeCreditLimit   = errors.New("credit limit cannot be negative")
	ErrInvalidInvestmentRate = errors.New("annual rate cannot be negative")
)

func (k AccountKind) Validate() error {
	switch k {
	case Wallet, MealVoucher, FoodVoucher:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidAccountKind, string(k))
}

// IsVoucher reports whether the account holds restricted voucher balance.
func (k AccountKind) IsVoucher() bool {
	return k == MealVoucher || k == FoodVoucher
}

func (k TransactionKind) Validate() error {
	switch k {
	case Income, Expense:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidKind, string(k))
}

// Sign returns +1 for income and -1 for expense.
func (k TransactionKind) Sign() int64 {
	if k == Income {
		return 1
	}
	return -1
}

func (s TransactionStatus) Validate() error {
	switch s {
	case Pending, Paid:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if len(name) > maxNameLength {
		return ErrNameLong
	}
	return nil
}

func validateDayOfMonth(day int) error {
	if day < 1 || day > 31 {
		return fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	return nil
}

func (a Account) Validate() error {
	if err := validateName(a.Name); err != nil {
		return err
	}
	return a.Kind.Validate()
}

func (c Card) Validate() error {
	if err := validateName(c.Name); err != nil {
		return err
	}
	if c.CreditLimit.Cents < 0 {
		return ErrNegativeCreditLimit
	}
	if err := validateDayOfMonth(c.ClosingDay); err != nil {
		return fmt.Errorf("closing day: %w", err)
	}
	if err := validateDayOfMonth(c.DueDay); err != nil {
		return fmt.Errorf("due day: %w", err)
	}
	return nil
}

func (c Category) Validate() error {
	if err := validateName(c.Name); err != nil {
		return err
	}
	return c.Kind.Validate()
}

// VisibleIn reports whether the category is offered for new entries in ym.
func (c Category) VisibleIn(ym YearMonth) bool {
	if c.Archived {
		return false
	}
	if c.Permanent {
		return true
	}
	return DateOf(c.CreatedAt).YearMonth() == ym
}

// Signed returns the amount with the sign of the transaction kind.
func (t Transaction) Signed() Money {
	return Money{Cents: t.Kind.Sign() * t.Amount.Cents}
}

// IsInstallment reports whether the row belongs to a multi-installment purchase.
func (t Transaction) IsInstallment() bool {
	return t.InstallmentCount > 1
}

// Validate checks a single transaction row as it would be persisted.
func (t Transaction) Validate() error {
	if err := t.Kind.Validate(); err != nil {
		return err
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if len(t.Note) > maxNoteLength {
		return ErrNoteLong
	}
	if t.AccountID != 0 && t.CardID != 0 {
		return ErrBothTargets
	}
	if !t.Planned && t.AccountID == 0 && t.CardID == 0 {
		return ErrNoTarget
	}
	if t.InstallmentCount < 1 {
		return ErrInvalidInstallments
	}
	if t.InstallmentCount == 1 && t.InstallmentGroup != "" {
		return fmt.Errorf("%w: single installment cannot carry a group", ErrInvalidInstallments)
	}
	if t.InstallmentIndex < 1 || t.InstallmentIndex > t.InstallmentCount {
		return fmt.Errorf("%w: index %d of %d", ErrInvalidInstallments, t.InstallmentIndex, t.InstallmentCount)
	}
	if t.Status != "" {
		if err := t.Status.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Apply merges the patch into t and returns the result.
func (p TransactionPatch) Apply(t Transaction) Transaction {
	if p.Kind != nil {
		t.Kind = *p.Kind
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Note != nil {
		t.Note = *p.Note
	}
	if p.Planned != nil {
		t.Planned = *p.Planned
	}
	if p.AccountID != nil {
		t.AccountID = *p.AccountID
	}
	if p.CardID != nil {
		t.CardID = *p.CardID
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	return t
}
