package cli

import (
	"errors"

	"ledger/internal/config"
	"ledger/internal/core"
	applog "ledger/internal/log"
)

var validationErrors = []error{
	core.ErrEmptyName, core.ErrNameLong, core.ErrNoteLong, core.ErrInvalidDate,
	core.ErrInvalidDay, core.ErrInvalidMonth, core.ErrInvalidAmount, core.ErrInvalidKind,
	core.ErrInvalidAccountKind, core.ErrInvalidStatus, core.ErrInvalidInstallments,
	core.ErrBothTargets, core.ErrNoTarget, core.ErrCategoryKindMismatch,
	core.ErrCategoryArchived, core.ErrAccountKindImmutable, core.ErrNotPlanned,
	core.ErrNegativeCreditLimit, core.ErrInvalidInvestmentRate,
}

// ErrorType classifies err into one of the log error categories.
func ErrorType(err error) string {
	switch {
	case errors.Is(err, config.ErrInvalid):
		return applog.ErrorTypeConfiguration
	case errors.Is(err, core.ErrNotFound):
		return applog.ErrorTypeNotFound
	case errors.Is(err, core.ErrInUse), errors.Is(err, core.ErrAlreadyPaid):
		return applog.ErrorTypeConflict
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return applog.ErrorTypeValidation
		}
	}
	return applog.ErrorTypeDatabase
}
