package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"ledger/internal/core"
)

// render prints v as indented JSON when --json is set, otherwise calls table.
func render(cmd *cobra.Command, v any, table func(w io.Writer)) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	table(tw)
	return tw.Flush()
}

func row(w io.Writer, cols ...any) {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(w, strings.Join(parts, "\t"))
}

func target(t core.Transaction) string {
	switch {
	case t.AccountID != 0:
		return "account:" + strconv.FormatInt(t.AccountID, 10)
	case t.CardID != 0:
		return "card:" + strconv.FormatInt(t.CardID, 10)
	default:
		return "-"
	}
}

func installment(t core.Transaction) string {
	if !t.IsInstallment() {
		return "-"
	}
	return fmt.Sprintf("%d/%d", t.InstallmentIndex, t.InstallmentCount)
}

func percent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}

func today() core.Date {
	return core.DateOf(app.Now())
}

// dateFlag reads a YYYY-MM-DD flag, defaulting to today.
func dateFlag(cmd *cobra.Command, name string) (core.Date, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return today(), nil
	}
	return core.ParseDate(s)
}

// monthFlag reads a YYYY-MM flag, defaulting to the current month.
func monthFlag(cmd *cobra.Command, name string) (core.YearMonth, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return today().YearMonth(), nil
	}
	return core.ParseYearMonth(s)
}

// amountFlag reads a strictly positive decimal amount.
func amountFlag(cmd *cobra.Command, name string) (core.Money, error) {
	s, _ := cmd.Flags().GetString(name)
	m, err := core.ParseAmount(s)
	if err != nil {
		return core.Money{}, fmt.Errorf("--%s %q: %w", name, s, err)
	}
	return m, nil
}

// signedFlag reads a decimal amount that may be zero or negative.
func signedFlag(cmd *cobra.Command, name string) (core.Money, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return core.Money{}, nil
	}
	m, err := core.ParseSignedAmount(s)
	if err != nil {
		return core.Money{}, fmt.Errorf("--%s %q: %w", name, s, err)
	}
	return m, nil
}

func idArg(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
