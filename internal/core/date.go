package core

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Date is a calendar day with no time or timezone component.
type Date struct {
	civil.Date
}

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

var ErrInvalidDate = errors.New("invalid date")

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Date: civil.Date{Year: year, Month: time.Month(month), Day: day}}
}

// DateOf returns the calendar day of t as seen in t's own location.
func DateOf(t time.Time) Date {
	return Date{Date: civil.DateOf(t)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Date: d}, nil
}

// IsEmpty returns true if the date was never set (optional dates)
func (d Date) IsEmpty() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d Date) Validate() error {
	if d.IsEmpty() {
		return errors.New("date cannot be zero")
	}
	if !d.IsValid() {
		return ErrInvalidDate
	}
	return nil
}

// YearMonth returns the month the date falls in.
func (d Date) YearMonth() YearMonth {
	return YearMonth{Year: d.Year, Month: d.Month}
}

// AddDays returns the date n days later (n may be negative).
func (d Date) AddDays(n int) Date {
	return Date{Date: d.Date.AddDays(n)}
}

// DaysSince returns the signed number of days from s to d.
func (d Date) DaysSince(s Date) int {
	return d.Date.DaysSince(s.Date)
}

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool {
	return d.Date.Before(o.Date)
}

// After reports whether d is strictly after o.
func (d Date) After(o Date) bool {
	return d.Date.After(o.Date)
}

// Within reports whether d lies in [from, to], both inclusive.
func (d Date) Within(from, to Date) bool {
	return !d.Before(from) && !d.After(to)
}

// AddMonthsClamped moves the date n months forward keeping the day of month.
// When the target month is shorter the day is clamped to its last day, so
// 2025-01-31 plus one month is 2025-02-28.
func (d Date) AddMonthsClamped(n int) Date {
	ym := d.YearMonth().AddMonths(n)
	return ym.DayClamped(d.Day)
}

// NewYearMonth builds a YearMonth, normalising out-of-range months.
func NewYearMonth(year int, month time.Month) YearMonth {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth parses a YYYY-MM string.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// AddMonths returns the month n months later (n may be negative).
func (ym YearMonth) AddMonths(n int) YearMonth {
	return NewYearMonth(ym.Year, ym.Month+time.Month(n))
}

// Days returns the number of days in the month.
func (ym YearMonth) Days() int {
	return time.Date(ym.Year, ym.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayClamped returns the given day of this month, clamped to [1, Days()].
func (ym YearMonth) DayClamped(day int) Date {
	if day < 1 {
		day = 1
	}
	if last := ym.Days(); day > last {
		day = last
	}
	return Date{Date: civil.Date{Year: ym.Year, Month: ym.Month, Day: day}}
}

// First returns the first day of the month.
func (ym YearMonth) First() Date {
	return ym.DayClamped(1)
}

// Last returns the last day of the month.
func (ym YearMonth) Last() Date {
	return ym.DayClamped(ym.Days())
}
