package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestJSONLoggerCarriesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Format: "json", Output: &buf}).WithComponent(ComponentJournal)

	logger.Fields(context.Background(), slog.LevelInfo, "Transaction created",
		NewFields().WithOperation(OpCreate).WithEntry(7, "expense", 1250, "2025-03-10").WithError(errors.New("x")))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var record map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &record); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if record[FieldComponent] != ComponentJournal {
		t.Fatalf("component = %v", record[FieldComponent])
	}
	if record[FieldOperation] != OpCreate || record[FieldAmountCents] != float64(1250) {
		t.Fatalf("missing fields in %v", record)
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	if got := FromContext(context.Background()); got == nil {
		t.Fatal("expected the default logger")
	}

	var buf bytes.Buffer
	custom := New(Config{Level: slog.LevelDebug, Format: "json", Output: &buf})
	ctx := WithContext(context.Background(), custom)
	if FromContext(ctx) != custom {
		t.Fatal("expected logger stored in context")
	}

	FromContext(ctx).WithComponent(ComponentStorage).DebugContext(ctx, "Account saved", FieldID, 3)
	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if record[FieldComponent] != ComponentStorage || record[FieldID] != float64(3) {
		t.Fatalf("unexpected record %v", record)
	}
}

func TestWithErrorType(t *testing.T) {
	fields := NewFields().WithError(errors.New("boom")).WithErrorType(ErrorTypeDatabase)
	if fields[FieldError] != "boom" || fields[FieldErrorType] != ErrorTypeDatabase {
		t.Fatalf("fields = %v", fields)
	}
	if _, ok := NewFields().WithError(nil)[FieldError]; ok {
		t.Fatal("nil error must not add a field")
	}
}
