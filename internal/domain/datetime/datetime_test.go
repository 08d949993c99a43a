package datetime

import (
	"errors"
	"testing"
	"time"

	"meditrack/internal/domain/errs"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2024-01-01 ", "date")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", got)
	}

	for _, in := range []string{"", "01-01-2024", "2024/01/01", "2024-13-01"} {
		if _, err := ParseDate(in, "date"); !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("expected validation error for %q, got %v", in, err)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2024-03-05 14:30", "scheduled_at")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if FormatDateTime(got) != "2024-03-05 14:30" || FormatDate(got) != "2024-03-05" {
		t.Fatalf("round trip mismatch: %s / %s", FormatDateTime(got), FormatDate(got))
	}

	_, err = ParseDateTime("2024-03-05T14:30", "scheduled_at")
	var ve *errs.ValidationError
	if !errors.As(err, &ve) || ve.Field != "scheduled_at" {
		t.Fatalf("expected validation error on scheduled_at, got %v", err)
	}
}
