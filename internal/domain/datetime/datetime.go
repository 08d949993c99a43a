// Package datetime parses and renders the date formats used at the API edge.
package datetime

import (
	"time"

	"meditrack/internal/domain/errs"
	"meditrack/internal/domain/validator"
)

const (
	DatePattern     = "yyyy-MM-dd"
	DateTimePattern = "yyyy-MM-dd HH:mm"

	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// ParseDate parses a yyyy-MM-dd value in UTC.
func ParseDate(input, field string) (time.Time, error) {
	v, err := validator.RequireNonBlank(input, field)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, errs.InvalidWrap(field, err, "must match pattern %s", DatePattern)
	}
	return t, nil
}

// ParseDateTime parses a yyyy-MM-dd HH:mm value in UTC.
func ParseDateTime(input, field string) (time.Time, error) {
	v, err := validator.RequireNonBlank(input, field)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(dateTimeLayout, v)
	if err != nil {
		return time.Time{}, errs.InvalidWrap(field, err, "must match pattern %s", DateTimePattern)
	}
	return t, nil
}

func FormatDate(t time.Time) string { return t.Format(dateLayout) }

func FormatDateTime(t time.Time) string { return t.Format(dateTimeLayout) }
