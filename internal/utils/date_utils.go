package utils

import (
	"errors"
	"time"
)

var errInvalidDate = errors.New("invalid date")

// ParseDate accepts RFC 3339 timestamps and plain dates.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}

	return time.Time{}, errInvalidDate
}
