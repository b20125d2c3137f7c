package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxPartyNameLength = 255
	MaxPageSize        = 1000
	DefaultPageSize    = 50
)

// ValidateDateRange checks a statement window. Either bound may be nil;
// when both are present from must not be after to.
func ValidateDateRange(from, to *time.Time) error {
	if from != nil && to != nil && from.After(*to) {
		return fmt.Errorf("%w: from %s is after to %s",
			ErrInvalidDateRange, from.Format("2006-01-02"), to.Format("2006-01-02"))
	}
	return nil
}

// ValidatePartyName validates a booking party name.
func ValidatePartyName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return ErrMissingParty
	}

	if len(name) > MaxPartyNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrMissingParty, MaxPartyNameLength)
	}

	return nil
}

// ValidateAmount validates a booking amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateRecordDate validates a booking date.
func ValidateRecordDate(date time.Time) error {
	if date.IsZero() {
		return ErrMissingDate
	}
	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
