package model

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidStructure is returned for malformed or inconsistent family structures.
	ErrInvalidStructure = errors.New("invalid family structure")
	// ErrInvalidAmount is returned when a monetary input is out of range.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrDivisionMismatch is returned when an actual division does not reconcile with its total.
	ErrDivisionMismatch = errors.New("division does not reconcile")
	// ErrUnknownHeir is returned when a division references an heir id outside the heir set.
	ErrUnknownHeir = errors.New("unknown heir")
	// ErrInvalidRoundingPolicy is returned for rounding policies other than round, floor and ceil.
	ErrInvalidRoundingPolicy = errors.New("invalid rounding policy")
	// ErrInvalidDivisionMode is returned for division modes other than amount and percentage.
	ErrInvalidDivisionMode = errors.New("invalid division mode")
)

// DivisionMismatchError carries the computed and expected totals of a division
// that failed to reconcile.
type DivisionMismatchError struct {
	Field    string
	Expected decimal.Decimal
	Actual   decimal.Decimal
}

func (e *DivisionMismatchError) Error() string {
	return fmt.Sprintf("%s: %s sum to %s, expected %s", ErrDivisionMismatch, e.Field, e.Actual.String(), e.Expected.String())
}

func (e *DivisionMismatchError) Unwrap() error {
	return ErrDivisionMismatch
}
