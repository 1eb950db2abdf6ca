// Package validation collects field-level input errors before a record is
// handed to the store.
package validation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Violations maps a JSON field name to a machine-readable reason.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func RequiredID(field string, id uint, v Violations) {
	if id == 0 {
		v[field] = "required"
	}
}

func PositiveDecimal(field string, val decimal.Decimal, v Violations) {
	if !val.IsPositive() {
		v[field] = "must_be_positive"
	}
}

func NonNegativeDecimal(field string, val decimal.Decimal, v Violations) {
	if val.IsNegative() {
		v[field] = "must_not_be_negative"
	}
}

func RangeDecimal(field string, val, minVal, maxVal decimal.Decimal, v Violations) {
	if val.LessThan(minVal) || val.GreaterThan(maxVal) {
		v[field] = "out_of_range"
	}
}

// Percentage accepts 0 to 100 inclusive.
func Percentage(field string, val decimal.Decimal, v Violations) {
	RangeDecimal(field, val, decimal.Zero, decimal.NewFromInt(100), v)
}
