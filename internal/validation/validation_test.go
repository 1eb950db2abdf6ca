package validation

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRequired(t *testing.T) {
	v := make(Violations)
	Required("name", "  ", v)
	Required("email", "a@b.c", v)
	if v["name"] != "required" {
		t.Fatalf("expected name to be required, got %v", v)
	}
	if _, ok := v["email"]; ok {
		t.Fatalf("email should pass, got %v", v)
	}
	RequiredID("client_id", 0, v)
	if v["client_id"] != "required" {
		t.Fatalf("expected client_id to be required, got %v", v)
	}
}

func TestDecimalValidators(t *testing.T) {
	v := make(Violations)
	PositiveDecimal("unit_price", decimal.Zero, v)
	NonNegativeDecimal("total", decimal.NewFromInt(-1), v)
	NonNegativeDecimal("cost", decimal.Zero, v)
	Percentage("vat_rate", decimal.RequireFromString("100.01"), v)
	Percentage("markup_percentage", decimal.NewFromInt(30), v)

	want := map[string]string{
		"unit_price": "must_be_positive",
		"total":      "must_not_be_negative",
		"vat_rate":   "out_of_range",
	}
	if len(v) != len(want) {
		t.Fatalf("got %v, want %v", v, want)
	}
	for field, reason := range want {
		if v[field] != reason {
			t.Errorf("%s: got %q, want %q", field, v[field], reason)
		}
	}
}
