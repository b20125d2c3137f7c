package domain

import (
	"errors"
	"testing"
)

func TestParseViewType(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        ViewType
		expectedErr error
	}{
		{"empty defaults to ledger", "", ViewLedger, nil},
		{"ledger", "ledger", ViewLedger, nil},
		{"cartage paid", "cartage_paid", ViewCartagePaid, nil},
		{"receipts", "receipts", ViewReceipts, nil},
		{"gst delivery", "gst_delivery", ViewGSTDelivery, nil},
		{"cash delivery", "cash_delivery", ViewCashDelivery, nil},
		{"party summary", "party_summary", ViewPartySummary, nil},
		{"unknown view", "challan", "", ErrInvalidViewType},
		{"case sensitive", "Ledger", "", ErrInvalidViewType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseViewType(tt.input)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseViewType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestViewType_Valid(t *testing.T) {
	for _, v := range []ViewType{ViewLedger, ViewCartagePaid, ViewReceipts, ViewGSTDelivery, ViewCashDelivery, ViewPartySummary} {
		if !v.Valid() {
			t.Fatalf("expected %q to be valid", v)
		}
	}

	if ViewType("").Valid() {
		t.Fatal("empty view type should not be valid")
	}
	if ViewType("bilty").Valid() {
		t.Fatal("unknown view type should not be valid")
	}
}
