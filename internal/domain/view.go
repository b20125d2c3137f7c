package domain

import "fmt"

// ViewType selects which statement projection to compute.
type ViewType string

const (
	// ViewLedger is the full client statement: all three kinds, true
	// opening balance.
	ViewLedger ViewType = "ledger"
	// ViewCartagePaid lists only invoices flagged cartage-paid.
	ViewCartagePaid ViewType = "cartage_paid"
	// ViewReceipts lists only payments.
	ViewReceipts ViewType = "receipts"
	// ViewGSTDelivery lists delivery challans that carry a GST number.
	ViewGSTDelivery ViewType = "gst_delivery"
	// ViewCashDelivery lists delivery challans flagged cash delivery.
	ViewCashDelivery ViewType = "cash_delivery"
	// ViewPartySummary aggregates totals per party instead of listing
	// chronological rows.
	ViewPartySummary ViewType = "party_summary"
)

// ParseViewType parses a view name from a query parameter. The empty
// string defaults to the full ledger view.
func ParseViewType(s string) (ViewType, error) {
	switch ViewType(s) {
	case "":
		return ViewLedger, nil
	case ViewLedger, ViewCartagePaid, ViewReceipts, ViewGSTDelivery, ViewCashDelivery, ViewPartySummary:
		return ViewType(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidViewType, s)
	}
}

// Valid reports whether v is one of the known views.
func (v ViewType) Valid() bool {
	switch v {
	case ViewLedger, ViewCartagePaid, ViewReceipts, ViewGSTDelivery, ViewCashDelivery, ViewPartySummary:
		return true
	default:
		return false
	}
}
