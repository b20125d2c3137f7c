package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind tags which source collection a transaction came from.
// The order of the constants is the tie-break order for same-date
// transactions: invoices sort before challans, challans before payments.
type TransactionKind int

const (
	KindInvoice TransactionKind = iota
	KindDeliveryCharge
	KindPayment
)

// String returns the wire name of the kind.
func (k TransactionKind) String() string {
	switch k {
	case KindInvoice:
		return "invoice"
	case KindDeliveryCharge:
		return "delivery_charge"
	case KindPayment:
		return "payment"
	default:
		return "unknown"
	}
}

// Transaction is the normalized unit the statement engine operates on.
// Exactly one of Debit/Credit is non-zero: invoices debit the party
// account (receivable goes up), challans and payments credit it.
type Transaction struct {
	Date  time.Time
	Kind  TransactionKind
	Seq   int // arrival order assigned at normalization; used only as the final tie-break
	Debit decimal.Decimal
	// Credit is the challan amount or payment amount.
	Credit decimal.Decimal
	// PartyKeys holds every field eligible for party matching
	// (consignor, consignee, truck number or payer, depending on Kind).
	// The first entry is the record's primary party.
	PartyKeys []string
	// Label is the display particulars, not used in computation.
	Label string

	// Flags carried through for view pre-filters.
	CartagePaid  bool
	CashDelivery bool
	GSTNo        string
}

// MatchesParty reports whether any party key contains filter as a
// case-insensitive substring. An empty filter matches everything.
func (t Transaction) MatchesParty(filter string) bool {
	if filter == "" {
		return true
	}
	needle := strings.ToLower(filter)
	for _, key := range t.PartyKeys {
		if strings.Contains(strings.ToLower(key), needle) {
			return true
		}
	}
	return false
}

// PrimaryParty returns the trimmed primary party key, or "" when the
// record has no resolvable party. Grouping keeps the empty key.
func (t Transaction) PrimaryParty() string {
	if len(t.PartyKeys) == 0 {
		return ""
	}
	return strings.TrimSpace(t.PartyKeys[0])
}

// Net returns debit minus credit, the transaction's effect on a
// receivable balance.
func (t Transaction) Net() decimal.Decimal {
	return t.Debit.Sub(t.Credit)
}

// LedgerRow is a transaction with its post-update running balance.
type LedgerRow struct {
	Transaction
	Balance decimal.Decimal
}

// LedgerTotals summarizes the windowed rows of a statement.
type LedgerTotals struct {
	TotalDebit     decimal.Decimal
	TotalCredit    decimal.Decimal
	ClosingBalance decimal.Decimal
}

// LedgerResult is a computed account statement. It is derived and
// request-scoped; nothing about it is persisted.
type LedgerResult struct {
	OpeningBalance decimal.Decimal
	Rows           []LedgerRow
	Totals         LedgerTotals
}

// PartyAggregateRow is one row of the party summary view: total debits
// and credits per distinct party, no dates, no running balance.
type PartyAggregateRow struct {
	Party       string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}
