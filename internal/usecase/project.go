package usecase

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/vanshgehlot9/freightledger/internal/domain"
)

// Statement is the computed output of a statement query. Exactly one of
// Ledger and Parties is set, depending on the view.
type Statement struct {
	View    domain.ViewType
	Ledger  *domain.LedgerResult
	Parties []domain.PartyAggregateRow

	// Normalized and Dropped describe the snapshot the statement was
	// computed from, for observability.
	Normalized int
	Dropped    int
}

// Project computes one of the statement views over the normalized
// transaction stream. Every chronological view funnels through the same
// running-balance accumulation; only the full ledger view carries a true
// opening balance, the rest start from zero. The party summary view
// aggregates per party instead of listing rows.
func Project(transactions []domain.Transaction, view domain.ViewType, opts AccumulateOptions) (*Statement, error) {
	if !view.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidViewType, string(view))
	}

	if view == domain.ViewPartySummary {
		return &Statement{
			View:    view,
			Parties: aggregateParties(transactions, opts),
		}, nil
	}

	pool := transactions
	if pre := viewFilter(view); pre != nil {
		pool = make([]domain.Transaction, 0, len(transactions))
		for _, tx := range transactions {
			if pre(tx) {
				pool = append(pool, tx)
			}
		}
	}

	result := accumulate(pool, opts, view == domain.ViewLedger)
	return &Statement{View: view, Ledger: &result}, nil
}

// viewFilter returns the pre-filter for a chronological view, or nil
// when the view covers all three kinds.
func viewFilter(view domain.ViewType) func(domain.Transaction) bool {
	switch view {
	case domain.ViewCartagePaid:
		return func(tx domain.Transaction) bool {
			return tx.Kind == domain.KindInvoice && tx.CartagePaid
		}
	case domain.ViewReceipts:
		return func(tx domain.Transaction) bool {
			return tx.Kind == domain.KindPayment
		}
	case domain.ViewGSTDelivery:
		return func(tx domain.Transaction) bool {
			return tx.Kind == domain.KindDeliveryCharge && tx.GSTNo != ""
		}
	case domain.ViewCashDelivery:
		return func(tx domain.Transaction) bool {
			return tx.Kind == domain.KindDeliveryCharge && tx.CashDelivery
		}
	default:
		return nil
	}
}

// aggregateParties groups the filtered, windowed transactions by their
// primary party and sums debits and credits per group. Records without a
// resolvable party keep a row under the empty key; downstream consumers
// rely on the row count matching the distinct keys observed.
func aggregateParties(transactions []domain.Transaction, opts AccumulateOptions) []domain.PartyAggregateRow {
	// Reuse the accumulator's filtering and window selection so the
	// summary sees exactly the transactions a ledger over the same
	// query would.
	windowed := accumulate(transactions, opts, false)

	totals := make(map[string]*domain.PartyAggregateRow)
	order := make([]string, 0)

	for _, row := range windowed.Rows {
		party := row.PrimaryParty()
		agg, ok := totals[party]
		if !ok {
			agg = &domain.PartyAggregateRow{
				Party:       party,
				TotalDebit:  decimal.Zero,
				TotalCredit: decimal.Zero,
			}
			totals[party] = agg
			order = append(order, party)
		}
		agg.TotalDebit = agg.TotalDebit.Add(row.Debit)
		agg.TotalCredit = agg.TotalCredit.Add(row.Credit)
	}

	sort.Strings(order)

	rows := make([]domain.PartyAggregateRow, 0, len(order))
	for _, party := range order {
		rows = append(rows, *totals[party])
	}

	return rows
}
