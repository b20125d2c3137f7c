package usecase

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vanshgehlot9/freightledger/internal/domain"
)

// AccumulateOptions are the filters for a statement computation.
type AccumulateOptions struct {
	// PartyFilter retains only transactions whose party keys contain it
	// as a case-insensitive substring. Empty means no filtering.
	PartyFilter string
	// From is the window start (inclusive). When set, the opening
	// balance aggregates everything strictly before it.
	From *time.Time
	// To is the window end (inclusive); its time of day is normalized
	// to end of day so same-day transactions always fall inside.
	To *time.Time
}

// Accumulate computes an account statement: opening balance, windowed
// rows in chronological order with a running balance, and totals.
// Debits raise the balance and credits lower it; the balance is the
// amount owed by the party. The input is never mutated.
func Accumulate(transactions []domain.Transaction, opts AccumulateOptions) domain.LedgerResult {
	return accumulate(transactions, opts, true)
}

// accumulate is shared with the projector, which forces the opening
// balance to zero for every non-ledger view.
func accumulate(transactions []domain.Transaction, opts AccumulateOptions, withOpening bool) domain.LedgerResult {
	// The party filter is applied once, before the pool is split into
	// opening and window. Splitting a filtered pool keeps both sides of
	// the balance consistent (spec-level invariant: an asymmetric
	// filter silently corrupts the opening balance).
	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.MatchesParty(opts.PartyFilter) {
			filtered = append(filtered, tx)
		}
	}

	opening := decimal.Zero
	if withOpening && opts.From != nil {
		for _, tx := range filtered {
			if tx.Date.Before(*opts.From) {
				opening = opening.Add(tx.Net())
			}
		}
	}

	var windowEnd *time.Time
	if opts.To != nil {
		end := endOfDay(*opts.To)
		windowEnd = &end
	}

	windowed := make([]domain.Transaction, 0, len(filtered))
	for _, tx := range filtered {
		if opts.From != nil && tx.Date.Before(*opts.From) {
			continue
		}
		if windowEnd != nil && tx.Date.After(*windowEnd) {
			continue
		}
		windowed = append(windowed, tx)
	}

	sortTransactions(windowed)

	result := domain.LedgerResult{
		OpeningBalance: opening,
		Rows:           make([]domain.LedgerRow, 0, len(windowed)),
	}

	balance := opening
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, tx := range windowed {
		balance = balance.Add(tx.Net())
		totalDebit = totalDebit.Add(tx.Debit)
		totalCredit = totalCredit.Add(tx.Credit)
		result.Rows = append(result.Rows, domain.LedgerRow{Transaction: tx, Balance: balance})
	}

	result.Totals = domain.LedgerTotals{
		TotalDebit:     totalDebit,
		TotalCredit:    totalCredit,
		ClosingBalance: opening.Add(totalDebit).Sub(totalCredit),
	}

	return result
}

// sortTransactions orders by date ascending. Same-date transactions
// order by kind (invoice, challan, payment) and then by arrival order,
// so the output never depends on sort internals.
func sortTransactions(txns []domain.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.Before(txns[j].Date)
		}
		if txns[i].Kind != txns[j].Kind {
			return txns[i].Kind < txns[j].Kind
		}
		return txns[i].Seq < txns[j].Seq
	})
}

// endOfDay pushes a window bound to the last instant of its calendar day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
