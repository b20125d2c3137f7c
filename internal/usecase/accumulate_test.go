package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshgehlot9/freightledger/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

// januaryFixture is the scenario used across the window tests: one
// invoice, one challan, one payment, all for Acme in January 2024.
func januaryFixture() []domain.Transaction {
	result := Normalize(
		[]domain.RawInvoice{{Date: "2024-01-05", ConsignorName: "Acme", GrandTotal: float64(1000)}},
		[]domain.RawDeliveryCharge{{Date: "2024-01-10", PartyName: "Acme", Amount: float64(300)}},
		[]domain.RawPayment{{Date: "2024-01-15", PartyName: "Acme", Amount: float64(700)}},
	)
	return result.Transactions
}

func TestAccumulate_FullMonthWindow(t *testing.T) {
	result := Accumulate(januaryFixture(), AccumulateOptions{
		From: datePtr(2024, 1, 1),
		To:   datePtr(2024, 1, 31),
	})

	require.True(t, result.OpeningBalance.IsZero(), "opening balance should be zero")
	require.Len(t, result.Rows, 3)

	assert.Equal(t, domain.KindInvoice, result.Rows[0].Kind)
	assert.True(t, result.Rows[0].Balance.Equal(decimal.NewFromInt(1000)), "balance after invoice = %s", result.Rows[0].Balance)

	assert.Equal(t, domain.KindDeliveryCharge, result.Rows[1].Kind)
	assert.True(t, result.Rows[1].Balance.Equal(decimal.NewFromInt(700)), "balance after challan = %s", result.Rows[1].Balance)

	assert.Equal(t, domain.KindPayment, result.Rows[2].Kind)
	assert.True(t, result.Rows[2].Balance.IsZero(), "balance after payment = %s", result.Rows[2].Balance)

	assert.True(t, result.Totals.TotalDebit.Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.Totals.TotalCredit.Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.Totals.ClosingBalance.IsZero())
}

func TestAccumulate_OpeningBalanceBeforeWindow(t *testing.T) {
	// Window starts Jan 11: the invoice (Jan 5) and challan (Jan 10)
	// fold into the opening balance, only the payment remains a row.
	result := Accumulate(januaryFixture(), AccumulateOptions{
		From: datePtr(2024, 1, 11),
	})

	require.True(t, result.OpeningBalance.Equal(decimal.NewFromInt(700)),
		"opening balance = %s, want 700", result.OpeningBalance)
	require.Len(t, result.Rows, 1)

	assert.Equal(t, domain.KindPayment, result.Rows[0].Kind)
	assert.True(t, result.Rows[0].Balance.IsZero())
	assert.True(t, result.Totals.ClosingBalance.IsZero())
}

func TestAccumulate_NoMatchingParty(t *testing.T) {
	result := Accumulate(januaryFixture(), AccumulateOptions{
		PartyFilter: "acme brick",
		From:        datePtr(2024, 1, 1),
		To:          datePtr(2024, 1, 31),
	})

	assert.True(t, result.OpeningBalance.IsZero())
	assert.Empty(t, result.Rows)
	assert.True(t, result.Totals.ClosingBalance.IsZero())
}

func TestAccumulate_PartyFilterAppliedToOpeningPool(t *testing.T) {
	// Two parties with history before the window. The opening balance
	// must only see the filtered party's transactions; leaking the
	// other party's rows into the opening pool corrupts the balance.
	result := Normalize(
		[]domain.RawInvoice{
			{Date: "2024-01-05", ConsignorName: "Acme", GrandTotal: float64(1000)},
			{Date: "2024-01-06", ConsignorName: "Globex", GrandTotal: float64(5000)},
		},
		nil,
		[]domain.RawPayment{
			{Date: "2024-01-08", PartyName: "Acme", Amount: float64(400)},
			{Date: "2024-01-09", PartyName: "Globex", Amount: float64(100)},
		},
	)

	ledger := Accumulate(result.Transactions, AccumulateOptions{
		PartyFilter: "acme",
		From:        datePtr(2024, 2, 1),
	})

	// 1000 - 400, with no trace of Globex's 4900.
	if !ledger.OpeningBalance.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("opening balance = %s, want 600", ledger.OpeningBalance)
	}
	if len(ledger.Rows) != 0 {
		t.Fatalf("expected no windowed rows, got %d", len(ledger.Rows))
	}
	if !ledger.Totals.ClosingBalance.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("closing balance = %s, want 600", ledger.Totals.ClosingBalance)
	}
}

func TestAccumulate_BoundaryInclusivity(t *testing.T) {
	// A transaction at exactly from, and one late in the day of to.
	result := Normalize(
		[]domain.RawInvoice{{Date: "2024-01-01T00:00:00Z", ConsignorName: "Acme", GrandTotal: float64(100)}},
		nil,
		[]domain.RawPayment{{Date: "2024-01-31T18:45:00Z", PartyName: "Acme", Amount: float64(40)}},
	)

	ledger := Accumulate(result.Transactions, AccumulateOptions{
		From: datePtr(2024, 1, 1),
		To:   datePtr(2024, 1, 31),
	})

	if len(ledger.Rows) != 2 {
		t.Fatalf("expected both boundary transactions in the window, got %d rows", len(ledger.Rows))
	}
}

func TestAccumulate_FromOmittedOpeningIsZero(t *testing.T) {
	result := Accumulate(januaryFixture(), AccumulateOptions{
		To: datePtr(2024, 1, 12),
	})

	if !result.OpeningBalance.IsZero() {
		t.Fatalf("opening balance = %s, want 0 when from is omitted", result.OpeningBalance)
	}
	// Invoice and challan fall inside, payment (Jan 15) is past to.
	if len(result.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(result.Rows))
	}
}

func TestAccumulate_NoWindowCoversFullHistory(t *testing.T) {
	result := Accumulate(januaryFixture(), AccumulateOptions{})

	if len(result.Rows) != 3 {
		t.Fatalf("expected full history, got %d rows", len(result.Rows))
	}
	if !result.OpeningBalance.IsZero() {
		t.Fatalf("opening balance = %s, want 0", result.OpeningBalance)
	}
}

func TestAccumulate_AccountingIdentity(t *testing.T) {
	txns := Normalize(
		[]domain.RawInvoice{
			{Date: "2024-01-05", ConsignorName: "Acme", GrandTotal: float64(1250.75)},
			{Date: "2024-02-14", ConsignorName: "Globex", GrandTotal: float64(980)},
			{Date: "2024-03-01", ConsignorName: "Acme", GrandTotal: float64(310.10)},
		},
		[]domain.RawDeliveryCharge{
			{Date: "2024-01-20", PartyName: "Acme", Amount: float64(75.25)},
			{Date: "2024-02-28", PartyName: "Globex", Amount: float64(130)},
		},
		[]domain.RawPayment{
			{Date: "2024-02-01", PartyName: "Acme", Amount: float64(500)},
			{Date: "2024-03-15", PartyName: "Globex", Amount: float64(850)},
		},
	).Transactions

	options := []AccumulateOptions{
		{},
		{PartyFilter: "acme"},
		{From: datePtr(2024, 2, 1)},
		{From: datePtr(2024, 2, 1), To: datePtr(2024, 2, 28)},
		{PartyFilter: "globex", From: datePtr(2024, 2, 15), To: datePtr(2024, 3, 31)},
		{PartyFilter: "nobody", From: datePtr(2024, 1, 1), To: datePtr(2024, 12, 31)},
	}

	for _, opts := range options {
		result := Accumulate(txns, opts)

		// closing == opening + totalDebit - totalCredit, exactly.
		expected := result.OpeningBalance.Add(result.Totals.TotalDebit).Sub(result.Totals.TotalCredit)
		if !result.Totals.ClosingBalance.Equal(expected) {
			t.Fatalf("opts %+v: closing %s != opening %s + debit %s - credit %s",
				opts, result.Totals.ClosingBalance, result.OpeningBalance,
				result.Totals.TotalDebit, result.Totals.TotalCredit)
		}

		// The last row's running balance is the closing balance.
		if len(result.Rows) > 0 {
			last := result.Rows[len(result.Rows)-1].Balance
			if !last.Equal(result.Totals.ClosingBalance) {
				t.Fatalf("opts %+v: last row balance %s != closing %s", opts, last, result.Totals.ClosingBalance)
			}
		}
	}
}

func TestAccumulate_SameDateTieBreak(t *testing.T) {
	// All on the same day: order is invoice, challan, payment, and
	// within a kind the arrival order holds.
	txns := Normalize(
		[]domain.RawInvoice{
			{Date: "2024-01-05", ConsignorName: "First", GrandTotal: float64(1)},
			{Date: "2024-01-05", ConsignorName: "Second", GrandTotal: float64(2)},
		},
		[]domain.RawDeliveryCharge{{Date: "2024-01-05", PartyName: "Third", Amount: float64(3)}},
		[]domain.RawPayment{{Date: "2024-01-05", PartyName: "Fourth", Amount: float64(4)}},
	).Transactions

	result := Accumulate(txns, AccumulateOptions{})

	wantLabels := []string{"First", "Second", "Third", "Fourth"}
	require.Len(t, result.Rows, 4)
	for i, row := range result.Rows {
		assert.Equal(t, wantLabels[i], row.Label, "row %d out of order", i)
	}
}

func TestAccumulate_Idempotent(t *testing.T) {
	txns := januaryFixture()
	opts := AccumulateOptions{
		PartyFilter: "acme",
		From:        datePtr(2024, 1, 1),
		To:          datePtr(2024, 1, 31),
	}

	first := Accumulate(txns, opts)
	second := Accumulate(txns, opts)

	assert.Equal(t, first, second, "identical inputs must produce identical output")
}

func TestAccumulate_DoesNotMutateInput(t *testing.T) {
	txns := Normalize(
		[]domain.RawInvoice{
			{Date: "2024-01-10", ConsignorName: "B", GrandTotal: float64(2)},
			{Date: "2024-01-05", ConsignorName: "A", GrandTotal: float64(1)},
		},
		nil, nil,
	).Transactions

	Accumulate(txns, AccumulateOptions{})

	// Input keeps its original (unsorted) order.
	if txns[0].PartyKeys[0] != "B" || txns[1].PartyKeys[0] != "A" {
		t.Fatal("accumulate reordered its input slice")
	}
}

func TestEndOfDay(t *testing.T) {
	at := time.Date(2024, 1, 31, 9, 30, 0, 0, time.UTC)
	end := endOfDay(at)

	if end.Day() != 31 || end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Fatalf("endOfDay = %s", end)
	}
	if !end.Before(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("endOfDay crossed into the next day")
	}
}
