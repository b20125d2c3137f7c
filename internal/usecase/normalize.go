package usecase

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vanshgehlot9/freightledger/internal/domain"
)

// dateLayouts are tried in order when a stored date is a string.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
}

// NormalizeResult carries the uniform transaction stream plus the count
// of records excluded for unparseable dates.
type NormalizeResult struct {
	Transactions []domain.Transaction
	Dropped      int
}

// Normalize converts the three raw snapshots into the uniform transaction
// stream the accumulator operates on. Records whose date cannot be
// resolved are dropped; missing or malformed amounts become zero. The
// output preserves arrival order within each collection (invoices, then
// challans, then payments); sorting is the accumulator's job.
func Normalize(invoices []domain.RawInvoice, challans []domain.RawDeliveryCharge, payments []domain.RawPayment) NormalizeResult {
	out := NormalizeResult{
		Transactions: make([]domain.Transaction, 0, len(invoices)+len(challans)+len(payments)),
	}

	seq := 0
	add := func(tx domain.Transaction) {
		tx.Seq = seq
		seq++
		out.Transactions = append(out.Transactions, tx)
	}

	for _, inv := range invoices {
		date, ok := resolveDate(inv.Date)
		if !ok {
			out.Dropped++
			continue
		}
		keys := []string{inv.ConsignorName, inv.ConsigneeName, inv.TruckNo}
		add(domain.Transaction{
			Date:        date,
			Kind:        domain.KindInvoice,
			PartyKeys:   keys,
			Debit:       resolveAmount(inv.GrandTotal),
			Credit:      decimal.Zero,
			Label:       firstNonEmpty(keys),
			CartagePaid: inv.CartagePaid,
		})
	}

	for _, ch := range challans {
		date, ok := resolveDate(ch.Date)
		if !ok {
			out.Dropped++
			continue
		}
		keys := []string{ch.PartyName, ch.TruckNo}
		add(domain.Transaction{
			Date:         date,
			Kind:         domain.KindDeliveryCharge,
			PartyKeys:    keys,
			Debit:        decimal.Zero,
			Credit:       resolveAmount(ch.Amount),
			Label:        firstNonEmpty(keys),
			CashDelivery: ch.CashDelivery,
			GSTNo:        strings.TrimSpace(ch.GSTNo),
		})
	}

	for _, p := range payments {
		date, ok := resolveDate(p.Date)
		if !ok {
			out.Dropped++
			continue
		}
		add(domain.Transaction{
			Date:      date,
			Kind:      domain.KindPayment,
			PartyKeys: []string{p.PartyName},
			Debit:     decimal.Zero,
			Credit:    resolveAmount(p.Amount),
			Label:     p.PartyName,
		})
	}

	return out
}

// resolveDate interprets the date representations found in stored
// documents: native times, string layouts, epoch numbers, and
// {seconds,nanos} timestamp wrappers.
func resolveDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return d, true
	case *time.Time:
		if d == nil || d.IsZero() {
			return time.Time{}, false
		}
		return *d, true
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case float64:
		return epochToTime(d)
	case int64:
		return epochToTime(float64(d))
	case json.Number:
		f, err := d.Float64()
		if err != nil {
			return time.Time{}, false
		}
		return epochToTime(f)
	case map[string]any:
		return wrapperToTime(d)
	default:
		return time.Time{}, false
	}
}

// epochToTime treats values above 1e12 as milliseconds, otherwise seconds.
func epochToTime(f float64) (time.Time, bool) {
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, false
	}
	if f > 1e12 {
		return time.UnixMilli(int64(f)).UTC(), true
	}
	return time.Unix(int64(f), 0).UTC(), true
}

// wrapperToTime resolves document-store timestamp wrappers, which arrive
// as {"seconds": n, "nanos": n} or {"_seconds": n, "_nanoseconds": n}.
func wrapperToTime(m map[string]any) (time.Time, bool) {
	secs, ok := numberField(m, "seconds", "_seconds")
	if !ok {
		return time.Time{}, false
	}
	nanos, _ := numberField(m, "nanos", "_nanoseconds")
	if secs <= 0 {
		return time.Time{}, false
	}
	return time.Unix(int64(secs), int64(nanos)).UTC(), true
}

func numberField(m map[string]any, names ...string) (float64, bool) {
	for _, name := range names {
		v, ok := m[name]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n, true
		case int64:
			return float64(n), true
		case json.Number:
			if f, err := n.Float64(); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// resolveAmount coerces a stored amount to a decimal, falling back to
// zero for anything missing or malformed.
func resolveAmount(v any) decimal.Decimal {
	switch a := v.(type) {
	case nil:
		return decimal.Zero
	case float64:
		return decimal.NewFromFloat(a)
	case int64:
		return decimal.NewFromInt(a)
	case int:
		return decimal.NewFromInt(int64(a))
	case decimal.Decimal:
		return a
	case json.Number:
		if d, err := decimal.NewFromString(a.String()); err == nil {
			return d
		}
		return decimal.Zero
	case string:
		s := strings.TrimSpace(a)
		if s == "" {
			return decimal.Zero
		}
		if d, err := decimal.NewFromString(s); err == nil {
			return d
		}
		return decimal.Zero
	default:
		return decimal.Zero
	}
}

func firstNonEmpty(keys []string) string {
	for _, k := range keys {
		if strings.TrimSpace(k) != "" {
			return k
		}
	}
	return ""
}
