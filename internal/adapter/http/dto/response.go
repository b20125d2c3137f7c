package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vanshgehlot9/freightledger/internal/domain"
	"github.com/vanshgehlot9/freightledger/internal/usecase"
)

// InvoiceResponse represents a freight invoice in API responses. Date is
// passed through as stored; historical documents carry several date
// encodings.
type InvoiceResponse struct {
	ID            string `json:"id"`
	BiltyNo       int64  `json:"biltyNo"`
	Date          any    `json:"date"`
	ConsignorName string `json:"consignorName"`
	ConsigneeName string `json:"consigneeName"`
	TruckNo       string `json:"truckNo"`
	GrandTotal    any    `json:"grandTotal"`
	CartagePaid   bool   `json:"cartagePaid"`
}

// InvoiceFromDomain converts a stored invoice to a response.
func InvoiceFromDomain(inv *domain.RawInvoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:            inv.ID,
		BiltyNo:       inv.BiltyNo,
		Date:          inv.Date,
		ConsignorName: inv.ConsignorName,
		ConsigneeName: inv.ConsigneeName,
		TruckNo:       inv.TruckNo,
		GrandTotal:    inv.GrandTotal,
		CartagePaid:   inv.CartagePaid,
	}
}

// InvoicesFromDomain converts stored invoices to responses.
func InvoicesFromDomain(invoices []domain.RawInvoice) []*InvoiceResponse {
	result := make([]*InvoiceResponse, len(invoices))
	for i := range invoices {
		result[i] = InvoiceFromDomain(&invoices[i])
	}
	return result
}

// ListInvoicesResponse wraps a page of invoices.
type ListInvoicesResponse struct {
	Invoices []*InvoiceResponse `json:"invoices"`
	Total    int64              `json:"total"`
}

// DeliveryResponse represents a delivery challan in API responses.
type DeliveryResponse struct {
	ID           string `json:"id"`
	ChallanNo    int64  `json:"challanNo"`
	Date         any    `json:"date"`
	PartyName    string `json:"partyName"`
	TruckNo      string `json:"truckNo"`
	Amount       any    `json:"amount"`
	GSTNo        string `json:"gstNo"`
	CashDelivery bool   `json:"cashDelivery"`
}

// DeliveryFromDomain converts a stored challan to a response.
func DeliveryFromDomain(d *domain.RawDeliveryCharge) *DeliveryResponse {
	return &DeliveryResponse{
		ID:           d.ID,
		ChallanNo:    d.ChallanNo,
		Date:         d.Date,
		PartyName:    d.PartyName,
		TruckNo:      d.TruckNo,
		Amount:       d.Amount,
		GSTNo:        d.GSTNo,
		CashDelivery: d.CashDelivery,
	}
}

// DeliveriesFromDomain converts stored challans to responses.
func DeliveriesFromDomain(deliveries []domain.RawDeliveryCharge) []*DeliveryResponse {
	result := make([]*DeliveryResponse, len(deliveries))
	for i := range deliveries {
		result[i] = DeliveryFromDomain(&deliveries[i])
	}
	return result
}

// ListDeliveriesResponse wraps a page of delivery challans.
type ListDeliveriesResponse struct {
	Deliveries []*DeliveryResponse `json:"deliveries"`
	Total      int64               `json:"total"`
}

// PaymentResponse represents a payment in API responses.
type PaymentResponse struct {
	ID        string `json:"id"`
	Date      any    `json:"date"`
	PartyName string `json:"partyName"`
	Amount    any    `json:"amount"`
}

// PaymentFromDomain converts a stored payment to a response.
func PaymentFromDomain(p *domain.RawPayment) *PaymentResponse {
	return &PaymentResponse{
		ID:        p.ID,
		Date:      p.Date,
		PartyName: p.PartyName,
		Amount:    p.Amount,
	}
}

// PaymentsFromDomain converts stored payments to responses.
func PaymentsFromDomain(payments []domain.RawPayment) []*PaymentResponse {
	result := make([]*PaymentResponse, len(payments))
	for i := range payments {
		result[i] = PaymentFromDomain(&payments[i])
	}
	return result
}

// ListPaymentsResponse wraps a page of payments.
type ListPaymentsResponse struct {
	Payments []*PaymentResponse `json:"payments"`
	Total    int64              `json:"total"`
}

// StatementRowResponse is one chronological row of a statement.
type StatementRowResponse struct {
	Date    time.Time       `json:"date"`
	Kind    string          `json:"kind"`
	Label   string          `json:"particulars"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
	Balance decimal.Decimal `json:"balance"`
}

// StatementTotalsResponse summarizes the windowed rows.
type StatementTotalsResponse struct {
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// PartySummaryRowResponse is one row of the party summary view.
type PartySummaryRowResponse struct {
	Party       string          `json:"party"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// StatementResponse represents a computed statement in API responses.
// Rows and Totals are set for the chronological views, Parties for the
// party summary view.
type StatementResponse struct {
	View           string                    `json:"view"`
	OpeningBalance decimal.Decimal           `json:"openingBalance"`
	Rows           []StatementRowResponse    `json:"rows,omitempty"`
	Totals         *StatementTotalsResponse  `json:"totals,omitempty"`
	Parties        []PartySummaryRowResponse `json:"parties,omitempty"`
	Normalized     int                       `json:"normalized"`
	Dropped        int                       `json:"dropped"`
}

// StatementFromUseCase converts a computed statement to a response.
func StatementFromUseCase(st *usecase.Statement) *StatementResponse {
	resp := &StatementResponse{
		View:       string(st.View),
		Normalized: st.Normalized,
		Dropped:    st.Dropped,
	}

	if st.Ledger != nil {
		resp.OpeningBalance = st.Ledger.OpeningBalance
		resp.Rows = make([]StatementRowResponse, len(st.Ledger.Rows))
		for i, row := range st.Ledger.Rows {
			resp.Rows[i] = StatementRowResponse{
				Date:    row.Date,
				Kind:    row.Kind.String(),
				Label:   row.Label,
				Debit:   row.Debit,
				Credit:  row.Credit,
				Balance: row.Balance,
			}
		}
		resp.Totals = &StatementTotalsResponse{
			TotalDebit:     st.Ledger.Totals.TotalDebit,
			TotalCredit:    st.Ledger.Totals.TotalCredit,
			ClosingBalance: st.Ledger.Totals.ClosingBalance,
		}
	}

	if st.Parties != nil {
		resp.Parties = make([]PartySummaryRowResponse, len(st.Parties))
		for i, row := range st.Parties {
			resp.Parties[i] = PartySummaryRowResponse{
				Party:       row.Party,
				TotalDebit:  row.TotalDebit,
				TotalCredit: row.TotalCredit,
			}
		}
	}

	return resp
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
