package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vanshgehlot9/freightledger/internal/usecase"
)

// CreateInvoiceRequest represents a request to book a freight invoice.
type CreateInvoiceRequest struct {
	Date          time.Time       `json:"date"`
	ConsignorName string          `json:"consignorName"`
	ConsigneeName string          `json:"consigneeName"`
	TruckNo       string          `json:"truckNo"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	CartagePaid   bool            `json:"cartagePaid"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateInvoiceRequest) ToUseCaseInput() usecase.CreateInvoiceInput {
	return usecase.CreateInvoiceInput{
		Date:          r.Date,
		ConsignorName: r.ConsignorName,
		ConsigneeName: r.ConsigneeName,
		TruckNo:       r.TruckNo,
		GrandTotal:    r.GrandTotal,
		CartagePaid:   r.CartagePaid,
	}
}

// CreateDeliveryRequest represents a request to book a delivery challan.
type CreateDeliveryRequest struct {
	Date         time.Time       `json:"date"`
	PartyName    string          `json:"partyName"`
	TruckNo      string          `json:"truckNo"`
	Amount       decimal.Decimal `json:"amount"`
	GSTNo        string          `json:"gstNo"`
	CashDelivery bool            `json:"cashDelivery"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateDeliveryRequest) ToUseCaseInput() usecase.CreateDeliveryInput {
	return usecase.CreateDeliveryInput{
		Date:         r.Date,
		PartyName:    r.PartyName,
		TruckNo:      r.TruckNo,
		Amount:       r.Amount,
		GSTNo:        r.GSTNo,
		CashDelivery: r.CashDelivery,
	}
}

// CreatePaymentRequest represents a request to record a payment received.
type CreatePaymentRequest struct {
	Date      time.Time       `json:"date"`
	PartyName string          `json:"partyName"`
	Amount    decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *CreatePaymentRequest) ToUseCaseInput() usecase.CreatePaymentInput {
	return usecase.CreatePaymentInput{
		Date:      r.Date,
		PartyName: r.PartyName,
		Amount:    r.Amount,
	}
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
