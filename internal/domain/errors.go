package domain

import "errors"

var (
	// Record errors
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrDeliveryNotFound = errors.New("delivery challan not found")
	ErrPaymentNotFound  = errors.New("payment not found")

	// Statement query errors
	ErrInvalidViewType  = errors.New("unknown statement view")
	ErrInvalidDateRange = errors.New("invalid statement date range")

	// Booking validation errors
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrMissingParty  = errors.New("party name is required")
	ErrMissingDate   = errors.New("record date is required")
)
