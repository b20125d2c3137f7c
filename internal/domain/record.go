package domain

// Raw records mirror the stored JSON documents for the three source
// collections. Older documents carry dates as strings, epoch numbers or
// timestamp wrappers and amounts as strings or numbers, so those fields
// stay untyped here; only the normalizer interprets them.

// RawInvoice is a stored freight invoice (bilty) document.
type RawInvoice struct {
	ID            string `json:"id,omitempty"`
	BiltyNo       int64  `json:"biltyNo,omitempty"`
	Date          any    `json:"date"`
	ConsignorName string `json:"consignorName"`
	ConsigneeName string `json:"consigneeName"`
	TruckNo       string `json:"truckNo"`
	GrandTotal    any    `json:"grandTotal"`
	CartagePaid   bool   `json:"cartagePaid,omitempty"`
}

// RawDeliveryCharge is a stored delivery challan document.
type RawDeliveryCharge struct {
	ID           string `json:"id,omitempty"`
	ChallanNo    int64  `json:"challanNo,omitempty"`
	Date         any    `json:"date"`
	PartyName    string `json:"partyName"`
	TruckNo      string `json:"truckNo"`
	Amount       any    `json:"amount"`
	GSTNo        string `json:"gstNo,omitempty"`
	CashDelivery bool   `json:"cashDelivery,omitempty"`
}

// RawPayment is a stored payment receipt document.
type RawPayment struct {
	ID        string `json:"id,omitempty"`
	Date      any    `json:"date"`
	PartyName string `json:"partyName"`
	Amount    any    `json:"amount"`
}
