package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Party is one side of the payment instruction.
type Party struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Canton     string `json:"canton,omitempty"`
}

// Creditor is the payee side; it additionally carries the account the payment
// is routed to.
type Creditor struct {
	Party
	Account string `json:"account"`
}

type PaymentInfo struct {
	Amount    decimal.Decimal  `json:"amount"`
	Currency  Currency         `json:"currency"`
	Reference PaymentReference `json:"reference"`
	// AdditionalInformation is free text on the slip, capped at 140 characters.
	AdditionalInformation string `json:"additionalInformation,omitempty"`
	// AlternativeSchemes is reserved for alternate payment rails and is never
	// filled by the builder.
	AlternativeSchemes string `json:"alternativeSchemes,omitempty"`
}

// InvoiceSummary is informational only, not part of the payment instruction.
type InvoiceSummary struct {
	Number    string    `json:"number"`
	IssueDate time.Time `json:"issueDate"`
	DueDate   time.Time `json:"dueDate"`
	VATNumber string    `json:"vatNumber,omitempty"`
}

// DisplayLineItem is a pass-through copy of an invoice line, carried for
// receipt rendering only. Only reference, amount and parties are authoritative
// payment data.
type DisplayLineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	VATRate     decimal.Decimal `json:"vatRate"`
	Total       decimal.Decimal `json:"total"`
}

// QRBillPayload is the complete payment instruction handed to the rendering
// component. It is rebuilt on every request; only the resolved reference is
// persisted for reuse.
type QRBillPayload struct {
	Creditor Creditor          `json:"creditor"`
	Debtor   Party             `json:"debtor"`
	Payment  PaymentInfo       `json:"payment"`
	Invoice  InvoiceSummary    `json:"invoice"`
	Items    []DisplayLineItem `json:"items"`
}
