package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyCHF Currency = "CHF"
	CurrencyEUR Currency = "EUR"
)

func (c Currency) String() string {
	return string(c)
}

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyCHF, CurrencyEUR:
		return true
	}

	return false
}

type Address struct {
	Street     string
	City       string
	PostalCode string
	Country    string
	Canton     string
}

// Company is the invoice issuer, the creditor of the payment instruction.
type Company struct {
	Name      string
	Address   Address
	IBAN      string
	VATNumber string
	Country   string // ISO country code, "CH" when empty.
}

// Client is the invoice recipient, the debtor of the payment instruction.
type Client struct {
	Name    string
	Address Address
}

type InvoiceLine struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	VATRate     decimal.Decimal
	Total       decimal.Decimal
}

// Invoice is the aggregate the persistence layer supplies. Reference holds the
// payment reference resolved on a previous QR-bill request, empty until one is
// issued.
type Invoice struct {
	ID        uuid.UUID
	Number    string
	IssueDate time.Time
	DueDate   time.Time
	Company   *Company
	Client    *Client
	Currency  Currency
	Total     decimal.Decimal
	Lines     []InvoiceLine
	Notes     string
	Reference PaymentReference
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IssuedReference is a stored reference together with the invoice it belongs
// to, as returned by the audit scan.
type IssuedReference struct {
	InvoiceID uuid.UUID
	Reference PaymentReference
}

type Eligibility struct {
	Valid   bool
	Message string
}
