// Package payload assembles the QR-bill payment instruction from an invoice
// aggregate.
package payload

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/alpenbill/qrbill/internal/entity"
	"github.com/alpenbill/qrbill/internal/reference"
)

// Swiss IBANs are 21 characters beginning CH. Only the shape is inspected
// here; full mod-97 IBAN validation is a soft advisory handled outside this
// core.
var swissIBANPattern = regexp.MustCompile(`^CH[A-Z0-9]{19}$`)

const defaultCreditorCountry = "CH"

type Builder struct {
	gen *reference.Generator
}

func NewBuilder(gen *reference.Generator) *Builder {
	return &Builder{
		gen: gen,
	}
}

// CheckEligibility is the precondition gate callers invoke before requesting a
// payload. It reports the first violated rule only.
func (b *Builder) CheckEligibility(inv entity.Invoice) entity.Eligibility {
	err := checkPreconditions(inv)
	if err != nil {
		return entity.Eligibility{Valid: false, Message: messageFor(err)}
	}

	return entity.Eligibility{Valid: true}
}

// BuildFromInvoice resolves the payment reference and assembles the complete
// payment instruction. It fails fast on the first violated invariant with the
// same taxonomy as CheckEligibility; there is no partial construction.
func (b *Builder) BuildFromInvoice(inv entity.Invoice, preferred entity.ReferenceType) (entity.QRBillPayload, error) {
	err := checkPreconditions(inv)
	if err != nil {
		return entity.QRBillPayload{}, err
	}

	ref, err := b.resolveReference(inv, preferred)
	if err != nil {
		return entity.QRBillPayload{}, fmt.Errorf("resolve reference for invoice %q: %w", inv.Number, err)
	}

	company := *inv.Company
	client := *inv.Client

	country := company.Country
	if country == "" {
		country = defaultCreditorCountry
	}

	items := make([]entity.DisplayLineItem, 0, len(inv.Lines))
	for _, line := range inv.Lines {
		items = append(items, entity.DisplayLineItem{
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			VATRate:     line.VATRate,
			Total:       line.Total,
		})
	}

	return entity.QRBillPayload{
		Creditor: entity.Creditor{
			Party: entity.Party{
				Name:       company.Name,
				Street:     company.Address.Street,
				City:       company.Address.City,
				PostalCode: company.Address.PostalCode,
				Country:    country,
				Canton:     company.Address.Canton,
			},
			Account: company.IBAN,
		},
		Debtor: entity.Party{
			Name:       client.Name,
			Street:     client.Address.Street,
			City:       client.Address.City,
			PostalCode: client.Address.PostalCode,
			Country:    client.Address.Country,
			Canton:     client.Address.Canton,
		},
		Payment: entity.PaymentInfo{
			Amount:                inv.Total,
			Currency:              inv.Currency,
			Reference:             ref,
			AdditionalInformation: FormatAdditionalInfo(inv.Number, inv.Notes),
		},
		Invoice: entity.InvoiceSummary{
			Number:    inv.Number,
			IssueDate: inv.IssueDate,
			DueDate:   inv.DueDate,
			VATNumber: company.VATNumber,
		},
		Items: items,
	}, nil
}

// resolveReference reuses the stored reference when one exists and generates a
// fresh one otherwise. Either way the value is validated before it may enter
// the payload.
func (b *Builder) resolveReference(inv entity.Invoice, preferred entity.ReferenceType) (entity.PaymentReference, error) {
	ref := inv.Reference

	if ref.IsZero() {
		t := reference.DetermineType(preferred)

		v, err := b.gen.Generate(t)
		if err != nil {
			return entity.PaymentReference{}, err
		}

		ref = entity.PaymentReference{Type: t, Value: v}
	}

	err := reference.Validate(ref.Value, ref.Type)
	if err != nil {
		return entity.PaymentReference{}, err
	}

	return ref, nil
}

func checkPreconditions(inv entity.Invoice) error {
	switch {
	case inv.Company == nil || inv.Company.Name == "":
		return fmt.Errorf("%w: invoice %q has no company", entity.ErrMissingCompanyInfo, inv.Number)
	case inv.Client == nil || inv.Client.Name == "":
		return fmt.Errorf("%w: invoice %q has no client", entity.ErrMissingClientInfo, inv.Number)
	case !swissIBANPattern.MatchString(inv.Company.IBAN):
		return fmt.Errorf("%w: invoice %q creditor IBAN %q", entity.ErrMissingIBAN, inv.Number, inv.Company.IBAN)
	case !inv.Currency.IsValid():
		return fmt.Errorf("%w: invoice %q currency %q", entity.ErrUnsupportedCurrency, inv.Number, inv.Currency)
	case !inv.Total.IsPositive():
		return fmt.Errorf("%w: invoice %q total %s", entity.ErrNonPositiveAmount, inv.Number, inv.Total)
	}

	return nil
}

func messageFor(err error) string {
	switch {
	case errors.Is(err, entity.ErrMissingCompanyInfo):
		return "Company information is missing"
	case errors.Is(err, entity.ErrMissingClientInfo):
		return "Client information is missing"
	case errors.Is(err, entity.ErrMissingIBAN):
		return "Creditor IBAN is missing or is not a Swiss IBAN"
	case errors.Is(err, entity.ErrUnsupportedCurrency):
		return "Only CHF and EUR are supported for QR-bill payments"
	case errors.Is(err, entity.ErrNonPositiveAmount):
		return "Invoice total must be greater than zero"
	}

	return err.Error()
}
