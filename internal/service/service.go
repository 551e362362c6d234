package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/alpenbill/qrbill/internal/entity"
	"github.com/alpenbill/qrbill/internal/payload"
	"github.com/alpenbill/qrbill/internal/reference"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	SaveReference(ctx context.Context, invoiceID uuid.UUID, ref entity.PaymentReference, updatedAt time.Time) error
	IssuedReferences(ctx context.Context) ([]entity.IssuedReference, error)
}

type Producer interface {
	SendReferenceIssued(ctx context.Context, invoiceID uuid.UUID, ref entity.PaymentReference)
}

type Service struct {
	repo     Repository
	builder  *payload.Builder
	producer Producer
}

func New(repo Repository, builder *payload.Builder, producer Producer) *Service {
	return &Service{
		repo:     repo,
		builder:  builder,
		producer: producer,
	}
}

// CheckEligibility runs the precondition gate for an invoice without building
// anything.
func (s *Service) CheckEligibility(ctx context.Context, invoiceID uuid.UUID) (entity.Eligibility, error) {
	inv, err := s.repo.Invoice(ctx, invoiceID)
	if err != nil {
		return entity.Eligibility{}, fmt.Errorf("get invoice %s: %w", invoiceID, err)
	}

	return s.builder.CheckEligibility(inv), nil
}

// BuildPayload assembles the payment instruction for an invoice. When a fresh
// reference was issued along the way it is persisted for reuse on subsequent
// requests and announced to the external uniqueness store.
func (s *Service) BuildPayload(
	ctx context.Context,
	invoiceID uuid.UUID,
	preferred entity.ReferenceType,
) (entity.QRBillPayload, error) {
	inv, err := s.repo.Invoice(ctx, invoiceID)
	if err != nil {
		return entity.QRBillPayload{}, fmt.Errorf("get invoice %s: %w", invoiceID, err)
	}

	hadStored := !inv.Reference.IsZero()

	p, err := s.builder.BuildFromInvoice(inv, preferred)
	if err != nil {
		return entity.QRBillPayload{}, fmt.Errorf("build payload for invoice %s: %w", invoiceID, err)
	}

	if !hadStored {
		err = s.repo.SaveReference(ctx, invoiceID, p.Payment.Reference, time.Now())
		if err != nil {
			return entity.QRBillPayload{}, fmt.Errorf("save reference for invoice %s: %w", invoiceID, err)
		}

		s.producer.SendReferenceIssued(ctx, invoiceID, p.Payment.Reference)

		slog.InfoContext(ctx, "payment reference issued",
			"invoice_id", invoiceID,
			"reference_type", p.Payment.Reference.Type,
		)
	}

	return p, nil
}

// AuditReferences re-validates every stored reference and reports the invalid
// ones. Stored values predating the current validation rules surface here
// instead of failing individual QR-bill requests unnoticed.
func (s *Service) AuditReferences(ctx context.Context) error {
	refs, err := s.repo.IssuedReferences(ctx)
	if err != nil {
		return fmt.Errorf("get issued references: %w", err)
	}

	var errs []error

	for _, r := range refs {
		err := reference.Validate(r.Reference.Value, r.Reference.Type)
		if err != nil {
			errs = append(errs, fmt.Errorf("invoice %s reference %q: %w", r.InvoiceID, r.Reference.Value, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
