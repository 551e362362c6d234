package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/alpenbill/qrbill/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks

type Service interface {
	CheckEligibility(ctx context.Context, invoiceID uuid.UUID) (entity.Eligibility, error)
	BuildPayload(ctx context.Context, invoiceID uuid.UUID, preferred entity.ReferenceType) (entity.QRBillPayload, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

type EligibilityResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Eligibility reports whether a QR-bill can be produced for the invoice,
// without issuing a reference or building anything.
func (h *Handler) Eligibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invoiceID, err := uuid.FromString(chi.URLParam(r, "invoice_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	e, err := h.s.CheckEligibility(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Invoice not found")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to check eligibility")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, EligibilityResponse{Valid: e.Valid, Message: e.Message})
}

type BuildPayloadRequest struct {
	// ReferenceType is the caller's preference; anything unrecognized falls
	// back to QRR. Ignored when the invoice already has a stored reference.
	ReferenceType entity.ReferenceType `json:"referenceType,omitempty"`
}

// BuildPayload assembles the payment instruction for an invoice and returns it
// for rendering.
func (h *Handler) BuildPayload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invoiceID, err := uuid.FromString(chi.URLParam(r, "invoice_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	var req BuildPayloadRequest

	// An empty body means no preference. Decode regardless of Content-Length
	// so chunked requests are honored too.
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	p, err := h.s.BuildPayload(ctx, invoiceID, req.ReferenceType)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Invoice not found")
		case errors.Is(err, entity.ErrMissingCompanyInfo):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Company information is missing")
		case errors.Is(err, entity.ErrMissingClientInfo):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Client information is missing")
		case errors.Is(err, entity.ErrMissingIBAN):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Creditor IBAN is missing or is not a Swiss IBAN")
		case errors.Is(err, entity.ErrUnsupportedCurrency):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Only CHF and EUR are supported for QR-bill payments")
		case errors.Is(err, entity.ErrNonPositiveAmount):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invoice total must be greater than zero")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Stored reference type is not recognized")
		case errors.Is(err, entity.ErrMissingReference),
			errors.Is(err, entity.ErrReferenceFormat),
			errors.Is(err, entity.ErrReferenceChecksum):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Payment reference validation failed")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to build QR-bill payload")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, p)
}
