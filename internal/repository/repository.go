package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alpenbill/qrbill/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	q := selectInvoice + " WHERE id = $1"

	var (
		inv     entity.Invoice
		company entity.Company
		client  entity.Client
	)

	err := r.db.QueryRow(ctx, q, id).Scan(
		&inv.ID,
		&inv.Number,
		&inv.IssueDate,
		&inv.DueDate,
		&inv.Currency,
		&inv.Total,
		&inv.Notes,
		&inv.Reference.Value,
		&inv.Reference.Type,
		&company.Name,
		&company.Address.Street,
		&company.Address.City,
		&company.Address.PostalCode,
		&company.Country,
		&company.Address.Canton,
		&company.IBAN,
		&company.VATNumber,
		&client.Name,
		&client.Address.Street,
		&client.Address.City,
		&client.Address.PostalCode,
		&client.Address.Country,
		&client.Address.Canton,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, entity.ErrNotFound
		}

		return entity.Invoice{}, err
	}

	company.Address.Country = company.Country

	if company.Name != "" {
		inv.Company = &company
	}

	if client.Name != "" {
		inv.Client = &client
	}

	inv.Lines, err = r.invoiceLines(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice lines: %w", err)
	}

	return inv, nil
}

func (r *Repository) invoiceLines(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceLine, error) {
	rows, err := r.db.Query(ctx, selectLines, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []entity.InvoiceLine

	for rows.Next() {
		var line entity.InvoiceLine

		err = rows.Scan(
			&line.Description,
			&line.Quantity,
			&line.UnitPrice,
			&line.VATRate,
			&line.Total,
		)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, rows.Err()
}

func (r *Repository) SaveReference(
	ctx context.Context,
	invoiceID uuid.UUID,
	ref entity.PaymentReference,
	updatedAt time.Time,
) error {
	const q = `UPDATE invoices SET reference = $1, reference_type = $2, updated_at = $3 WHERE id = $4`

	result, err := r.db.Exec(ctx, q, ref.Value, ref.Type, updatedAt, invoiceID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *Repository) IssuedReferences(ctx context.Context) ([]entity.IssuedReference, error) {
	q, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select("id", "reference", "reference_type").
		From("invoices").
		Where(sq.NotEq{"reference": ""}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []entity.IssuedReference

	for rows.Next() {
		var ref entity.IssuedReference

		err = rows.Scan(&ref.InvoiceID, &ref.Reference.Value, &ref.Reference.Type)
		if err != nil {
			return nil, err
		}

		refs = append(refs, ref)
	}

	return refs, rows.Err()
}
