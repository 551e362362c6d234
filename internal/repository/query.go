package repository

const (
	selectInvoice = `SELECT
		id,
		number,
		issue_date,
		due_date,
		currency,
		total,
		notes,
		reference,
		reference_type,
		company_name,
		company_street,
		company_city,
		company_postal_code,
		company_country,
		company_canton,
		company_iban,
		company_vat_number,
		client_name,
		client_street,
		client_city,
		client_postal_code,
		client_country,
		client_canton,
		created_at,
		updated_at
	FROM invoices`

	selectLines = `SELECT
		description,
		quantity,
		unit_price,
		vat_rate,
		total
	FROM invoice_lines
	WHERE invoice_id = $1
	ORDER BY position`
)
