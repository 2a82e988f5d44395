package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ysbai/gazdistrib-api/internal/domain"
	"github.com/ysbai/gazdistrib-api/internal/domain/entity"
	"github.com/ysbai/gazdistrib-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implémentation de InvoiceRepository (utilisable avec pool ou tx).
// Le client est dénormalisé dans la facture : une facture persistée survit à
// la suppression du client.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construit l'adaptateur. Passer pool ou tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste l'en-tête et les lignes de la facture.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, number, date, hide_day, client_id, client_name, client_code, client_ice, client_address,
		                      subtotal, tax_amount, total, company_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, now())`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Number, invoice.Date, invoice.HideDay,
		invoice.Client.ID, invoice.Client.Name, invoice.Client.Code,
		nullIfEmpty(invoice.Client.ICE), nullIfEmpty(invoice.Client.Address),
		invoice.Subtotal, invoice.TaxAmount, invoice.Total, invoice.CompanyName,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	for i, line := range invoice.Items {
		lineQuery := `
			INSERT INTO invoice_lines (invoice_id, line_no, description, quantity, unit_price, tax_rate, amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`
		if _, err := r.q.Exec(context.Background(), lineQuery,
			invoice.ID, i+1, line.Description, line.Quantity, line.UnitPrice, line.TaxRate, line.Amount,
		); err != nil {
			return fmt.Errorf("insert invoice line: %w", err)
		}
	}
	return nil
}

// Delete supprime la facture et ses lignes (ON DELETE CASCADE).
func (r *InvoiceRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID retourne la facture et ses lignes (nil si absente).
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, number, date, hide_day, client_id, client_name, client_code,
		       COALESCE(client_ice, ''), COALESCE(client_address, ''),
		       subtotal, tax_amount, total, company_name, created_at
		FROM invoices WHERE id = $1`
	inv, err := r.scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	items, err := r.lines(inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return inv, nil
}

// List retourne toutes les factures avec leurs lignes, les plus récentes
// d'abord (le numéro croît avec le temps).
func (r *InvoiceRepo) List() ([]entity.Invoice, error) {
	query := `
		SELECT id, number, date, hide_day, client_id, client_name, client_code,
		       COALESCE(client_ice, ''), COALESCE(client_address, ''),
		       subtotal, tax_amount, total, company_name, created_at
		FROM invoices ORDER BY number DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []entity.Invoice
	for rows.Next() {
		inv, err := r.scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range list {
		items, err := r.lines(list[i].ID)
		if err != nil {
			return nil, err
		}
		list[i].Items = items
	}
	return list, nil
}

// ListNumbers retourne tous les numéros de factures persistés, pour la
// reprise de la séquence de numérotation.
func (r *InvoiceRepo) ListNumbers() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT number FROM invoices`)
	if err != nil {
		return nil, fmt.Errorf("list invoice numbers: %w", err)
	}
	defer rows.Close()
	var numbers []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan invoice number: %w", err)
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}

func (r *InvoiceRepo) scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.Number, &inv.Date, &inv.HideDay,
		&inv.Client.ID, &inv.Client.Name, &inv.Client.Code, &inv.Client.ICE, &inv.Client.Address,
		&inv.Subtotal, &inv.TaxAmount, &inv.Total, &inv.CompanyName, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepo) lines(invoiceID string) ([]entity.InvoiceLine, error) {
	query := `
		SELECT description, quantity, unit_price, tax_rate, amount
		FROM invoice_lines WHERE invoice_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()
	var items []entity.InvoiceLine
	for rows.Next() {
		var l entity.InvoiceLine
		if err := rows.Scan(&l.Description, &l.Quantity, &l.UnitPrice, &l.TaxRate, &l.Amount); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		items = append(items, l)
	}
	return items, rows.Err()
}
