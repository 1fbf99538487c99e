package storage

import (
	"context"

	"github.com/finbooks/finbooks/pkg/models"
)

// InvoiceStore defines the interface for the invoice payment engine.
type InvoiceStore interface {
	// GetInvoice retrieves an invoice by id.
	GetInvoice(ctx context.Context, invoiceID string) (*models.Invoice, error)

	// CreateInvoice persists a new invoice with its status derived from its
	// (usually empty) payment list.
	CreateInvoice(ctx context.Context, inv *models.Invoice) (*models.Invoice, error)

	// AddInvoicePayment appends the payment to the invoice, recomputes the
	// collected total and derives the payment status, and in the same batch
	// writes an income FinanceRecord to the invoice's project. Returns the
	// updated invoice and the finance record.
	AddInvoicePayment(ctx context.Context, invoiceID string, payment *models.Payment) (*models.Invoice, *models.FinanceRecord, error)
}
