// Package mapping translates between the API types and the internal domain
// models.
package mapping

import (
	"github.com/finbooks/finbooks/pkg/api"
	"github.com/finbooks/finbooks/pkg/invoice"
	"github.com/finbooks/finbooks/pkg/models"
	"github.com/finbooks/finbooks/pkg/storage"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// parseUUID converts a stored string id into the API UUID type. Ids are
// server-generated UUIDs, so a parse failure only happens on hand-edited
// data; it maps to the zero UUID rather than failing a read.
func parseUUID(id string) openapi_types.UUID {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return openapi_types.UUID{}
	}
	return openapi_types.UUID(parsed)
}

func optionalUUID(id string) *openapi_types.UUID {
	if id == "" {
		return nil
	}
	parsed := parseUUID(id)
	return &parsed
}

// ToDomainNewWallet maps a wallet creation request to the domain model.
func ToDomainNewWallet(w *api.NewWallet) *models.Wallet {
	return &models.Wallet{
		OwnerID:  w.OwnerID,
		Balance:  w.Balance,
		Currency: models.CurrencyCode(w.Currency),
	}
}

// ToApiWallet maps a domain wallet to its API representation.
func ToApiWallet(w *models.Wallet) *api.Wallet {
	return &api.Wallet{
		OwnerID:   w.OwnerID,
		Balance:   w.Balance,
		Currency:  string(w.Currency),
		CreatedAt: w.CreatedAt,
	}
}

// ToApiWalletTransaction maps a domain wallet transaction to its API
// representation.
func ToApiWalletTransaction(t *models.WalletTransaction) *api.WalletTransaction {
	return &api.WalletTransaction{
		Id:             parseUUID(t.ID),
		WalletOwnerID:  t.WalletOwnerID,
		Amount:         t.Amount,
		Type:           string(t.Type),
		LinkedRecordID: optionalUUID(t.LinkedRecordID),
		Note:           t.Note,
		Timestamp:      t.Timestamp,
	}
}

// ToDomainNewExpense maps an expense creation request to the domain model.
func ToDomainNewExpense(e *api.NewExpense) *models.Expense {
	expense := &models.Expense{
		Amount:         e.Amount,
		Currency:       models.CurrencyCode(e.Currency),
		CategoryID:     e.CategoryID,
		PaidFromWallet: e.PaidFromWallet,
		WalletOwnerID:  e.WalletOwnerID,
	}
	if e.Date != nil {
		expense.Date = e.Date.Time
	}
	return expense
}

// ToApiExpense maps a domain expense to its API representation.
func ToApiExpense(e *models.Expense) *api.Expense {
	return &api.Expense{
		Id:             parseUUID(e.ID),
		Amount:         e.Amount,
		Currency:       string(e.Currency),
		CategoryID:     e.CategoryID,
		PaidFromWallet: e.PaidFromWallet,
		WalletOwnerID:  e.WalletOwnerID,
		Date:           openapi_types.Date{Time: e.Date},
		CreatedAt:      e.CreatedAt,
	}
}

// ToDomainNewInvoice maps an invoice creation request to the domain model.
func ToDomainNewInvoice(inv *api.NewInvoice) *models.Invoice {
	lineItems := make([]models.LineItem, len(inv.LineItems))
	for i, li := range inv.LineItems {
		lineItems[i] = models.LineItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Currency:    models.CurrencyCode(li.Currency),
		}
	}
	discounts := make([]models.Discount, len(inv.Discounts))
	for i, d := range inv.Discounts {
		discounts[i] = models.Discount{
			Description: d.Description,
			Amount:      d.Amount,
		}
	}
	return &models.Invoice{
		ProjectID:  inv.ProjectID,
		LineItems:  lineItems,
		Discounts:  discounts,
		TaxRateBps: inv.TaxRateBps,
		Status:     models.InvoiceStatus(inv.Status),
	}
}

// ToDomainNewPayment maps a payment request to the domain model.
func ToDomainNewPayment(p *api.NewPayment) *models.Payment {
	payment := &models.Payment{
		Amount: p.Amount,
		Method: p.Method,
	}
	if p.Date != nil {
		payment.Date = p.Date.Time
	}
	return payment
}

// ToApiInvoice maps a domain invoice to its API representation, including
// the totals its status was derived from.
func ToApiInvoice(inv *models.Invoice) *api.Invoice {
	payments := make([]api.Payment, len(inv.Payments))
	for i, p := range inv.Payments {
		payments[i] = api.Payment{
			Id:     parseUUID(p.ID),
			Amount: p.Amount,
			Date:   openapi_types.Date{Time: p.Date},
			Method: p.Method,
		}
	}
	return &api.Invoice{
		Id:        parseUUID(inv.ID),
		ProjectID: inv.ProjectID,
		Total:     invoice.Total(inv.LineItems),
		TotalPaid: invoice.TotalPaid(inv.Payments),
		Status:    string(inv.Status),
		Payments:  payments,
		UpdatedAt: inv.UpdatedAt,
	}
}

// ToDomainTransfer maps a transfer request to the storage request, binding it
// to the wallet owner from the URL.
func ToDomainTransfer(ownerID string, t *api.NewTransfer) *storage.TransferRequest {
	return &storage.TransferRequest{
		WalletOwnerID: ownerID,
		ProjectID:     t.ProjectID,
		Amount:        t.Amount,
		Currency:      models.CurrencyCode(t.Currency),
		Note:          t.Note,
		RecordedByUID: t.RecordedByUID,
	}
}

// ToApiFinanceRecord maps a domain finance record to its API representation.
func ToApiFinanceRecord(r *models.FinanceRecord) *api.FinanceRecord {
	return &api.FinanceRecord{
		Id:             parseUUID(r.ID),
		ProjectID:      r.ProjectID,
		Type:           string(r.Type),
		Amount:         r.Amount,
		Currency:       string(r.Currency),
		Date:           openapi_types.Date{Time: r.Date},
		Category:       r.Category,
		RecordedByUID:  r.RecordedByUID,
		LinkedRecordID: optionalUUID(r.LinkedRecordID),
	}
}
