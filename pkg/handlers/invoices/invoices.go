package invoices

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/finbooks/finbooks/pkg/api"
	"github.com/finbooks/finbooks/pkg/mapping"
	"github.com/finbooks/finbooks/pkg/storage"
)

// InvoicesHandler holds the dependencies for invoice-related handlers.
type InvoicesHandler struct {
	Store storage.InvoiceStore
}

// NewInvoicesHandler creates a new InvoicesHandler.
func NewInvoicesHandler(store storage.InvoiceStore) *InvoicesHandler {
	return &InvoicesHandler{Store: store}
}

// CreateInvoice handles invoice creation. The stored payment status is
// derived server-side, so whatever status the client suggests for a
// payment-driven state is ignored.
func (h *InvoicesHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var newInvoice api.NewInvoice
	if err := json.NewDecoder(r.Body).Decode(&newInvoice); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newInvoice.ProjectID == "" {
		http.Error(w, "project_id is required", http.StatusBadRequest)
		return
	}

	inv, err := h.Store.CreateInvoice(r.Context(), mapping.ToDomainNewInvoice(&newInvoice))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create invoice: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiInvoice(inv)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// AddPayment records a payment against an invoice. The response carries the
// invoice with its freshly derived status plus the income finance record
// written in the same batch.
func (h *InvoicesHandler) AddPayment(w http.ResponseWriter, r *http.Request, invoiceID string) {
	var newPayment api.NewPayment
	if err := json.NewDecoder(r.Body).Decode(&newPayment); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newPayment.Amount <= 0 {
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	}

	inv, record, err := h.Store.AddInvoicePayment(r.Context(), invoiceID, mapping.ToDomainNewPayment(&newPayment))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvoiceNotFound):
			http.Error(w, "Invoice not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrProjectNotFound):
			http.Error(w, "Invoice project not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrConflict):
			http.Error(w, "Conflicting update, please retry", http.StatusConflict)
		default:
			http.Error(w, fmt.Sprintf("Failed to add payment: %v", err), http.StatusInternalServerError)
		}
		return
	}

	result := api.PaymentResult{
		Invoice:       *mapping.ToApiInvoice(inv),
		FinanceRecord: *mapping.ToApiFinanceRecord(record),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetInvoice handles the logic for retrieving an invoice.
func (h *InvoicesHandler) GetInvoice(w http.ResponseWriter, r *http.Request, invoiceID string) {
	inv, err := h.Store.GetInvoice(r.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, storage.ErrInvoiceNotFound) {
			http.Error(w, "Invoice not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve invoice: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiInvoice(inv)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
