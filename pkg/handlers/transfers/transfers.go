package transfers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/finbooks/finbooks/pkg/api"
	"github.com/finbooks/finbooks/pkg/mapping"
	"github.com/finbooks/finbooks/pkg/models"
	"github.com/finbooks/finbooks/pkg/storage"
)

// TransfersHandler holds the dependencies for wallet transfer handlers.
type TransfersHandler struct {
	Store storage.TransferStore
}

// NewTransfersHandler creates a new TransfersHandler.
func NewTransfersHandler(store storage.TransferStore) *TransfersHandler {
	return &TransfersHandler{Store: store}
}

// FundWallet moves money from a project into the owner's wallet.
func (h *TransfersHandler) FundWallet(w http.ResponseWriter, r *http.Request, ownerID string) {
	h.transfer(w, r, ownerID, h.Store.FundWallet)
}

// WithdrawFromWallet moves money from the owner's wallet into a project.
func (h *TransfersHandler) WithdrawFromWallet(w http.ResponseWriter, r *http.Request, ownerID string) {
	h.transfer(w, r, ownerID, h.Store.WithdrawFromWallet)
}

type transferFunc func(ctx context.Context, req *storage.TransferRequest) (*models.FinanceRecord, *models.WalletTransaction, error)

func (h *TransfersHandler) transfer(w http.ResponseWriter, r *http.Request, ownerID string, op transferFunc) {
	var newTransfer api.NewTransfer
	if err := json.NewDecoder(r.Body).Decode(&newTransfer); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newTransfer.Amount <= 0 {
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	}
	if newTransfer.ProjectID == "" {
		http.Error(w, "project_id is required", http.StatusBadRequest)
		return
	}

	record, tx, err := op(r.Context(), mapping.ToDomainTransfer(ownerID, &newTransfer))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInsufficientFunds):
			http.Error(w, "Insufficient funds", http.StatusUnprocessableEntity)
		case errors.Is(err, storage.ErrWalletNotFound):
			http.Error(w, "Wallet not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrProjectNotFound):
			http.Error(w, "Project not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrConflict):
			http.Error(w, "Conflicting update, please retry", http.StatusConflict)
		default:
			http.Error(w, fmt.Sprintf("Failed to execute transfer: %v", err), http.StatusInternalServerError)
		}
		return
	}

	result := api.TransferResult{
		FinanceRecord:     *mapping.ToApiFinanceRecord(record),
		WalletTransaction: *mapping.ToApiWalletTransaction(tx),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
