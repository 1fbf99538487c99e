package wallets

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/finbooks/finbooks/pkg/api"
	"github.com/finbooks/finbooks/pkg/mapping"
	"github.com/finbooks/finbooks/pkg/storage"
)

// WalletsHandler holds the dependencies for wallet-related handlers.
type WalletsHandler struct {
	Store  storage.WalletStore
	Ledger storage.LedgerReader
}

// NewWalletsHandler creates a new WalletsHandler.
func NewWalletsHandler(store storage.WalletStore, ledger storage.LedgerReader) *WalletsHandler {
	return &WalletsHandler{Store: store, Ledger: ledger}
}

// EnsureWallet handles wallet creation. Creation is idempotent per owner, so
// repeating the request returns the existing wallet.
func (h *WalletsHandler) EnsureWallet(w http.ResponseWriter, r *http.Request) {
	var newWallet api.NewWallet
	if err := json.NewDecoder(r.Body).Decode(&newWallet); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newWallet.OwnerID == "" {
		http.Error(w, "owner_id is required", http.StatusBadRequest)
		return
	}

	wallet, err := h.Store.EnsureWallet(r.Context(), mapping.ToDomainNewWallet(&newWallet))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create wallet: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiWallet(wallet)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetWallet handles the logic for retrieving an owner's wallet.
func (h *WalletsHandler) GetWallet(w http.ResponseWriter, r *http.Request, ownerID string) {
	wallet, err := h.Store.GetWallet(r.Context(), ownerID)
	if err != nil {
		if errors.Is(err, storage.ErrWalletNotFound) {
			http.Error(w, "Wallet not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve wallet: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiWallet(wallet)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ListTransactions handles the logic for retrieving a wallet's transaction
// history.
func (h *WalletsHandler) ListTransactions(w http.ResponseWriter, r *http.Request, ownerID string) {
	txs, err := h.Ledger.ListWalletTransactions(r.Context(), ownerID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve transactions: %v", err), http.StatusInternalServerError)
		return
	}

	apiTxs := make([]*api.WalletTransaction, len(txs))
	for i := range txs {
		apiTxs[i] = mapping.ToApiWalletTransaction(&txs[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiTxs); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
