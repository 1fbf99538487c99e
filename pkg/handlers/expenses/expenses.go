package expenses

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/finbooks/finbooks/pkg/api"
	"github.com/finbooks/finbooks/pkg/mapping"
	"github.com/finbooks/finbooks/pkg/storage"
)

// ExpensesHandler holds the dependencies for expense-related handlers.
type ExpensesHandler struct {
	Store storage.ExpenseStore
}

// NewExpensesHandler creates a new ExpensesHandler.
func NewExpensesHandler(store storage.ExpenseStore) *ExpensesHandler {
	return &ExpensesHandler{Store: store}
}

// CreateExpense handles expense creation, including the wallet debit when
// the expense is paid from a wallet.
func (h *ExpensesHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var newExpense api.NewExpense
	if err := json.NewDecoder(r.Body).Decode(&newExpense); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newExpense.Amount <= 0 {
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	}
	if newExpense.PaidFromWallet && newExpense.WalletOwnerID == "" {
		http.Error(w, "wallet_owner_id is required for wallet-paid expenses", http.StatusBadRequest)
		return
	}

	expense, err := h.Store.CreateExpense(r.Context(), mapping.ToDomainNewExpense(&newExpense))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInsufficientFunds):
			http.Error(w, "Insufficient funds", http.StatusUnprocessableEntity)
		case errors.Is(err, storage.ErrWalletNotFound):
			http.Error(w, "Wallet not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrConflict):
			http.Error(w, "Conflicting update, please retry", http.StatusConflict)
		default:
			http.Error(w, fmt.Sprintf("Failed to create expense: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiExpense(expense)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// DeleteExpense handles expense deletion, including the compensating wallet
// credit for wallet-paid expenses.
func (h *ExpensesHandler) DeleteExpense(w http.ResponseWriter, r *http.Request, expenseID string) {
	if err := h.Store.DeleteExpense(r.Context(), expenseID); err != nil {
		switch {
		case errors.Is(err, storage.ErrExpenseNotFound):
			http.Error(w, "Expense not found", http.StatusNotFound)
		case errors.Is(err, storage.ErrConflict):
			http.Error(w, "Conflicting update, please retry", http.StatusConflict)
		default:
			http.Error(w, fmt.Sprintf("Failed to delete expense: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
