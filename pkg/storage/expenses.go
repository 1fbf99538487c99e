package storage

import (
	"context"

	"github.com/finbooks/finbooks/pkg/models"
)

// ExpenseStore defines the interface for the expense payment coordinator.
// Both operations are atomic: either every document involved changes or none
// does.
type ExpenseStore interface {
	// CreateExpense persists the expense. When the expense is paid from a
	// wallet it also, in the same batch, writes a debit WalletTransaction
	// linked to the expense and decrements the wallet balance by the amount
	// converted into the wallet's currency. Returns ErrInsufficientFunds,
	// with no writes, when the converted amount exceeds the balance.
	CreateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error)

	// GetExpense retrieves an expense by id.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// DeleteExpense removes the expense. When the expense was paid from a
	// wallet it also, in the same batch, deletes the linked WalletTransaction
	// and credits the wallet by the transaction's recorded amount. If no
	// linked transaction exists the expense is deleted alone.
	DeleteExpense(ctx context.Context, expenseID string) error
}
