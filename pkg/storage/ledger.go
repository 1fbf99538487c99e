package storage

import (
	"context"

	"github.com/finbooks/finbooks/pkg/models"
)

// LedgerReader defines the interface for reading wallet transaction history.
type LedgerReader interface {
	// ListWalletTransactions retrieves all transactions for a wallet, most
	// recent first.
	ListWalletTransactions(ctx context.Context, ownerID string) ([]models.WalletTransaction, error)
}
