package storage

import (
	"context"

	"github.com/finbooks/finbooks/pkg/models"
)

// WalletStore defines the interface for managing wallets.
type WalletStore interface {
	// GetWallet retrieves an owner's wallet.
	GetWallet(ctx context.Context, ownerID string) (*models.Wallet, error)

	// EnsureWallet creates the owner's wallet if it does not exist yet and
	// returns it. Calling it again for the same owner is a no-op that returns
	// the existing wallet.
	EnsureWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error)

	// ListWallets retrieves all wallets.
	ListWallets(ctx context.Context) ([]models.Wallet, error)
}
