package storage

import (
	"context"

	"github.com/finbooks/finbooks/pkg/models"
)

// TransferRequest describes one wallet<->project transfer. Amount is in minor
// units of Currency; each boundary converts it exactly once.
type TransferRequest struct {
	WalletOwnerID string
	ProjectID     string
	Amount        int64
	Currency      models.CurrencyCode
	Note          string
	RecordedByUID string
}

// TransferStore defines the interface for the wallet transfer engine. Each
// transfer writes exactly one FinanceRecord and one WalletTransaction, both
// referencing the same transfer id, in one atomic batch.
type TransferStore interface {
	// FundWallet moves money from a project into the wallet: an expense
	// FinanceRecord in the source project plus an add WalletTransaction and
	// balance increment on the wallet.
	FundWallet(ctx context.Context, req *TransferRequest) (*models.FinanceRecord, *models.WalletTransaction, error)

	// WithdrawFromWallet moves money from the wallet into a project: an
	// income FinanceRecord in the destination project plus an expense
	// WalletTransaction and balance decrement on the wallet. Returns
	// ErrInsufficientFunds, with no writes, when the amount converted into
	// the wallet currency exceeds the balance.
	WithdrawFromWallet(ctx context.Context, req *TransferRequest) (*models.FinanceRecord, *models.WalletTransaction, error)
}
