// Package reconcile verifies the wallet balance invariant: every stored
// balance must equal the sum of signed amounts in the wallet's transaction
// history. Wallet writes always pair the balance change with a transaction
// (opening balances included), so a mismatch means a partial write or
// hand-edited data, never a healthy wallet.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbooks/finbooks/pkg/events"
	"github.com/finbooks/finbooks/pkg/storage"
)

// Reconciler sweeps all wallets and flags the ones whose stored balance no
// longer matches their replayed transaction history.
type Reconciler struct {
	Wallets storage.WalletStore
	Ledger  storage.LedgerReader
	Events  events.Publisher
}

// Result summarizes one sweep.
type Result struct {
	Checked int
	Drifted int
}

// Run replays every wallet's transaction history against its stored balance.
// A wallet that cannot be checked is logged and skipped; one bad wallet must
// not stop the sweep. Each drifted wallet is reported as a balance-drift
// event carrying the stored-minus-replayed difference.
func (r *Reconciler) Run(ctx context.Context) (*Result, error) {
	wallets, err := r.Wallets.ListWallets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}

	result := &Result{Checked: len(wallets)}
	for _, wallet := range wallets {
		txs, err := r.Ledger.ListWalletTransactions(ctx, wallet.OwnerID)
		if err != nil {
			slog.Error("failed to list transactions for wallet", "wallet_owner_id", wallet.OwnerID, "error", err)
			continue
		}

		var replayed int64
		for i := range txs {
			replayed += txs[i].SignedAmount()
		}

		if replayed == wallet.Balance {
			continue
		}

		result.Drifted++
		slog.Warn("wallet balance drifted from transaction history",
			"wallet_owner_id", wallet.OwnerID, "stored", wallet.Balance, "replayed", replayed)

		if r.Events == nil {
			continue
		}
		event := &events.LedgerEvent{
			Kind:          events.KindBalanceDrift,
			WalletOwnerID: wallet.OwnerID,
			Amount:        wallet.Balance - replayed,
			Currency:      wallet.Currency,
			OccurredAt:    time.Now().UTC(),
		}
		if err := r.Events.PublishLedgerEvent(ctx, event); err != nil {
			slog.Error("failed to publish drift event", "wallet_owner_id", wallet.OwnerID, "error", err)
		}
	}

	return result, nil
}
