// Package events publishes ledger events after a batch commits. The activity
// log and other UI-side consumers read them; the ledger itself never depends
// on a publish succeeding.
package events

import (
	"context"
	"time"

	"github.com/finbooks/finbooks/pkg/models"
)

// Event kinds emitted by the ledger engine.
const (
	KindExpenseCreated  = "expense.created"
	KindExpenseDeleted  = "expense.deleted"
	KindPaymentAdded    = "invoice.payment_added"
	KindWalletFunded    = "wallet.funded"
	KindWalletWithdrawn = "wallet.withdrawn"
	KindBalanceDrift    = "wallet.balance_drift"
)

// LedgerEvent describes one completed ledger operation.
type LedgerEvent struct {
	Kind           string              `json:"kind"`
	WalletOwnerID  string              `json:"wallet_owner_id,omitempty"`
	ProjectID      string              `json:"project_id,omitempty"`
	InvoiceID      string              `json:"invoice_id,omitempty"`
	LinkedRecordID string              `json:"linked_record_id,omitempty"`
	Amount         int64               `json:"amount,omitempty"`
	Currency       models.CurrencyCode `json:"currency,omitempty"`
	OccurredAt     time.Time           `json:"occurred_at"`
}

// Publisher defines the interface for a component that publishes ledger
// events for downstream consumers.
type Publisher interface {
	// PublishLedgerEvent emits one event. Called only after the underlying
	// batch has committed.
	PublishLedgerEvent(ctx context.Context, event *LedgerEvent) error
}
