package models

import (
	"time"
)

// CurrencyCode identifies one of the supported currencies.
type CurrencyCode string

const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
	INR CurrencyCode = "INR"
)

// All monetary amounts are int64 minor units (cents, pence, paise).

// Wallet is the single per-owner money balance. The balance is mutated only
// through batches that also write a matching WalletTransaction, and every
// mutation bumps Version for optimistic locking.
type Wallet struct {
	OwnerID   string       `dynamodbav:"owner_id"`
	Balance   int64        `dynamodbav:"balance"`
	Currency  CurrencyCode `dynamodbav:"currency"`
	Version   int64        `dynamodbav:"version"`
	CreatedAt time.Time    `dynamodbav:"created_at"`
}

// WalletTransactionType tells whether a transaction added to or spent from
// the wallet. The stored amount is always positive; the type carries the sign.
type WalletTransactionType string

const (
	TransactionAdd     WalletTransactionType = "ADD"
	TransactionExpense WalletTransactionType = "EXPENSE"
)

// WalletTransaction is the immutable audit record of one balance change.
// LinkedRecordID points back at the causing record (expense id or transfer id)
// and is how compensating reversals find their counterpart.
type WalletTransaction struct {
	ID             string                `dynamodbav:"id"`
	WalletOwnerID  string                `dynamodbav:"wallet_owner_id"`
	Amount         int64                 `dynamodbav:"amount"`
	Type           WalletTransactionType `dynamodbav:"type"`
	LinkedRecordID string                `dynamodbav:"linked_record_id,omitempty"`
	Note           string                `dynamodbav:"note,omitempty"`
	Timestamp      time.Time             `dynamodbav:"timestamp"`
}

// SignedAmount returns the amount with the sign implied by the type.
func (t *WalletTransaction) SignedAmount() int64 {
	if t.Type == TransactionExpense {
		return -t.Amount
	}
	return t.Amount
}

// Expense is a personal expense. When PaidFromWallet is set it was created
// together with a debit WalletTransaction whose linked_record_id is the
// expense id.
type Expense struct {
	ID             string       `dynamodbav:"id"`
	Amount         int64        `dynamodbav:"amount"`
	Currency       CurrencyCode `dynamodbav:"currency"`
	CategoryID     string       `dynamodbav:"category_id,omitempty"`
	PaidFromWallet bool         `dynamodbav:"paid_from_wallet"`
	WalletOwnerID  string       `dynamodbav:"wallet_owner_id,omitempty"`
	Date           time.Time    `dynamodbav:"date"`
	CreatedAt      time.Time    `dynamodbav:"created_at"`
}

// InvoiceStatus is the lifecycle state of an invoice. Unpaid, Partial and
// Paid are derived from the payment list and are never edited directly;
// Draft, Sent and Void are administrative.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "DRAFT"
	InvoiceSent    InvoiceStatus = "SENT"
	InvoiceUnpaid  InvoiceStatus = "UNPAID"
	InvoicePartial InvoiceStatus = "PARTIAL"
	InvoicePaid    InvoiceStatus = "PAID"
	InvoiceVoid    InvoiceStatus = "VOID"
)

// LineItem is one billed line on an invoice.
type LineItem struct {
	Description string       `dynamodbav:"description,omitempty"`
	Quantity    int64        `dynamodbav:"quantity"`
	UnitPrice   int64        `dynamodbav:"unit_price"`
	Currency    CurrencyCode `dynamodbav:"currency"`
}

// Discount is a display-level adjustment. It is modeled but intentionally not
// netted against the line-item total when deriving payment status; see
// invoice.DeriveStatus.
type Discount struct {
	Description string `dynamodbav:"description,omitempty"`
	Amount      int64  `dynamodbav:"amount"`
}

// Payment is an append-only element of an invoice's payment list.
type Payment struct {
	ID     string    `dynamodbav:"id"`
	Amount int64     `dynamodbav:"amount"`
	Date   time.Time `dynamodbav:"date"`
	Method string    `dynamodbav:"method,omitempty"`
}

// Invoice holds billed line items and collected payments. Status (for the
// payment-driven states) is a cached projection of the payment list and is
// recomputed on every write that touches payments.
type Invoice struct {
	ID         string        `dynamodbav:"id"`
	ProjectID  string        `dynamodbav:"project_id"`
	LineItems  []LineItem    `dynamodbav:"line_items"`
	Discounts  []Discount    `dynamodbav:"discounts,omitempty"`
	TaxRateBps int64         `dynamodbav:"tax_rate_bps,omitempty"`
	Payments   []Payment     `dynamodbav:"payments,omitempty"`
	Status     InvoiceStatus `dynamodbav:"status"`
	Version    int64         `dynamodbav:"version"`
	CreatedAt  time.Time     `dynamodbav:"created_at"`
	UpdatedAt  time.Time     `dynamodbav:"updated_at"`
}

// FinanceRecordType marks a finance record as project income or expense.
type FinanceRecordType string

const (
	FinanceIncome  FinanceRecordType = "INCOME"
	FinanceExpense FinanceRecordType = "EXPENSE"
)

// FinanceRecord is a project-scoped ledger line, written as the counterpart
// of an invoice payment or a wallet transfer. LinkedRecordID carries the
// invoice id or transfer id it belongs to.
type FinanceRecord struct {
	ID             string            `dynamodbav:"id"`
	ProjectID      string            `dynamodbav:"project_id"`
	Type           FinanceRecordType `dynamodbav:"type"`
	Amount         int64             `dynamodbav:"amount"`
	Currency       CurrencyCode      `dynamodbav:"currency"`
	Date           time.Time         `dynamodbav:"date"`
	Category       string            `dynamodbav:"category,omitempty"`
	RecordedByUID  string            `dynamodbav:"recorded_by_uid,omitempty"`
	LinkedRecordID string            `dynamodbav:"linked_record_id,omitempty"`
	CreatedAt      time.Time         `dynamodbav:"created_at"`
}

// Project is read-only collaborator data; the ledger engine only needs its
// currency.
type Project struct {
	ID       string       `dynamodbav:"id"`
	Name     string       `dynamodbav:"name,omitempty"`
	Currency CurrencyCode `dynamodbav:"currency"`
}
