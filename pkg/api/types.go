// Package api holds the transport-level request and response shapes for the
// ledger HTTP surface. Domain models stay in pkg/models; pkg/mapping
// translates between the two.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// NewWallet is the request body for creating (or re-requesting) a wallet.
type NewWallet struct {
	OwnerID  string `json:"owner_id"`
	Balance  int64  `json:"balance,omitempty"`
	Currency string `json:"currency"`
}

// Wallet is the API representation of a wallet.
type Wallet struct {
	OwnerID   string    `json:"owner_id"`
	Balance   int64     `json:"balance"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

// WalletTransaction is the API representation of one balance change.
type WalletTransaction struct {
	Id             openapi_types.UUID  `json:"id"`
	WalletOwnerID  string              `json:"wallet_owner_id"`
	Amount         int64               `json:"amount"`
	Type           string              `json:"type"`
	LinkedRecordID *openapi_types.UUID `json:"linked_record_id,omitempty"`
	Note           string              `json:"note,omitempty"`
	Timestamp      time.Time           `json:"timestamp"`
}

// NewExpense is the request body for creating an expense.
type NewExpense struct {
	Amount         int64               `json:"amount"`
	Currency       string              `json:"currency"`
	CategoryID     string              `json:"category_id,omitempty"`
	PaidFromWallet bool                `json:"paid_from_wallet"`
	WalletOwnerID  string              `json:"wallet_owner_id,omitempty"`
	Date           *openapi_types.Date `json:"date,omitempty"`
}

// Expense is the API representation of an expense.
type Expense struct {
	Id             openapi_types.UUID `json:"id"`
	Amount         int64              `json:"amount"`
	Currency       string             `json:"currency"`
	CategoryID     string             `json:"category_id,omitempty"`
	PaidFromWallet bool               `json:"paid_from_wallet"`
	WalletOwnerID  string             `json:"wallet_owner_id,omitempty"`
	Date           openapi_types.Date `json:"date"`
	CreatedAt      time.Time          `json:"created_at"`
}

// NewLineItem is one billed line in an invoice creation request.
type NewLineItem struct {
	Description string `json:"description,omitempty"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	Currency    string `json:"currency"`
}

// NewDiscount is a display-level adjustment in an invoice creation request.
type NewDiscount struct {
	Description string `json:"description,omitempty"`
	Amount      int64  `json:"amount"`
}

// NewInvoice is the request body for creating an invoice.
type NewInvoice struct {
	ProjectID  string        `json:"project_id"`
	LineItems  []NewLineItem `json:"line_items"`
	Discounts  []NewDiscount `json:"discounts,omitempty"`
	TaxRateBps int64         `json:"tax_rate_bps,omitempty"`
	Status     string        `json:"status,omitempty"`
}

// NewPayment is the request body for recording an invoice payment.
type NewPayment struct {
	Amount int64               `json:"amount"`
	Date   *openapi_types.Date `json:"date,omitempty"`
	Method string              `json:"method,omitempty"`
}

// Payment is the API representation of a collected payment.
type Payment struct {
	Id     openapi_types.UUID `json:"id"`
	Amount int64              `json:"amount"`
	Date   openapi_types.Date `json:"date"`
	Method string             `json:"method,omitempty"`
}

// Invoice is the API representation of an invoice with its derived status.
type Invoice struct {
	Id        openapi_types.UUID `json:"id"`
	ProjectID string             `json:"project_id"`
	Total     int64              `json:"total"`
	TotalPaid int64              `json:"total_paid"`
	Status    string             `json:"status"`
	Payments  []Payment          `json:"payments"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// NewTransfer is the request body for funding or withdrawing a wallet.
type NewTransfer struct {
	ProjectID     string `json:"project_id"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Note          string `json:"note,omitempty"`
	RecordedByUID string `json:"recorded_by_uid,omitempty"`
}

// FinanceRecord is the API representation of a project ledger line.
type FinanceRecord struct {
	Id             openapi_types.UUID  `json:"id"`
	ProjectID      string              `json:"project_id"`
	Type           string              `json:"type"`
	Amount         int64               `json:"amount"`
	Currency       string              `json:"currency"`
	Date           openapi_types.Date  `json:"date"`
	Category       string              `json:"category,omitempty"`
	RecordedByUID  string              `json:"recorded_by_uid,omitempty"`
	LinkedRecordID *openapi_types.UUID `json:"linked_record_id,omitempty"`
}

// TransferResult is the response for a completed wallet transfer.
type TransferResult struct {
	FinanceRecord     FinanceRecord     `json:"finance_record"`
	WalletTransaction WalletTransaction `json:"wallet_transaction"`
}

// PaymentResult is the response for a recorded invoice payment.
type PaymentResult struct {
	Invoice       Invoice       `json:"invoice"`
	FinanceRecord FinanceRecord `json:"finance_record"`
}
