// Package invoice holds the pure arithmetic behind invoice payment status.
// Keeping it free of persistence makes the derivation independently testable
// and guarantees the stored status can always be recomputed from the payment
// list without drift.
package invoice

import (
	"github.com/finbooks/finbooks/pkg/models"
)

// Total sums quantity * unit price across the line items.
//
// Discounts and tax are display-level adjustments and are deliberately not
// netted out here: the payment engine compares collected payments against the
// raw line-item total. Product is aware the invoice form models discounts and
// tax that this comparison ignores.
func Total(items []models.LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Quantity * item.UnitPrice
	}
	return total
}

// TotalPaid sums the amounts of the collected payments.
func TotalPaid(payments []models.Payment) int64 {
	var total int64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

// DeriveStatus computes the payment-driven status from the collected total
// versus the invoice total. Administrative states (Draft, Sent, Void) are
// never produced here.
func DeriveStatus(totalPaid, invoiceTotal int64) models.InvoiceStatus {
	switch {
	case totalPaid >= invoiceTotal:
		return models.InvoicePaid
	case totalPaid <= 0:
		return models.InvoiceUnpaid
	default:
		return models.InvoicePartial
	}
}
