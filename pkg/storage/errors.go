package storage

import "errors"

// ErrInsufficientFunds is returned when a debit or withdrawal would exceed the
// wallet balance. It is checked before any write is attempted.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrConflict is returned when an operation repeatedly lost the optimistic
// version check against a concurrent writer and gave up retrying.
var ErrConflict = errors.New("concurrent modification conflict")

// ErrWalletNotFound is returned when no wallet exists for the given owner.
var ErrWalletNotFound = errors.New("wallet not found")

// ErrExpenseNotFound is returned when the referenced expense does not exist.
var ErrExpenseNotFound = errors.New("expense not found")

// ErrInvoiceNotFound is returned when the referenced invoice does not exist.
var ErrInvoiceNotFound = errors.New("invoice not found")

// ErrProjectNotFound is returned when the referenced project does not exist.
var ErrProjectNotFound = errors.New("project not found")
