// Package handlers assembles the HTTP surface of the ledger engine.
package handlers

import (
	"net/http"

	"github.com/finbooks/finbooks/pkg/handlers/expenses"
	"github.com/finbooks/finbooks/pkg/handlers/finances"
	"github.com/finbooks/finbooks/pkg/handlers/invoices"
	"github.com/finbooks/finbooks/pkg/handlers/transfers"
	"github.com/finbooks/finbooks/pkg/handlers/wallets"
	"github.com/finbooks/finbooks/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// NewRouter mounts all ledger routes on a chi router.
func NewRouter(store storage.Storage, middlewares ...func(http.Handler) http.Handler) chi.Router {
	walletsHandler := wallets.NewWalletsHandler(store, store)
	expensesHandler := expenses.NewExpensesHandler(store)
	invoicesHandler := invoices.NewInvoicesHandler(store)
	transfersHandler := transfers.NewTransfersHandler(store)
	financesHandler := finances.NewFinancesHandler(store)

	r := chi.NewRouter()
	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Post("/wallets", walletsHandler.EnsureWallet)
	r.Get("/wallets/{ownerId}", func(w http.ResponseWriter, req *http.Request) {
		walletsHandler.GetWallet(w, req, chi.URLParam(req, "ownerId"))
	})
	r.Get("/wallets/{ownerId}/transactions", func(w http.ResponseWriter, req *http.Request) {
		walletsHandler.ListTransactions(w, req, chi.URLParam(req, "ownerId"))
	})
	r.Post("/wallets/{ownerId}/fund", func(w http.ResponseWriter, req *http.Request) {
		transfersHandler.FundWallet(w, req, chi.URLParam(req, "ownerId"))
	})
	r.Post("/wallets/{ownerId}/withdraw", func(w http.ResponseWriter, req *http.Request) {
		transfersHandler.WithdrawFromWallet(w, req, chi.URLParam(req, "ownerId"))
	})

	r.Post("/expenses", expensesHandler.CreateExpense)
	r.Delete("/expenses/{expenseId}", func(w http.ResponseWriter, req *http.Request) {
		expensesHandler.DeleteExpense(w, req, chi.URLParam(req, "expenseId"))
	})

	r.Post("/invoices", invoicesHandler.CreateInvoice)
	r.Get("/invoices/{invoiceId}", func(w http.ResponseWriter, req *http.Request) {
		invoicesHandler.GetInvoice(w, req, chi.URLParam(req, "invoiceId"))
	})
	r.Post("/invoices/{invoiceId}/payments", func(w http.ResponseWriter, req *http.Request) {
		invoicesHandler.AddPayment(w, req, chi.URLParam(req, "invoiceId"))
	})

	r.Get("/projects/{projectId}/finances", func(w http.ResponseWriter, req *http.Request) {
		financesHandler.ListFinanceRecords(w, req, chi.URLParam(req, "projectId"))
	})

	return r
}
