package finances

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/finbooks/finbooks/pkg/api"
	"github.com/finbooks/finbooks/pkg/mapping"
	"github.com/finbooks/finbooks/pkg/storage"
)

// FinancesHandler holds the dependencies for project finance handlers.
type FinancesHandler struct {
	Store storage.FinanceReader
}

// NewFinancesHandler creates a new FinancesHandler.
func NewFinancesHandler(store storage.FinanceReader) *FinancesHandler {
	return &FinancesHandler{Store: store}
}

// ListFinanceRecords handles the logic for retrieving a project's ledger.
func (h *FinancesHandler) ListFinanceRecords(w http.ResponseWriter, r *http.Request, projectID string) {
	records, err := h.Store.ListFinanceRecords(r.Context(), projectID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve finance records: %v", err), http.StatusInternalServerError)
		return
	}

	apiRecords := make([]*api.FinanceRecord, len(records))
	for i := range records {
		apiRecords[i] = mapping.ToApiFinanceRecord(&records[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiRecords); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
