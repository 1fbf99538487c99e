package storage

import (
	"context"

	"github.com/finbooks/finbooks/pkg/models"
)

// FinanceReader defines the interface for reading a project's finance ledger.
type FinanceReader interface {
	// ListFinanceRecords retrieves all finance records for a project, most
	// recent first.
	ListFinanceRecords(ctx context.Context, projectID string) ([]models.FinanceRecord, error)
}

// ProjectReader exposes the read-only project data the ledger engine needs.
// Project CRUD itself belongs to an external collaborator.
type ProjectReader interface {
	// GetProject retrieves a project by id.
	GetProject(ctx context.Context, projectID string) (*models.Project, error)
}
