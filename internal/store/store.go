package store

import (
	"task-status-viewer/internal/domain"
)

// UpdateCatalog is a read-only, ordered collection of update records.
type UpdateCatalog interface {
	All() []domain.UpdateRecord
	Get(id string) (domain.UpdateRecord, bool)
}
