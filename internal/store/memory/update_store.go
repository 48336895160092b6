package memory

import (
	"slices"

	"task-status-viewer/internal/domain"
	"task-status-viewer/internal/store"
)

var _ store.UpdateCatalog = (*UpdateStore)(nil)

// UpdateStore holds the update catalog in curated order. It is filled once
// by New and never written afterwards, so reads need no locking.
type UpdateStore struct {
	records []domain.UpdateRecord
}

func New(records []domain.UpdateRecord) *UpdateStore {
	return &UpdateStore{
		records: slices.Clone(records),
	}
}

// All returns a copy of every record in catalog order.
func (s *UpdateStore) All() []domain.UpdateRecord {
	return slices.Clone(s.records)
}

// Get returns the first record whose ID matches.
func (s *UpdateStore) Get(id string) (domain.UpdateRecord, bool) {
	for _, r := range s.records {
		if r.ID == id {
			// record is non-pointer value
			return r, true
		}
	}
	return domain.UpdateRecord{}, false
}

func (s *UpdateStore) Len() int {
	return len(s.records)
}
