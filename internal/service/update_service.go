package service

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"task-status-viewer/internal/domain"
	"task-status-viewer/internal/store"
)

type UpdateService struct {
	catalog store.UpdateCatalog
	md      goldmark.Markdown
}

func NewUpdateService(catalog store.UpdateCatalog) (*UpdateService, error) {
	if catalog == nil {
		return nil, ErrCatalogNil
	}

	return &UpdateService{
		catalog: catalog,
		md:      goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}, nil
}

func (s *UpdateService) ListUpdates() []domain.UpdateRecord {
	return s.catalog.All()
}

func (s *UpdateService) GetUpdate(id string) (domain.UpdateRecord, error) {
	record, ok := s.catalog.Get(id)
	if !ok {
		return domain.UpdateRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return record, nil
}

// RenderContent converts the record's markdown body to HTML. Raw HTML in the
// markdown is not passed through.
func (s *UpdateService) RenderContent(record domain.UpdateRecord) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(record.Content), &buf); err != nil {
		return "", fmt.Errorf("render update %s: %w", record.ID, err)
	}

	return buf.String(), nil
}
