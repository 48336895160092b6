// Package updates bundles the changelog shown on the updates pages. The
// catalog order in catalog.yaml is curated and kept as-is.
package updates

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"task-status-viewer/internal/domain"
)

const catalogFile = "catalog.yaml"

//go:embed catalog.yaml content/*.md
var bundled embed.FS

var ErrDuplicateID = errors.New("duplicate update id")

var validate = validator.New()

type catalog struct {
	Updates []entry `yaml:"updates"`
}

type entry struct {
	ID      string `yaml:"id"`
	Date    string `yaml:"date"`
	Title   string `yaml:"title"`
	Type    string `yaml:"type"`
	Summary string `yaml:"summary"`
	File    string `yaml:"file"`
}

// Load reads the bundled catalog.
func Load() ([]domain.UpdateRecord, error) {
	return LoadFS(bundled, catalogFile)
}

// LoadFS reads a catalog file from fsys and resolves each entry's markdown
// file, relative to fsys root, into the record content.
func LoadFS(fsys fs.FS, name string) ([]domain.UpdateRecord, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(c.Updates))
	records := make([]domain.UpdateRecord, 0, len(c.Updates))
	for i, e := range c.Updates {
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("updates[%d]: %w: %s", i, ErrDuplicateID, e.ID)
		}
		seen[e.ID] = struct{}{}

		content, err := fs.ReadFile(fsys, e.File)
		if err != nil {
			return nil, fmt.Errorf("updates[%d]: read content: %w", i, err)
		}

		r := domain.UpdateRecord{
			ID:      e.ID,
			Date:    e.Date,
			Title:   e.Title,
			Type:    domain.UpdateType(e.Type),
			Summary: e.Summary,
			Content: string(content),
		}
		if err := validateRecord(r); err != nil {
			return nil, fmt.Errorf("updates[%d]: %w", i, err)
		}

		records = append(records, r)
	}

	return records, nil
}

func validateRecord(r domain.UpdateRecord) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed rule '%s' (value: '%v')", e.Field(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("invalid update %q: %s", r.ID, strings.Join(msgs, "; "))
}
