// Package jsonfile contains the JSON document implementation of the catalog store.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	hosterrors "github.com/example/hostgen/internal/errors"
	"github.com/example/hostgen/internal/logging"
	"github.com/example/hostgen/internal/models"
	"github.com/example/hostgen/internal/ports/secondary"
)

// DefaultFileName is the store file used when no path is configured.
const DefaultFileName = "base.json"

// Store implements secondary.CatalogStore with a single JSON file.
type Store struct {
	path string
}

// NewStore creates a JSON store backed by path. The file does not need to exist.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultFileName
	}
	return &Store{path: path}
}

// Location returns the file path.
func (s *Store) Location() string {
	return s.path
}

// Load reads and decodes the whole file. A missing file yields an empty catalog.
func (s *Store) Load(ctx context.Context) (*models.Catalog, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		logging.FromContext(ctx).Debug().Str("path", s.path).Msg("Store file missing, starting empty")
		return models.NewCatalog(), nil
	}
	if err != nil {
		return nil, hosterrors.WrapStorage("load", s.path, err)
	}

	c, err := Decode(data)
	if err != nil {
		return nil, hosterrors.WrapStorage("decode", s.path, err)
	}
	return c, nil
}

// Save encodes c and replaces the file through a temp file in the same
// directory, so readers never see a half-written document.
func (s *Store) Save(ctx context.Context, c *models.Catalog) error {
	data, err := Encode(c)
	if err != nil {
		return hosterrors.WrapStorage("encode", s.path, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".hostgen-*.json")
	if err != nil {
		return hosterrors.WrapStorage("save", s.path, err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return hosterrors.WrapStorage("save", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return hosterrors.WrapStorage("save", s.path, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return hosterrors.WrapStorage("save", s.path, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return hosterrors.WrapStorage("save", s.path, err)
	}

	logging.FromContext(ctx).Debug().
		Str("path", s.path).
		Int("bytes", len(data)).
		Msg("Store saved")
	return nil
}

// Decode parses a catalog document. Maps missing from the document come
// back empty rather than nil.
func Decode(data []byte) (*models.Catalog, error) {
	var c models.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	c.Normalize()
	return &c, nil
}

// Encode renders a catalog the way every release has written it: four-space
// indent, map keys sorted, no HTML escaping and no trailing newline. The
// output is stable, so decoding and re-encoding a file written here gives
// back the same bytes.
func Encode(c *models.Catalog) ([]byte, error) {
	if c == nil {
		c = models.NewCatalog()
	}
	c.Normalize()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Ensure Store implements the interface
var _ secondary.CatalogStore = (*Store)(nil)
