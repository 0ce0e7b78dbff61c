package store

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/onestroke/level"
)

var (
	// ErrChecksum indicates a document whose checksum does not match its levels.
	ErrChecksum = errors.New("store: checksum mismatch")

	// ErrFormat indicates input that is neither a catalog object nor an array.
	ErrFormat = errors.New("store: unrecognized catalog format")
)

// document is the on-disk catalog object.
type document struct {
	Checksum string        `json:"checksum,omitempty"`
	Levels   level.Catalog `json:"levels"`
}

// Checksum returns the hex sha256 of the compact JSON encoding of cat.
func Checksum(cat level.Catalog) (string, error) {
	if cat == nil {
		cat = level.Catalog{}
	}
	b, err := json.Marshal(cat)
	if err != nil {
		return "", fmt.Errorf("store: Checksum: %w", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// ReadCatalog decodes a catalog document or a bare level array. A present
// checksum must match.
func ReadCatalog(r io.Reader) (level.Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("store: ReadCatalog: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("store: ReadCatalog: empty input: %w", ErrFormat)
	}

	switch data[0] {
	case '[':
		var cat level.Catalog
		if err = json.Unmarshal(data, &cat); err != nil {
			return nil, fmt.Errorf("store: ReadCatalog: %w", err)
		}
		return cat, nil

	case '{':
		var doc document
		if err = json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("store: ReadCatalog: %w", err)
		}
		if doc.Checksum != "" {
			sum, err := Checksum(doc.Levels)
			if err != nil {
				return nil, err
			}
			if sum != doc.Checksum {
				return nil, fmt.Errorf("store: ReadCatalog: have %s, computed %s: %w", doc.Checksum, sum, ErrChecksum)
			}
		}
		return doc.Levels, nil
	}
	return nil, fmt.Errorf("store: ReadCatalog: leading %q: %w", data[0], ErrFormat)
}

// WriteCatalog encodes cat as an indented document with its checksum.
func WriteCatalog(w io.Writer, cat level.Catalog) error {
	if cat == nil {
		cat = level.Catalog{}
	}
	sum, err := Checksum(cat)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err = enc.Encode(document{Checksum: sum, Levels: cat}); err != nil {
		return fmt.Errorf("store: WriteCatalog: %w", err)
	}
	return nil
}

// LoadFile reads a catalog file.
func LoadFile(path string) (level.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: LoadFile: %w", err)
	}
	defer f.Close()

	cat, err := ReadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// SaveFile writes cat to a temporary file next to path and renames it into
// place, so readers never observe a partial catalog.
func SaveFile(path string, cat level.Catalog) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("store: SaveFile: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = WriteCatalog(tmp, cat); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("store: SaveFile: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("store: SaveFile: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("store: SaveFile: %w", err)
	}
	return nil
}
