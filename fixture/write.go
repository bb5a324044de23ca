package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrOutputExists reports a refusal to overwrite an existing output path.
// Published fixtures must not silently drift, so regeneration over an
// existing file requires an explicit override.
var ErrOutputExists = errors.New("fixture: output path already exists")

// Validator is implemented by every document type.
type Validator interface {
	Validate() error
}

// Marshal renders a document as indented JSON with a trailing newline.
func Marshal(doc any) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("fixture: marshal: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteFile validates doc, renders it in memory, and writes it to path in a
// single write. Without overwrite set, an existing path is refused before
// anything is written.
func WriteFile(path string, doc Validator, overwrite bool) error {
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("fixture: invalid document: %w", err)
	}

	data, err := Marshal(doc)
	if err != nil {
		return err
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrOutputExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("fixture: stat %s: %w", path, err)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("fixture: create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("fixture: write %s: %w", path, err)
	}
	return nil
}
