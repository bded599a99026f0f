package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nfmeta/runmeta/internal/metadata"
)

// JSONRenderer emits metadata documents as indented JSON.
type JSONRenderer struct {
	out io.Writer
}

// NewJSON creates a JSON renderer writing to out.
func NewJSON(out io.Writer) *JSONRenderer {
	return &JSONRenderer{out: out}
}

// Render encodes the document with four-space indentation, keys in the
// document's own order.
func (j *JSONRenderer) Render(doc *metadata.Mapping) error {
	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "    ")
	return enc.Encode(doc)
}

// WriteFile renders doc into the file at path, creating it if needed and
// truncating any previous content.
func WriteFile(path string, doc *metadata.Mapping) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file %q: %w", path, err)
	}
	if err := NewJSON(f).Render(doc); err != nil {
		f.Close()
		return fmt.Errorf("write output file %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write output file %q: %w", path, err)
	}
	return nil
}
