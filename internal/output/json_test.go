package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/nfmeta/runmeta/internal/metadata"
)

func sampleDocument() *metadata.Mapping {
	doc := metadata.NewMapping()
	doc.Set("cost", 1.5)
	doc.Set("status", "SUCCEEDED")
	doc.Set("commitId", nil)
	doc.Set("params", map[string]any{"input": "s3://b/in"})
	return doc
}

func TestJSONRendererIndentsFourSpaces(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := NewJSON(buf).Render(sampleDocument()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	want := `{
    "cost": 1.5,
    "status": "SUCCEEDED",
    "commitId": null,
    "params": {
        "input": "s3://b/in"
    }
}
`
	if buf.String() != want {
		t.Fatalf("Render() = %q, want %q", buf.String(), want)
	}
}

func TestJSONRendererEmptyDocument(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := NewJSON(buf).Render(metadata.NewMapping()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if buf.String() != "{}\n" {
		t.Fatalf("Render() = %q, want %q", buf.String(), "{}\n")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteFile(path, sampleDocument()); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Contains(data, []byte(`"status": "SUCCEEDED"`)) {
		t.Fatalf("output missing rendered field: %s", data)
	}
}

func TestWriteFileOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := os.WriteFile(path, []byte("previous content"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if err := WriteFile(path, sampleDocument()); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if bytes.Contains(data, []byte("previous content")) {
		t.Fatalf("old content survived: %s", data)
	}
}

func TestWriteFileBadDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.json")
	if err := WriteFile(path, sampleDocument()); err == nil {
		t.Fatal("WriteFile() succeeded into a missing directory")
	}
}
