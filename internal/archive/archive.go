// Package archive reads the gzip-compressed tar archives produced by
// `tw runs dump` and returns selected members parsed as JSON.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ohler55/ojg/oj"
)

// Select opens the archive at path and returns the parsed JSON content of
// every member whose name exactly matches one of names. Other members are
// skipped unread. Requested names missing from the archive are simply absent
// from the result; callers decide whether that is fatal. If a name appears
// more than once the last occurrence wins.
func Select(path string, names ...string) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive %q: %w", path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("read archive %q: %w", path, err)
	}
	defer gz.Close()

	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}

	selected := make(map[string]any, len(names))
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read archive %q: %w", path, err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		if _, ok := wanted[hdr.Name]; !ok {
			continue
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("read member %q: %w", hdr.Name, err)
		}
		value, err := oj.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse member %q: %w", hdr.Name, err)
		}
		selected[hdr.Name] = value
	}
	return selected, nil
}
