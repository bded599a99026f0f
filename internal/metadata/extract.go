package metadata

import (
	"strings"

	"github.com/ohler55/ojg/jp"
)

// Extract resolves each dotted key path against tree and returns a Mapping
// from the original path strings to the resolved values. A path that does
// not resolve, whether through a missing key or a segment applied to
// something that is not a JSON object, yields nil. Absent data is never an
// error; nil stands in for it, indistinguishable from a stored null.
func Extract(tree any, keys []string) *Mapping {
	m := NewMapping()
	for _, key := range keys {
		m.Set(key, lookup(tree, key))
	}
	return m
}

// lookup splits key on "." and walks tree, matching every segment as a
// literal child name; key text is never interpreted as path syntax. Only
// JSON objects have named children, so arrays and scalars end the walk
// with no match.
func lookup(tree any, key string) any {
	x := jp.Expr{}
	for _, seg := range strings.Split(key, ".") {
		x = append(x, jp.Child(seg))
	}
	results := x.Get(tree)
	if len(results) == 0 {
		return nil
	}
	return results[0]
}
