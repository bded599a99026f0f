package metadata

import (
	"bytes"
	"encoding/json"
)

// Mapping is a flat set of key/value pairs that remembers insertion order.
// Keys keep the position of their first insertion; setting an existing key
// replaces its value in place. The zero value is not usable; call NewMapping.
type Mapping struct {
	keys   []string
	values map[string]any
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]any)}
}

// Set stores value under key, appending key on first insertion.
func (m *Mapping) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key and whether key is present.
func (m *Mapping) Get(key string) (any, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Merge copies every entry of other into m in other's order. Keys already
// present keep their position but take other's value, so on a collision the
// argument wins.
func (m *Mapping) Merge(other *Mapping) {
	if other == nil {
		return
	}
	for _, key := range other.keys {
		m.Set(key, other.values[key])
	}
}

// MarshalJSON encodes the mapping as a JSON object with keys in insertion
// order. Output is compact; pair it with a json.Encoder indent for
// pretty-printing.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
