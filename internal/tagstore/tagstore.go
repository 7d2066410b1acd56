// Package tagstore implements the in-memory keyed tag store of spec.md
// §4.C13: an insertion-ordered (group, name) -> Value map with
// first-writer-wins semantics, except for known override tables that let a
// later writer (typically a MakerNote parser) replace an earlier generic
// EXIF entry for the same logical tag.
package tagstore

import "github.com/mmoretti/exifcore/internal/value"

// Store holds tags in "Group:Name" serialized-key form, preserving the
// order tags were first inserted (spec.md: "serialized form is
// Group:Name -> Value in insertion order").
type Store struct {
	values map[string]value.Value
	order  []string
	// overrides names keys that may be replaced by a later insertion even
	// though the key already exists (MakerNote overriding a generic EXIF
	// tag for the same logical name).
	overridable map[string]bool
}

func New() *Store {
	return &Store{values: map[string]value.Value{}, overridable: map[string]bool{}}
}

// Insert adds group:name -> v. If the key already exists and was not
// marked Overridable at its original insertion, the new write is dropped
// (first-writer-wins). Passing allowOverride=true both permits this write
// to replace an existing entry and marks the key overridable for any future
// write.
func (s *Store) Insert(group, name string, v value.Value, allowOverride bool) {
	key := group + ":" + name
	_, exists := s.values[key]
	if exists && !s.overridable[key] && !allowOverride {
		return
	}
	if !exists {
		s.order = append(s.order, key)
	}
	s.values[key] = v
	if allowOverride {
		s.overridable[key] = true
	}
}

func (s *Store) Get(group, name string) (value.Value, bool) {
	v, ok := s.values[group+":"+name]
	return v, ok
}

func (s *Store) GetKey(key string) (value.Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *Store) Has(group, name string) bool {
	_, ok := s.values[group+":"+name]
	return ok
}

// Keys returns every "Group:Name" key in insertion order.
func (s *Store) Keys() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// SerializeJSON renders the store as a flat JSON object in insertion order,
// matching the reference tool's tag-for-tag output shape.
func (s *Store) SerializeJSON() string {
	out := "{"
	for i, k := range s.order {
		if i > 0 {
			out += ","
		}
		out += quoteKey(k) + ":" + s.values[k].SerializeJSON()
	}
	return out + "}"
}

func quoteKey(k string) string {
	// Keys are always "Group:Name" ASCII identifiers; a tiny hand-rolled
	// quoter avoids pulling in encoding/json for something this narrow.
	b := make([]byte, 0, len(k)+2)
	b = append(b, '"')
	b = append(b, k...)
	b = append(b, '"')
	return string(b)
}
