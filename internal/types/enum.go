// Package types holds the enumerated identifiers shared by the mixer status
// model. Every identifier serializes as its symbolic name, never as an ordinal.
package types

import (
	"errors"
	"fmt"
)

// ErrUnknownName is returned when decoding a symbolic name that is not part of
// an enumeration.
var ErrUnknownName = errors.New("unknown enumeration name")

// enum is the name table behind one identifier type. Ordinals are positions in
// names, so declaration order is the wire order of enum-indexed arrays.
type enum[T ~uint8] struct {
	kind   string
	names  []string
	byName map[string]T
}

// newEnum builds the table and panics when the name list does not match the
// declared cardinality.
func newEnum[T ~uint8](kind string, count int, names ...string) *enum[T] {
	if len(names) != count {
		panic(fmt.Sprintf("types: %s declares %d values but names %d", kind, count, len(names)))
	}
	e := &enum[T]{kind: kind, names: names, byName: make(map[string]T, count)}
	for i, n := range names {
		if _, dup := e.byName[n]; dup {
			panic(fmt.Sprintf("types: %s has duplicate name %q", kind, n))
		}
		e.byName[n] = T(i)
	}
	return e
}

func (e *enum[T]) valid(v T) bool {
	return int(v) < len(e.names)
}

func (e *enum[T]) name(v T) string {
	if !e.valid(v) {
		return fmt.Sprintf("%s(%d)", e.kind, uint8(v))
	}
	return e.names[v]
}

func (e *enum[T]) parse(s string) (T, error) {
	v, ok := e.byName[s]
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", ErrUnknownName, e.kind, s)
	}
	return v, nil
}

func (e *enum[T]) marshal(v T) ([]byte, error) {
	if !e.valid(v) {
		return nil, fmt.Errorf("types: %s ordinal %d out of range", e.kind, uint8(v))
	}
	return []byte(e.names[v]), nil
}

func (e *enum[T]) unmarshal(dst *T, b []byte) error {
	v, err := e.parse(string(b))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func (e *enum[T]) all() []T {
	out := make([]T, len(e.names))
	for i := range out {
		out[i] = T(i)
	}
	return out
}
