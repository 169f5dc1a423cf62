package types

import (
	"encoding/json"
	"fmt"
)

// OutputSet is a set of OutputDevice values stored as a bit mask. It encodes
// as a JSON array of output names in declaration order.
type OutputSet uint8

// NewOutputSet returns a set holding outputs.
func NewOutputSet(outputs ...OutputDevice) OutputSet {
	var s OutputSet
	for _, o := range outputs {
		s = s.With(o)
	}
	return s
}

func outputBit(o OutputDevice) OutputSet {
	if !o.Valid() {
		panic(fmt.Sprintf("types: output %d out of range", uint8(o)))
	}
	return 1 << o
}

// Contains reports whether o is a member.
func (s OutputSet) Contains(o OutputDevice) bool { return s&outputBit(o) != 0 }

// With returns s with o added.
func (s OutputSet) With(o OutputDevice) OutputSet { return s | outputBit(o) }

// Without returns s with o removed.
func (s OutputSet) Without(o OutputDevice) OutputSet { return s &^ outputBit(o) }

// Len returns the number of members.
func (s OutputSet) Len() int {
	n := 0
	for _, o := range AllOutputDevices() {
		if s.Contains(o) {
			n++
		}
	}
	return n
}

// Slice returns the members in declaration order.
func (s OutputSet) Slice() []OutputDevice {
	out := make([]OutputDevice, 0, OutputDeviceCount)
	for _, o := range AllOutputDevices() {
		if s.Contains(o) {
			out = append(out, o)
		}
	}
	return out
}

func (s OutputSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

func (s *OutputSet) UnmarshalJSON(b []byte) error {
	var outputs []OutputDevice
	if err := json.Unmarshal(b, &outputs); err != nil {
		return fmt.Errorf("output set: %w", err)
	}
	if outputs == nil {
		return fmt.Errorf("output set: expected array, got %s", b)
	}
	*s = NewOutputSet(outputs...)
	return nil
}
