package status

import (
	"errors"
	"fmt"

	"github.com/edumarques81/mixerd/internal/types"
)

var (
	// ErrUnsupported is returned when a substructure is read or mutated on a
	// device variant that does not have it.
	ErrUnsupported = errors.New("unsupported for this device variant")

	// ErrMalformed is returned when a serialized status cannot be decoded into
	// a complete, valid tree.
	ErrMalformed = errors.New("malformed status payload")

	// ErrMissing is returned when a substructure the variant requires is absent.
	ErrMissing = errors.New("missing substructure")

	// ErrNonFinite is returned for NaN or infinite floats, which JSON cannot
	// carry.
	ErrNonFinite = errors.New("non-finite value")
)

// CapabilityError reports which capability was missing on which variant.
// It matches ErrUnsupported with errors.Is.
type CapabilityError struct {
	Variant    types.DeviceType
	Capability Capability
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Variant, e.Capability, ErrUnsupported)
}

func (e *CapabilityError) Is(target error) bool {
	return target == ErrUnsupported
}

func unsupported(v types.DeviceType, c Capability) error {
	return &CapabilityError{Variant: v, Capability: c}
}

// DecodeError locates a decoding failure inside the payload. It matches
// ErrMalformed with errors.Is and unwraps to the underlying cause.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %v", ErrMalformed, e.Err)
	}
	return fmt.Sprintf("%v at %s: %v", ErrMalformed, e.Path, e.Err)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrMalformed
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StateError locates the part of a status tree that cannot be serialized.
type StateError struct {
	Path string
	Err  error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("invalid status at %s: %v", e.Path, e.Err)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

func malformed(path, format string, args ...any) error {
	return &DecodeError{Path: path, Err: fmt.Errorf(format, args...)}
}
