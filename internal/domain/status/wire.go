package status

import (
	"bytes"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/edumarques81/mixerd/internal/types"
)

// mixerStatusWire is the serialized layout of MixerStatus. Field names are
// the client contract.
type mixerStatusWire struct {
	Hardware       HardwareStatus                          `json:"hardware"`
	FaderStatus    [types.FaderNameCount]FaderStatus       `json:"fader_status"`
	MicStatus      MicSettings                             `json:"mic_status"`
	Levels         Levels                                  `json:"levels"`
	Router         [types.InputDeviceCount]types.OutputSet `json:"router"`
	RouterTable    RouterTable                             `json:"router_table"`
	CoughButton    CoughButton                             `json:"cough_button"`
	Lighting       Lighting                                `json:"lighting"`
	Effects        *Effects                                `json:"effects,omitempty"`
	Sampler        *Sampler                                `json:"sampler,omitempty"`
	ProfileName    string                                  `json:"profile_name"`
	MicProfileName string                                  `json:"mic_profile_name"`
}

// MarshalJSON refuses a tree that Validate rejects, since the strict decoder
// would not read it back. Nil maps encode as empty objects.
func (m MixerStatus) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(mixerStatusWire{
		Hardware:       m.hardware,
		FaderStatus:    m.Faders,
		MicStatus:      m.MicStatus.wire(),
		Levels:         m.Levels,
		Router:         m.router.sets,
		RouterTable:    m.router.table,
		CoughButton:    m.CoughButton,
		Lighting:       m.Lighting.wire(),
		Effects:        m.effects.wire(),
		Sampler:        m.sampler.wire(),
		ProfileName:    m.ProfileName,
		MicProfileName: m.MicProfileName,
	})
}

// UnmarshalJSON decodes strictly. A missing or null required field, a fixed
// array of the wrong length, an unknown enumeration name, routing views that
// disagree or a substructure that contradicts the variant fail the whole
// decode and leave m untouched.
func (m *MixerStatus) UnmarshalJSON(data []byte) error {
	if err := checkRequired(data, typeOf[mixerStatusWire](), ""); err != nil {
		return err
	}
	var w mixerStatusWire
	if err := json.Unmarshal(data, &w); err != nil {
		return wrapDecode(err)
	}

	r, err := routerFromWire(w.Router, w.RouterTable)
	if err != nil {
		return err
	}
	for f := range w.FaderStatus {
		if w.FaderStatus[f].Scribble.IsEmpty() {
			w.FaderStatus[f].Scribble = nil
		}
	}

	next := MixerStatus{
		hardware:       w.Hardware,
		Faders:         w.FaderStatus,
		MicStatus:      w.MicStatus,
		Levels:         w.Levels,
		CoughButton:    w.CoughButton,
		Lighting:       w.Lighting,
		ProfileName:    w.ProfileName,
		MicProfileName: w.MicProfileName,
		router:         r,
		effects:        w.Effects,
		sampler:        w.Sampler,
	}
	if err := next.validate(); err != nil {
		return &DecodeError{Path: err.Path, Err: err.Err}
	}
	*m = next
	return nil
}

// DecodeMixerStatus strictly decodes a single mixer snapshot.
func DecodeMixerStatus(data []byte) (*MixerStatus, error) {
	m := new(MixerStatus)
	if err := json.Unmarshal(data, m); err != nil {
		return nil, wrapDecode(err)
	}
	return m, nil
}

// DecodeDaemonStatus strictly decodes a whole daemon snapshot.
func DecodeDaemonStatus(data []byte) (*DaemonStatus, error) {
	d := new(DaemonStatus)
	if err := json.Unmarshal(data, d); err != nil {
		return nil, wrapDecode(err)
	}
	return d, nil
}

func wrapDecode(err error) error {
	if errors.Is(err, ErrMalformed) {
		return err
	}
	return &DecodeError{Err: err}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

var (
	jsonUnmarshalerType = typeOf[json.Unmarshaler]()
	textUnmarshalerType = typeOf[encoding.TextUnmarshaler]()
)

var jsonNull = []byte("null")

// checkRequired walks the payload alongside the Go type it will be decoded
// into. encoding/json tolerates missing fields, nulls and short arrays; this
// pass rejects them before decoding. Fields tagged omitempty are optional.
// Types that decode themselves (enumerations, sets, nested statuses) are not
// descended into.
func checkRequired(data []byte, t reflect.Type, path string) error {
	if reflect.PointerTo(t).Implements(jsonUnmarshalerType) || reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
			return nil
		}
		return checkRequired(data, t.Elem(), path)

	case reflect.Struct:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
			return malformed(path, "expected object")
		}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name, optional := fieldName(f)
			if name == "-" {
				continue
			}
			fieldPath := joinPath(path, name)
			raw, ok := obj[name]
			if !ok {
				if optional {
					continue
				}
				return malformed(fieldPath, "missing required field")
			}
			if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
				if !optional {
					return malformed(fieldPath, "required field is null")
				}
				if isSubstructure(f.Type) {
					return malformed(fieldPath, "optional substructure is null; omit it instead")
				}
				continue
			}
			if err := checkRequired(raw, f.Type, fieldPath); err != nil {
				return err
			}
		}
		return nil

	case reflect.Array, reflect.Slice:
		var elems []json.RawMessage
		if err := json.Unmarshal(data, &elems); err != nil || elems == nil {
			return malformed(path, "expected array")
		}
		if t.Kind() == reflect.Array && len(elems) != t.Len() {
			return malformed(path, "expected %d elements, got %d", t.Len(), len(elems))
		}
		for i, raw := range elems {
			if err := checkElem(raw, t.Elem(), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.Map:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
			return malformed(path, "expected object")
		}
		for k, raw := range obj {
			if err := checkElem(raw, t.Elem(), joinPath(path, k)); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

// isSubstructure reports whether t is a pointer to a struct. Optional
// substructures are either present or absent; only optional scalars accept
// null in place of absence.
func isSubstructure(t reflect.Type) bool {
	return t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct
}

func checkElem(raw json.RawMessage, t reflect.Type, path string) error {
	if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
		return malformed(path, "null element")
	}
	return checkRequired(raw, t, path)
}

func fieldName(f reflect.StructField) (name string, optional bool) {
	tag := f.Tag.Get("json")
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}
	optional = strings.Contains(opts, "omitempty")
	return name, optional
}

func joinPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}
