package status

import (
	"fmt"
	"math"

	"github.com/edumarques81/mixerd/internal/types"
)

// Validate reports whether m can be serialized and read back. Substructures
// gated by capability must match the variant, and every float must be finite.
// Encoding and strict decoding both apply it, so a tree that encodes always
// decodes. The error is a *StateError; capability violations also match
// ErrUnsupported.
func (m *MixerStatus) Validate() error {
	if err := m.validate(); err != nil {
		return err
	}
	return nil
}

func (m *MixerStatus) validate() *StateError {
	variant := m.hardware.DeviceType
	caps := CapabilitiesOf(variant)

	if err := presence("effects", m.effects != nil, variant, caps.Effects, CapabilityEffects); err != nil {
		return err
	}
	if err := presence("sampler", m.sampler != nil, variant, caps.Sampler, CapabilitySampler); err != nil {
		return err
	}
	if !caps.Scribbles {
		for _, f := range types.AllFaderNames() {
			if !m.Faders[f].Scribble.IsEmpty() {
				return &StateError{
					Path: fmt.Sprintf("fader_status[%d].scribble", f),
					Err:  unsupported(variant, CapabilityScribbles),
				}
			}
		}
	}
	if err := m.Lighting.check(variant); err != nil {
		return err
	}

	for f, hz := range m.MicStatus.Equaliser.Frequency {
		if !finite(hz) {
			return nonFinite("mic_status.equaliser.frequency."+f.String(), hz)
		}
	}
	for f, hz := range m.MicStatus.EqualiserMini.Frequency {
		if !finite(hz) {
			return nonFinite("mic_status.equaliser_mini.frequency."+f.String(), hz)
		}
	}
	if m.sampler != nil {
		for bank, pads := range m.sampler.Banks {
			for pad, b := range pads {
				for i, s := range b.Samples {
					path := fmt.Sprintf("sampler.banks.%s.%s.samples[%d]", bank, pad, i)
					if !finite(s.StartPct) {
						return nonFinite(path+".start_pct", s.StartPct)
					}
					if !finite(s.StopPct) {
						return nonFinite(path+".stop_pct", s.StopPct)
					}
				}
			}
		}
	}
	return nil
}

// presence checks that an optional substructure exists exactly when the
// variant supports it.
func presence(path string, present bool, v types.DeviceType, supported bool, c Capability) *StateError {
	switch {
	case present && !supported:
		return &StateError{Path: path, Err: unsupported(v, c)}
	case !present && supported:
		return &StateError{Path: path, Err: fmt.Errorf("%w: %s requires %s", ErrMissing, v, c)}
	}
	return nil
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func nonFinite(path string, f float32) *StateError {
	return &StateError{Path: path, Err: fmt.Errorf("%w: %v", ErrNonFinite, f)}
}
