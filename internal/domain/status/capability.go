package status

import "github.com/edumarques81/mixerd/internal/types"

// Capability is a feature that only some device variants have.
type Capability uint8

const (
	CapabilityEffects Capability = iota
	CapabilitySampler
	CapabilityScribbles
	CapabilityEncoderLighting
	CapabilitySamplerLighting
)

func (c Capability) String() string {
	switch c {
	case CapabilityEffects:
		return "effects"
	case CapabilitySampler:
		return "sampler"
	case CapabilityScribbles:
		return "scribbles"
	case CapabilityEncoderLighting:
		return "encoder lighting"
	case CapabilitySamplerLighting:
		return "sampler lighting"
	default:
		return "unknown capability"
	}
}

// Capabilities is one row of the variant capability table.
type Capabilities struct {
	Effects         bool
	Sampler         bool
	Scribbles       bool
	EncoderLighting bool
	SamplerLighting bool
}

// CapabilitiesOf returns the capability row for a device variant. Only the
// full-size mixer carries effects, sampler, scribble displays and the lit
// controls that go with them; Mini and Unknown carry none of them.
func CapabilitiesOf(v types.DeviceType) Capabilities {
	if v == types.DeviceTypeFull {
		return Capabilities{
			Effects:         true,
			Sampler:         true,
			Scribbles:       true,
			EncoderLighting: true,
			SamplerLighting: true,
		}
	}
	return Capabilities{}
}

// Has reports whether c is in the row.
func (cs Capabilities) Has(c Capability) bool {
	switch c {
	case CapabilityEffects:
		return cs.Effects
	case CapabilitySampler:
		return cs.Sampler
	case CapabilityScribbles:
		return cs.Scribbles
	case CapabilityEncoderLighting:
		return cs.EncoderLighting
	case CapabilitySamplerLighting:
		return cs.SamplerLighting
	}
	return false
}
