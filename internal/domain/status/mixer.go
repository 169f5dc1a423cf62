// Package status is the shared runtime state of attached mixers: one
// MixerStatus per device, aggregated into a DaemonStatus. Values here are
// plain data; locking is the caller's business (see package daemon).
package status

import (
	"encoding/json"

	"github.com/edumarques81/mixerd/internal/types"
)

// MixerStatus is the complete state of one attached mixer.
//
// The hardware identity, routing and the variant-gated substructures are only
// reachable through methods so their invariants cannot be bypassed. Everything
// else is a plain field.
type MixerStatus struct {
	hardware HardwareStatus

	Faders         [types.FaderNameCount]FaderStatus
	MicStatus      MicSettings
	Levels         Levels
	CoughButton    CoughButton
	Lighting       Lighting
	ProfileName    string
	MicProfileName string

	router  Router
	effects *Effects
	sampler *Sampler
}

// FaderStatus is what a fader slot currently controls.
type FaderStatus struct {
	Channel  types.ChannelName  `json:"channel"`
	MuteType types.MuteFunction `json:"mute_type"`
	Scribble *Scribble          `json:"scribble,omitempty"`
}

// MarshalJSON omits a scribble with no field set, so an empty annotation and
// no annotation share one wire form.
func (f FaderStatus) MarshalJSON() ([]byte, error) {
	type plain FaderStatus
	p := plain(f)
	if p.Scribble.IsEmpty() {
		p.Scribble = nil
	}
	return json.Marshal(p)
}

// Scribble is the display annotation above a fader. Every field is optional;
// a nil FileName means no icon regardless of the text fields.
type Scribble struct {
	FileName   *string `json:"file_name,omitempty"`
	BottomText *string `json:"bottom_text,omitempty"`
	LeftText   *string `json:"left_text,omitempty"`
	Inverted   *bool   `json:"inverted,omitempty"`
}

// IsEmpty reports whether no field is set. A nil Scribble is empty.
func (s *Scribble) IsEmpty() bool {
	return s == nil || (s.FileName == nil && s.BottomText == nil && s.LeftText == nil && s.Inverted == nil)
}

// CoughButton is the behaviour of the cough (mic mute) button.
type CoughButton struct {
	IsToggle bool               `json:"is_toggle"`
	MuteType types.MuteFunction `json:"mute_type"`
}

// Levels are the channel volumes (0-255) plus the device-wide bleep level and
// de-esser amount.
type Levels struct {
	Volumes [types.ChannelNameCount]uint8 `json:"volumes"`
	Bleep   int8                          `json:"bleep"`
	DeEss   uint8                         `json:"deess"`
}

var defaultFaderChannels = [types.FaderNameCount]types.ChannelName{
	types.ChannelMic,
	types.ChannelMusic,
	types.ChannelChat,
	types.ChannelSystem,
}

// NewMixerStatus returns a fully defaulted status for the device described by
// hw. Effects and sampler exist only when the variant supports them. It is the
// only way to obtain a status for a known variant; the zero value is an
// Unknown device with empty lighting and equaliser tables.
func NewMixerStatus(hw HardwareStatus) *MixerStatus {
	caps := CapabilitiesOf(hw.DeviceType)

	m := &MixerStatus{
		hardware:    hw,
		MicStatus:   defaultMicSettings(),
		CoughButton: CoughButton{MuteType: types.MuteAll},
		Lighting:    defaultLighting(hw.DeviceType),
		router:      defaultRouter(),
	}
	for _, f := range types.AllFaderNames() {
		m.Faders[f] = FaderStatus{Channel: defaultFaderChannels[f], MuteType: types.MuteAll}
	}
	for _, ch := range types.AllChannelNames() {
		m.Levels.Volumes[ch] = 255
	}
	m.Levels.Bleep = -20
	if caps.Effects {
		m.effects = defaultEffects()
	}
	if caps.Sampler {
		m.sampler = defaultSampler()
	}
	return m
}

// Hardware returns the device identity.
func (m *MixerStatus) Hardware() HardwareStatus {
	return m.hardware
}

// DeviceType is shorthand for Hardware().DeviceType.
func (m *MixerStatus) DeviceType() types.DeviceType {
	return m.hardware.DeviceType
}

// SetFirmware replaces the reported firmware versions. The variant is fixed
// for the life of the status and cannot be changed.
func (m *MixerStatus) SetFirmware(v types.FirmwareVersions) {
	m.hardware.Versions = v
}

// Capabilities returns the capability row of this device's variant.
func (m *MixerStatus) Capabilities() Capabilities {
	return CapabilitiesOf(m.hardware.DeviceType)
}

// Supports reports whether the device has capability c.
func (m *MixerStatus) Supports(c Capability) bool {
	return m.Capabilities().Has(c)
}

// Fader returns the slot state of f.
func (m *MixerStatus) Fader(f types.FaderName) FaderStatus {
	return m.Faders[f]
}

// SetFaderChannel assigns ch to fader f.
func (m *MixerStatus) SetFaderChannel(f types.FaderName, ch types.ChannelName) {
	m.Faders[f].Channel = ch
}

// SetFaderMuteType sets what the mute button of fader f does.
func (m *MixerStatus) SetFaderMuteType(f types.FaderName, mt types.MuteFunction) {
	m.Faders[f].MuteType = mt
}

// SetScribble sets or clears the annotation of a fader. A scribble with no
// field set clears it.
func (m *MixerStatus) SetScribble(f types.FaderName, s *Scribble) error {
	if !m.Supports(CapabilityScribbles) {
		return unsupported(m.hardware.DeviceType, CapabilityScribbles)
	}
	if s.IsEmpty() {
		m.Faders[f].Scribble = nil
		return nil
	}
	c := *s
	m.Faders[f].Scribble = &c
	return nil
}

// ChannelVolume returns the volume of ch, 0-255.
func (m *MixerStatus) ChannelVolume(ch types.ChannelName) uint8 {
	return m.Levels.Volumes[ch]
}

// SetChannelVolume sets the volume of ch.
func (m *MixerStatus) SetChannelVolume(ch types.ChannelName, volume uint8) {
	m.Levels.Volumes[ch] = volume
}

// MicGain returns the stored gain for microphone type t. Each type keeps
// its own gain so switching microphones restores it.
func (m *MixerStatus) MicGain(t types.MicrophoneType) uint16 {
	return m.MicStatus.MicGains[t]
}

// SetMicGain stores the gain for microphone type t.
func (m *MixerStatus) SetMicGain(t types.MicrophoneType, gain uint16) {
	m.MicStatus.MicGains[t] = gain
}

// Route enables or disables in → out in both routing views.
func (m *MixerStatus) Route(in types.InputDevice, out types.OutputDevice, enabled bool) {
	m.router.Route(in, out, enabled)
}

// IsRouted reports whether in currently reaches out.
func (m *MixerStatus) IsRouted(in types.InputDevice, out types.OutputDevice) bool {
	return m.router.IsRouted(in, out)
}

// Outputs returns every output in reaches.
func (m *MixerStatus) Outputs(in types.InputDevice) types.OutputSet {
	return m.router.Outputs(in)
}

// RouterTable returns a copy of the routing matrix.
func (m *MixerStatus) RouterTable() RouterTable {
	return m.router.Table()
}

// RouterSets returns a copy of the per-input output sets.
func (m *MixerStatus) RouterSets() [types.InputDeviceCount]types.OutputSet {
	return m.router.Sets()
}

// Effects returns the effects section for mutation, or an error matching
// ErrUnsupported when the variant has none.
func (m *MixerStatus) Effects() (*Effects, error) {
	if m.effects == nil {
		return nil, unsupported(m.hardware.DeviceType, CapabilityEffects)
	}
	return m.effects, nil
}

// Sampler returns the sampler for mutation, or an error matching
// ErrUnsupported when the variant has none.
func (m *MixerStatus) Sampler() (*Sampler, error) {
	if m.sampler == nil {
		return nil, unsupported(m.hardware.DeviceType, CapabilitySampler)
	}
	return m.sampler, nil
}

// HasEffects reports whether the variant has an effects section.
func (m *MixerStatus) HasEffects() bool { return m.effects != nil }

// HasSampler reports whether the variant has a sampler.
func (m *MixerStatus) HasSampler() bool { return m.sampler != nil }
