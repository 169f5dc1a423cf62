package status

import (
	"maps"

	"github.com/edumarques81/mixerd/internal/types"
)

// Clone returns a deep copy that shares no memory with m.
func (m *MixerStatus) Clone() *MixerStatus {
	c := *m

	c.hardware.Versions.Firmware = m.hardware.Versions.Firmware.Clone()
	c.hardware.Versions.DICE = m.hardware.Versions.DICE.Clone()
	c.hardware.USBDevice.Identifier = clonePtr(m.hardware.USBDevice.Identifier)

	for i := range c.Faders {
		if s := m.Faders[i].Scribble; s != nil {
			c.Faders[i].Scribble = &Scribble{
				FileName:   clonePtr(s.FileName),
				BottomText: clonePtr(s.BottomText),
				LeftText:   clonePtr(s.LeftText),
				Inverted:   clonePtr(s.Inverted),
			}
		}
	}

	c.MicStatus.Equaliser.Gain = maps.Clone(m.MicStatus.Equaliser.Gain)
	c.MicStatus.Equaliser.Frequency = maps.Clone(m.MicStatus.Equaliser.Frequency)
	c.MicStatus.EqualiserMini.Gain = maps.Clone(m.MicStatus.EqualiserMini.Gain)
	c.MicStatus.EqualiserMini.Frequency = maps.Clone(m.MicStatus.EqualiserMini.Frequency)

	c.Lighting = Lighting{
		Faders:   maps.Clone(m.Lighting.Faders),
		Buttons:  maps.Clone(m.Lighting.Buttons),
		Simple:   maps.Clone(m.Lighting.Simple),
		Sampler:  maps.Clone(m.Lighting.Sampler),
		Encoders: maps.Clone(m.Lighting.Encoders),
	}

	if m.effects != nil {
		e := *m.effects
		e.PresetNames = maps.Clone(m.effects.PresetNames)
		c.effects = &e
	}

	if m.sampler != nil {
		s := &Sampler{Banks: make(map[types.SampleBank]map[types.SampleButtons]SamplerButton, len(m.sampler.Banks))}
		for bank, pads := range m.sampler.Banks {
			cp := make(map[types.SampleButtons]SamplerButton, len(pads))
			for pad, b := range pads {
				b.Samples = append(make([]Sample, 0, len(b.Samples)), b.Samples...)
				cp[pad] = b
			}
			s.Banks[bank] = cp
		}
		c.sampler = s
	}
	return &c
}

// Clone returns a deep copy of the envelope.
func (d *DaemonStatus) Clone() *DaemonStatus {
	c := &DaemonStatus{
		DaemonVersion: d.DaemonVersion,
		Mixers:        make(map[string]*MixerStatus, len(d.Mixers)),
		Paths:         d.Paths,
		Files:         d.Files.Clone(),
	}
	for k, m := range d.Mixers {
		c.Mixers[k] = m.Clone()
	}
	return c
}

// Clone returns a deep copy of the inventory. Nil collections come back empty.
func (f Files) Clone() Files {
	c := NewFiles()
	maps.Copy(c.Profiles, f.Profiles)
	maps.Copy(c.MicProfiles, f.MicProfiles)
	maps.Copy(c.Presets, f.Presets)
	maps.Copy(c.Samples, f.Samples)
	maps.Copy(c.Icons, f.Icons)
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
