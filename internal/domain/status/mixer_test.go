package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumarques81/mixerd/internal/types"
)

func hardwareFor(v types.DeviceType) HardwareStatus {
	id := "usb-1-4"
	return HardwareStatus{
		Versions: types.FirmwareVersions{
			Firmware:  types.NewVersionNumber(1, 4, 2, 107),
			FPGACount: 22,
			DICE:      types.NewVersionNumber(1, 0, 0),
		},
		SerialNumber:     "S210500771CQK",
		ManufacturedDate: "2021-05-07",
		DeviceType:       v,
		USBDevice: USBProductInformation{
			ManufacturerName: "TC-Helicon",
			ProductName:      "Mixer",
			Version:          [3]uint8{1, 2, 3},
			BusNumber:        1,
			Address:          4,
			Identifier:       &id,
		},
	}
}

func strPtr(s string) *string { return &s }

func TestNewMixerStatusCapabilityGating(t *testing.T) {
	tests := []struct {
		variant     types.DeviceType
		wantEffects bool
		wantSampler bool
	}{
		{types.DeviceTypeUnknown, false, false},
		{types.DeviceTypeFull, true, true},
		{types.DeviceTypeMini, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			m := NewMixerStatus(hardwareFor(tt.variant))

			assert.Equal(t, tt.wantEffects, m.HasEffects())
			assert.Equal(t, tt.wantSampler, m.HasSampler())

			e, err := m.Effects()
			if tt.wantEffects {
				require.NoError(t, err)
				assert.NotNil(t, e)
			} else {
				assert.Nil(t, e)
				assert.ErrorIs(t, err, ErrUnsupported)
				var ce *CapabilityError
				require.True(t, errors.As(err, &ce))
				assert.Equal(t, tt.variant, ce.Variant)
				assert.Equal(t, CapabilityEffects, ce.Capability)
			}

			s, err := m.Sampler()
			if tt.wantSampler {
				require.NoError(t, err)
				assert.Len(t, s.Banks, types.SampleBankCount)
			} else {
				assert.Nil(t, s)
				assert.ErrorIs(t, err, ErrUnsupported)
			}
		})
	}
}

func TestFixedArraysHaveEnumerationLength(t *testing.T) {
	m := NewMixerStatus(hardwareFor(types.DeviceTypeFull))

	assert.Len(t, m.Faders, types.FaderNameCount)
	assert.Len(t, m.Levels.Volumes, types.ChannelNameCount)
	assert.Len(t, m.MicStatus.MicGains, types.MicrophoneTypeCount)
	assert.Len(t, m.RouterSets(), types.InputDeviceCount)
	table := m.RouterTable()
	assert.Len(t, table, types.InputDeviceCount)
	for _, row := range table {
		assert.Len(t, row, types.OutputDeviceCount)
	}

	assert.Len(t, types.AllFaderNames(), types.FaderNameCount)
	assert.Len(t, types.AllChannelNames(), types.ChannelNameCount)
	assert.Len(t, types.AllInputDevices(), types.InputDeviceCount)
	assert.Len(t, types.AllOutputDevices(), types.OutputDeviceCount)
}

func TestAccessorsCoverEveryIdentifier(t *testing.T) {
	m := NewMixerStatus(hardwareFor(types.DeviceTypeMini))

	for i, ch := range types.AllChannelNames() {
		m.SetChannelVolume(ch, uint8(i*10))
	}
	for i, ch := range types.AllChannelNames() {
		assert.Equal(t, uint8(i*10), m.ChannelVolume(ch), ch.String())
	}

	for i, mt := range types.AllMicrophoneTypes() {
		m.SetMicGain(mt, uint16(1000+i))
		assert.Equal(t, uint16(1000+i), m.MicGain(mt))
	}

	for _, f := range types.AllFaderNames() {
		m.SetFaderChannel(f, types.ChannelGame)
		m.SetFaderMuteType(f, types.MuteToStream)
		assert.Equal(t, FaderStatus{Channel: types.ChannelGame, MuteType: types.MuteToStream}, m.Fader(f))
	}
}

func TestAccessorPanicsOnOutOfRangeIdentifier(t *testing.T) {
	m := NewMixerStatus(hardwareFor(types.DeviceTypeFull))
	bogus := types.ChannelName(types.ChannelNameCount)

	assert.False(t, bogus.Valid())
	assert.Panics(t, func() { m.SetChannelVolume(bogus, 1) })
}

func TestScribble(t *testing.T) {
	t.Run("empty scribble clears annotation", func(t *testing.T) {
		m := NewMixerStatus(hardwareFor(types.DeviceTypeFull))
		require.NoError(t, m.SetScribble(types.FaderA, &Scribble{BottomText: strPtr("Mic")}))
		require.NotNil(t, m.Fader(types.FaderA).Scribble)

		require.NoError(t, m.SetScribble(types.FaderA, &Scribble{}))
		assert.Nil(t, m.Fader(types.FaderA).Scribble)
	})

	t.Run("setter copies the record", func(t *testing.T) {
		m := NewMixerStatus(hardwareFor(types.DeviceTypeFull))
		s := &Scribble{LeftText: strPtr("1")}
		require.NoError(t, m.SetScribble(types.FaderB, s))
		s.LeftText = strPtr("2")
		assert.Equal(t, "1", *m.Fader(types.FaderB).Scribble.LeftText)
	})

	t.Run("mini has no scribble displays", func(t *testing.T) {
		m := NewMixerStatus(hardwareFor(types.DeviceTypeMini))
		err := m.SetScribble(types.FaderA, &Scribble{BottomText: strPtr("x")})
		assert.ErrorIs(t, err, ErrUnsupported)
	})
}

func TestDefaultLightingFollowsVariant(t *testing.T) {
	full := NewMixerStatus(hardwareFor(types.DeviceTypeFull)).Lighting
	assert.Len(t, full.Buttons, types.ButtonColourTargetsCount)
	assert.Len(t, full.Simple, types.SimpleColourTargetsCount)
	assert.Len(t, full.Sampler, types.SamplerColourTargetsCount)
	assert.Len(t, full.Encoders, types.EncoderColourTargetsCount)

	mini := NewMixerStatus(hardwareFor(types.DeviceTypeMini)).Lighting
	assert.Len(t, mini.Faders, types.FaderNameCount)
	assert.Len(t, mini.Buttons, len(miniButtons))
	assert.NotContains(t, mini.Buttons, types.ButtonEffectFx)
	assert.Empty(t, mini.Sampler)
	assert.Empty(t, mini.Encoders)

	unknown := NewMixerStatus(HardwareStatus{}).Lighting
	assert.NotNil(t, unknown.Faders)
	assert.Empty(t, unknown.Faders)
}

func TestSamplerButtons(t *testing.T) {
	m := NewMixerStatus(hardwareFor(types.DeviceTypeFull))
	s, err := m.Sampler()
	require.NoError(t, err)

	s.SetButton(types.BankB, types.PadTopRight, SamplerButton{
		Function: types.PlaybackLoop,
		Order:    types.OrderRandom,
		Samples:  []Sample{{Name: "airhorn.wav", StartPct: 0, StopPct: 100}},
	})
	s.SetPlaying(types.BankB, types.PadTopRight, true)

	b, ok := s.Button(types.BankB, types.PadTopRight)
	require.True(t, ok)
	assert.True(t, b.IsPlaying)
	assert.Equal(t, types.PlaybackLoop, b.Function)
	assert.Len(t, b.Samples, 1)
}

func TestCloneSharesNothing(t *testing.T) {
	m := NewMixerStatus(hardwareFor(types.DeviceTypeFull))
	require.NoError(t, m.SetScribble(types.FaderC, &Scribble{FileName: strPtr("icon.png")}))

	c := m.Clone()
	assert.Equal(t, m, c)

	c.Route(types.InputGame, types.OutputChatMic, true)
	c.MicStatus.Equaliser.Gain[types.Eq1KHz] = 9
	*c.Fader(types.FaderC).Scribble.FileName = "other.png"
	ce, _ := c.Effects()
	ce.RenamePreset(types.Preset2, "Changed")
	cs, _ := c.Sampler()
	cs.SetPlaying(types.BankA, types.PadTopLeft, true)

	assert.False(t, m.IsRouted(types.InputGame, types.OutputChatMic))
	assert.Equal(t, int8(0), m.MicStatus.Equaliser.Gain[types.Eq1KHz])
	assert.Equal(t, "icon.png", *m.Fader(types.FaderC).Scribble.FileName)
	me, _ := m.Effects()
	assert.Equal(t, "Preset 2", me.PresetNames[types.Preset2])
	ms, _ := m.Sampler()
	b, _ := ms.Button(types.BankA, types.PadTopLeft)
	assert.False(t, b.IsPlaying)
}
