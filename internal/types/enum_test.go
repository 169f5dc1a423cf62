package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumNamesRoundTrip(t *testing.T) {
	for _, ch := range AllChannelNames() {
		b, err := ch.MarshalText()
		require.NoError(t, err)

		var got ChannelName
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, ch, got)
	}
}

func TestEnumWireNames(t *testing.T) {
	tests := []struct {
		value fmtText
		want  string
	}{
		{FaderA, "A"},
		{ChannelMicMonitor, "MicMonitor"},
		{InputSamples, "Samples"},
		{OutputBroadcastMix, "BroadcastMix"},
		{Eq1KHz, "Equalizer1KHz"},
		{MiniEq90Hz, "Equalizer90Hz"},
		{Gate2000ms, "Gate2000ms"},
		{Ratio64_0, "Ratio64_0"},
		{Attack40ms, "Comp40ms"},
		{Release3000ms, "Comp3000ms"},
		{SamplerSelectB, "SamplerSelectB"},
		{Preset6, "Preset6"},
		{Robot3, "Robot3"},
		{PadBottomRight, "BottomRight"},
		{DeviceTypeMini, "Mini"},
	}
	for _, tt := range tests {
		b, err := tt.value.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(b))
	}
}

type fmtText interface {
	MarshalText() ([]byte, error)
}

func TestEnumUnknownName(t *testing.T) {
	_, err := ParseFaderName("E")
	assert.ErrorIs(t, err, ErrUnknownName)

	var mt MuteFunction
	err = json.Unmarshal([]byte(`"ToEverybody"`), &mt)
	assert.ErrorIs(t, err, ErrUnknownName)
}

func TestEnumOutOfRange(t *testing.T) {
	bogus := FaderName(FaderNameCount)
	assert.False(t, bogus.Valid())
	assert.Equal(t, "FaderName(4)", bogus.String())

	_, err := bogus.MarshalText()
	assert.Error(t, err)
}

func TestEnumMapKeys(t *testing.T) {
	in := map[EffectBankPresets]string{Preset1: "Clean", Preset3: "Robot"}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Preset1":"Clean","Preset3":"Robot"}`, string(data))

	var out map[EffectBankPresets]string
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestNewEnumRejectsWrongCardinality(t *testing.T) {
	assert.Panics(t, func() { newEnum[FaderName]("Broken", 3, "A", "B") })
	assert.Panics(t, func() { newEnum[FaderName]("Dup", 2, "A", "A") })
}

func TestCardinalities(t *testing.T) {
	assert.Equal(t, 4, FaderNameCount)
	assert.Equal(t, 11, ChannelNameCount)
	assert.Equal(t, 8, InputDeviceCount)
	assert.Equal(t, 5, OutputDeviceCount)
	assert.Equal(t, 3, MicrophoneTypeCount)
	assert.Len(t, AllGateTimes(), GateTimesCount)
	assert.Len(t, AllButtonColourTargets(), ButtonColourTargetsCount)
}
