package status

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumarques81/mixerd/internal/types"
)

func TestNewDaemonStatusDefaults(t *testing.T) {
	d := NewDaemonStatus("1.0.0")

	assert.Equal(t, "1.0.0", d.DaemonVersion)
	assert.NotNil(t, d.Mixers)
	assert.Empty(t, d.Mixers)
	assert.NotNil(t, d.Files.Profiles)
	assert.NotNil(t, d.Files.Samples)
	assert.Equal(t, types.DeviceTypeUnknown, NewMixerStatus(HardwareStatus{}).DeviceType())

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"daemon_version": "1.0.0",
		"mixers": {},
		"paths": {
			"profile_directory": "",
			"mic_profile_directory": "",
			"samples_directory": "",
			"presets_directory": "",
			"icons_directory": ""
		},
		"files": {"profiles": [], "mic_profiles": [], "presets": [], "samples": {}, "icons": []}
	}`, string(data))
}

func TestDaemonStatusRoundTrip(t *testing.T) {
	d := NewDaemonStatus("1.2.3")
	d.Paths = Paths{
		ProfileDirectory:    "/home/user/.local/share/mixerd/profiles",
		MicProfileDirectory: "/home/user/.local/share/mixerd/mic-profiles",
		SamplesDirectory:    "/home/user/.local/share/mixerd/samples",
		PresetsDirectory:    "/home/user/.local/share/mixerd/presets",
		IconsDirectory:      "/home/user/.local/share/mixerd/icons",
	}
	d.Files.Profiles.Add("Default")
	d.Files.Profiles.Add("Streaming")
	d.Files.Icons.Add("mic.png")
	d.Files.Samples["Airhorn"] = "Recorded/Airhorn.wav"
	d.Mixers["S210500771CQK"] = mutatedStatus(t, types.DeviceTypeFull)
	d.Mixers["S220202153DI7"] = mutatedStatus(t, types.DeviceTypeMini)

	data, err := json.Marshal(d)
	require.NoError(t, err)

	got, err := DecodeDaemonStatus(data)
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestDaemonStatusDecodeIsStrict(t *testing.T) {
	d := NewDaemonStatus("1.2.3")
	d.Mixers["mini"] = NewMixerStatus(hardwareFor(types.DeviceTypeMini))
	data, err := json.Marshal(d)
	require.NoError(t, err)

	var obj map[string]any
	require.NoError(t, json.Unmarshal(data, &obj))

	t.Run("missing files", func(t *testing.T) {
		o := map[string]any{"daemon_version": obj["daemon_version"], "mixers": obj["mixers"], "paths": obj["paths"]}
		raw, _ := json.Marshal(o)
		_, err := DecodeDaemonStatus(raw)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("null inventory set", func(t *testing.T) {
		raw := []byte(`{"daemon_version":"x","mixers":{},"paths":{"profile_directory":"","mic_profile_directory":"","samples_directory":"","presets_directory":"","icons_directory":""},"files":{"profiles":null,"mic_profiles":[],"presets":[],"samples":{},"icons":[]}}`)
		_, err := DecodeDaemonStatus(raw)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("broken nested mixer", func(t *testing.T) {
		mixer := obj["mixers"].(map[string]any)["mini"].(map[string]any)
		delete(mixer, "lighting")
		raw, _ := json.Marshal(obj)
		_, err := DecodeDaemonStatus(raw)
		assert.ErrorIs(t, err, ErrMalformed)
	})
}

func TestStringSet(t *testing.T) {
	s := NewStringSet("b", "a")
	s.Add("c")
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("z"))
	assert.Equal(t, []string{"a", "b", "c"}, s.Sorted())

	var nilSet StringSet
	data, err := json.Marshal(nilSet)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
