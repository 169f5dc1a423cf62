package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionNumberText(t *testing.T) {
	tests := []struct {
		v    VersionNumber
		want string
	}{
		{NewVersionNumber(1, 3), "1.3"},
		{NewVersionNumber(1, 3, 40), "1.3.40"},
		{NewVersionNumber(1, 0, 0, 2016), "1.0.0.2016"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			b, err := tt.v.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))

			var got VersionNumber
			require.NoError(t, got.UnmarshalText(b))
			assert.Equal(t, tt.v, got)
		})
	}
}

func TestVersionNumberRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "1", "1.2.3.4.5", "1.x", "-1.2"} {
		var v VersionNumber
		assert.Error(t, v.UnmarshalText([]byte(in)), in)
	}
}

func TestFirmwareVersionsJSON(t *testing.T) {
	fw := FirmwareVersions{
		Firmware:  NewVersionNumber(1, 4, 2, 107),
		FPGACount: 22,
		DICE:      NewVersionNumber(1, 0, 0),
	}
	data, err := json.Marshal(fw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"firmware":"1.4.2.107","fpga_count":22,"dice":"1.0.0"}`, string(data))

	var got FirmwareVersions
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, fw, got)
}

func TestVersionNumberClone(t *testing.T) {
	v := NewVersionNumber(2, 1, 5)
	c := v.Clone()
	*c.Patch = 9
	assert.Equal(t, uint32(5), *v.Patch)
}
