package tempscale

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScale(t *testing.T) {
	for _, s := range Scales() {
		got, ok := ParseScale(s.String())
		require.True(t, ok, s.String())
		assert.Equal(t, s, got)
	}

	tests := []struct {
		in   string
		want Scale
		ok   bool
	}{
		{"ipts-68", ScaleIPTS68, true},
		{"  HE3-62 ", ScaleHe362, true},
		{"xisu", ScaleXISU, true},
		{"He4-36", ScaleNone, false},
		{"", ScaleNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseScale(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestScales(t *testing.T) {
	assert.Len(t, Scales(), 14)
	assert.NotContains(t, Scales(), ScaleNone)
}

func TestScale_JSON(t *testing.T) {
	type wrapper struct {
		Scale Scale `json:"scale"`
	}

	b, err := json.Marshal(wrapper{Scale: ScaleHe458})
	require.NoError(t, err)
	assert.JSONEq(t, `{"scale":"He4-58"}`, string(b))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"scale":"nbs-39"}`), &w))
	assert.Equal(t, ScaleNBS39, w.Scale)

	require.NoError(t, json.Unmarshal([]byte(`{"scale":""}`), &w))
	assert.Equal(t, ScaleNone, w.Scale)

	assert.Error(t, json.Unmarshal([]byte(`{"scale":"ITS-2000"}`), &w))
}
