package alloc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
	}{
		{"first-fit", FirstFit},
		{"firstFit", FirstFit},
		{"FIRST_FIT", FirstFit},
		{"first", FirstFit},
		{"best fit", BestFit},
		{"bestfit", BestFit},
		{"next-fit", NextFit},
		{"nextFit", NextFit},
		{"worst", WorstFit},
		{"worstFit", WorstFit},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStrategy(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStrategy_Unknown(t *testing.T) {
	for _, in := range []string{"", "fit", "buddy", "first-fits"} {
		_, err := ParseStrategy(in)
		require.ErrorIs(t, err, ErrUnknownStrategy, "input %q", in)
	}
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "first-fit", FirstFit.String())
	assert.Equal(t, "best-fit", BestFit.String())
	assert.Equal(t, "next-fit", NextFit.String())
	assert.Equal(t, "worst-fit", WorstFit.String())
	assert.Equal(t, "Strategy(9)", Strategy(9).String())

	for _, s := range Strategies() {
		parsed, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
		assert.True(t, s.Valid())
	}
	assert.False(t, Strategy(0).Valid())
}

func TestStrategy_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		S Strategy `json:"s"`
	}{WorstFit})
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":"worst-fit"}`, string(data))

	var out struct {
		S Strategy `json:"s"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"s":"nextFit"}`), &out))
	assert.Equal(t, NextFit, out.S)

	require.Error(t, json.Unmarshal([]byte(`{"s":"random"}`), &out))

	_, err = json.Marshal(struct{ S Strategy }{Strategy(0)})
	require.Error(t, err)
}
