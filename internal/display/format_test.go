package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seisgo/minos"
)

func TestFormatFrequency(t *testing.T) {
	assert.Equal(t, "0.814338 mHz", FormatFrequency(0.814338))
}

func TestFormatPeriod(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"long period one decimal", 3233.255, "3233.3 s"},
		{"short period three decimals", 76.01218, "76.012 s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPeriod(tt.in))
		})
	}
}

func TestModeTable(t *testing.T) {
	modes := []minos.Mode{
		{
			Key:              minos.ModeKey{N: 0, Family: minos.FamilySpheroidal, L: 2},
			Frequency:        0.309286,
			Period:           3233.255,
			PhaseVelocity:    9.89482,
			GroupVelocity:    7.73559,
			Q:                509.6742,
			RayleighQuotient: 1.021921e-10,
		},
		{
			Key:           minos.ModeKey{N: 10, Family: minos.FamilyToroidal, L: 34},
			Frequency:     13.15579,
			Period:        76.01218,
			PhaseVelocity: 15.26459,
			GroupVelocity: 5.348,
			Q:             227.8324,
		},
	}

	out := ModeTable(modes)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "freq (mHz)")
	assert.Contains(t, lines[1], "0S2")
	assert.Contains(t, lines[1], "0.309286")
	assert.Contains(t, lines[2], "10T34")
	assert.Contains(t, lines[2], "13.155790")
}
