// Package display formats computed modes for terminal output.
package display

import (
	"fmt"
	"strings"

	"github.com/seisgo/minos"
)

// FormatFrequency returns a frequency label in mHz.
func FormatFrequency(mhz float64) string {
	return fmt.Sprintf("%.6f mHz", mhz)
}

// FormatPeriod returns a period label in seconds.
func FormatPeriod(s float64) string {
	if s >= 1000 {
		return fmt.Sprintf("%.1f s", s)
	}
	return fmt.Sprintf("%.3f s", s)
}

// ModeTable renders an aligned table of modes in the given order.
func ModeTable(modes []minos.Mode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %4s %4s %14s %14s %12s %12s %10s %14s\n",
		"mode", "n", "l", "freq (mHz)", "period (s)", "c (km/s)", "U (km/s)", "Q", "raylquo")
	for _, m := range modes {
		fmt.Fprintf(&b, "%-8s %4d %4d %14.6f %14.4f %12.5f %12.5f %10.2f %14.4e\n",
			m.Name(), m.Key.N, m.Key.L,
			m.Frequency, m.Period, m.PhaseVelocity, m.GroupVelocity, m.Q, m.RayleighQuotient)
	}
	return b.String()
}

// FrequencyTable renders the frequency-only projection in its set order.
func FrequencyTable(set *minos.FrequencySet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %14s\n", "mode", "freq (mHz)")
	for _, k := range set.Keys() {
		f, _ := set.Lookup(k)
		fmt.Fprintf(&b, "%-8s %14.6f\n", k.Name(), f)
	}
	return b.String()
}
