package eggtimer

import (
	"fmt"
	"math"
)

// FormatClock renders seconds as zero padded MM:SS.
func FormatClock(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}

	minutes := int(math.Floor(seconds / 60))
	secs := int(math.Round(seconds)) % 60

	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// FormatDuration is FormatClock for whole seconds.
func FormatDuration(seconds int) string {
	return FormatClock(float64(seconds))
}
