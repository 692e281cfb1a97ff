package content

import (
	"fmt"
	"math"
)

// FormatOptions controls how FormatTimestamp renders hours.
type FormatOptions struct {
	// ForceHours always renders the hour field, even below one hour.
	ForceHours bool
	// PadHours zero-pads the hour field to two digits.
	PadHours bool
}

// FormatTimestamp renders seconds as MM:SS, or H:MM:SS once an hour is reached.
func FormatTimestamp(seconds float64, opts FormatOptions) string {
	total := int64(math.Floor(seconds))
	if total < 0 || math.IsNaN(seconds) {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	if h > 0 || opts.ForceHours {
		if opts.PadHours {
			return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
		}
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
