package media

import (
	"strconv"
	"strings"
)

// ParseViewCount converts a textual view count to an integer. Shorthand like
// "1.2M views" or "500K" expands via k/m/b multipliers; commas are stripped.
// Unparseable text yields 0, never an error.
func ParseViewCount(value string) int64 {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return 0
	}

	value = strings.ReplaceAll(value, "views", "")
	value = strings.ReplaceAll(value, "view", "")
	value = strings.TrimSpace(value)

	multipliers := []struct {
		suffix string
		factor float64
	}{
		{"k", 1e3},
		{"m", 1e6},
		{"b", 1e9},
	}
	for _, m := range multipliers {
		if strings.HasSuffix(value, m.suffix) {
			mantissa, err := strconv.ParseFloat(strings.TrimSuffix(value, m.suffix), 64)
			if err != nil {
				return 0
			}
			return int64(mantissa * m.factor)
		}
	}

	value = strings.ReplaceAll(value, ",", "")
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}
