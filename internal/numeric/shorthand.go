package numeric

import (
	"strconv"
	"strings"

	"github.com/YoshiBoneDoc/kolauction/utils"
)

// ToShorthand renders an amount as compact display text: 1600000 -> "1.6m",
// 2000000000 -> "2b", 999 -> "999". The transform is lossy and display-only;
// never feed its output back through Parse as a round-trip source.
func ToShorthand(v int64) string {
	return shorthandFloat(float64(v))
}

// ToShorthandString is ToShorthand for numeric text; commas are tolerated
// and stripped. Non-numeric input returns "" and logs a diagnostic rather
// than failing.
func ToShorthandString(s string) string {
	trimmed := strings.TrimSpace(StripCommas(s))
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		utils.Debug("Invalid value for shorthand conversion", map[string]any{"value": s})
		return ""
	}
	return shorthandFloat(f)
}

func shorthandFloat(f float64) string {
	switch {
	case f >= 1_000_000_000:
		return scaled(f, 1_000_000_000) + "b"
	case f >= 1_000_000:
		return scaled(f, 1_000_000) + "m"
	case f >= 1_000:
		return scaled(f, 1_000) + "k"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// scaled divides by unit and keeps one decimal place, dropping a trailing ".0".
func scaled(f, unit float64) string {
	s := strconv.FormatFloat(f/unit, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
