package numeric

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MaxAmount is the global ceiling applied by the parser across all
// bid/quantity contexts. Call sites layer tighter policy ceilings on top.
const MaxAmount int64 = 20_000_000_000

// shorthandPattern accepts digits, an optional single decimal fragment and
// an optional trailing unit letter. A leading digit is required, so a bare
// "." or ".5" is invalid.
var shorthandPattern = regexp.MustCompile(`^(\d+)(?:\.(\d+))?([kmb]?)$`)

var printer = message.NewPrinter(language.AmericanEnglish)

// Format renders n with locale thousand separators, e.g. 1600000 -> "1,600,000".
func Format(n int64) string {
	return printer.Sprintf("%d", n)
}

// StripCommas removes grouping commas so a formatted value can be re-parsed.
func StripCommas(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

// Sanitize lowercases the input and strips every character that is not a
// digit, a decimal point or one of the unit letters k/m/b. Commas are
// formatting noise and are removed here. Extra decimal points collapse to
// the first one. The second return value is false when more than one unit
// letter is present, which invalidates the whole input.
func Sanitize(raw string) (string, bool) {
	var b strings.Builder
	letters := 0
	sawDot := false
	for _, r := range strings.ToLower(raw) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			if !sawDot {
				b.WriteRune(r)
				sawDot = true
			}
		case r == 'k' || r == 'm' || r == 'b':
			letters++
			b.WriteRune(r)
		}
	}
	if letters > 1 {
		return "", false
	}
	return b.String(), true
}

// ParseAmount parses human shorthand ("10k", "1.6m", "20b") or a plain
// digit string into an exact integer amount, clamped at MaxAmount. The
// second return value is false when the input holds no valid numeric value
// yet; callers must not treat that as zero.
func ParseAmount(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	sanitized, ok := Sanitize(raw)
	if !ok {
		return 0, false
	}
	m := shorthandPattern.FindStringSubmatch(sanitized)
	if m == nil {
		return 0, false
	}

	intDigits, fracDigits, unit := m[1], m[2], m[3]

	var mult int64 = 1
	switch unit {
	case "k":
		mult = 1_000
	case "m":
		mult = 1_000_000
	case "b":
		mult = 1_000_000_000
	}

	// MaxAmount has 11 digits; anything longer clamps without parsing.
	if len(strings.TrimLeft(intDigits, "0")) > 11 {
		return MaxAmount, true
	}
	whole, err := strconv.ParseInt(intDigits, 10, 64)
	if err != nil {
		return 0, false
	}
	if whole > MaxAmount/mult {
		return MaxAmount, true
	}
	value := whole * mult

	if fracDigits != "" {
		// Nine fraction digits already exceed the precision of the largest
		// multiplier; the rest cannot contribute a whole unit.
		if len(fracDigits) > 9 {
			fracDigits = fracDigits[:9]
		}
		frac, err := strconv.ParseInt(fracDigits, 10, 64)
		if err != nil {
			return 0, false
		}
		scale := int64(1)
		for range fracDigits {
			scale *= 10
		}
		// Truncates toward zero when the multiplier cannot absorb the
		// fraction, e.g. "1.6" with no unit parses as 1.
		value += frac * mult / scale
	}

	if value > MaxAmount {
		value = MaxAmount
	}
	return value, true
}

// Parse is the canonical text entry point: it runs ParseAmount and renders
// the result with locale grouping. Invalid or empty input yields "" — the
// caller must treat that as "no valid numeric value yet", not as zero.
func Parse(raw string) string {
	v, ok := ParseAmount(raw)
	if !ok {
		return ""
	}
	return Format(v)
}
