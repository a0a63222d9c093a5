package numeric

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty_input", raw: "", want: ""},
		{name: "plain_digits", raw: "12345", want: "12,345"},
		{name: "thousand_suffix", raw: "10k", want: "10,000"},
		{name: "uppercase_suffix", raw: "10K", want: "10,000"},
		{name: "million_decimal", raw: "1.6m", want: "1,600,000"},
		{name: "billion_suffix", raw: "20b", want: "20,000,000,000"},
		{name: "commas_are_noise", raw: "1,600,000", want: "1,600,000"},
		{name: "multiple_suffix_letters", raw: "999kb", want: ""},
		{name: "trailing_garbage", raw: "10kx", want: "10,000"},
		{name: "letters_only", raw: "abc", want: ""},
		{name: "bare_decimal_point", raw: ".", want: ""},
		{name: "leading_digit_required", raw: ".5m", want: ""},
		{name: "second_decimal_collapses", raw: "1.2.5k", want: "1,250"},
		{name: "fraction_without_unit_truncates", raw: "1.6", want: "1"},
		{name: "clamp_above_twenty_billion", raw: "25000000000", want: "20,000,000,000"},
		{name: "clamp_huge_digit_string", raw: "999999999999999999999", want: "20,000,000,000"},
		{name: "clamp_suffix_overflow", raw: "30b", want: "20,000,000,000"},
		{name: "zero", raw: "0", want: "0"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Parse(tc.raw))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   int64
		wantOK bool
	}{
		{name: "shorthand_value", raw: "1.6m", want: 1_600_000, wantOK: true},
		{name: "empty_is_not_zero", raw: "", want: 0, wantOK: false},
		{name: "invalid_is_not_zero", raw: "k", want: 0, wantOK: false},
		{name: "deep_fraction", raw: "1.234567b", want: 1_234_567_000, wantOK: true},
		{name: "fraction_precision_floor", raw: "1.2345k", want: 1_234, wantOK: true},
		{name: "exact_ceiling", raw: "20b", want: 20_000_000_000, wantOK: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseAmount(tc.raw)
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

// Re-parsing a canonical output must reproduce the same formatted value.
func TestParseIdempotence(t *testing.T) {
	inputs := []string{"10k", "1.6m", "20b", "12345", "999", "5.5k", "3b"}
	for _, raw := range inputs {
		first := Parse(raw)
		require.NotEmpty(t, first, "input %q should be valid", raw)
		second := Parse(StripCommas(first))
		require.Equal(t, first, second, "re-parse of %q drifted", raw)
	}
}

func TestFormat(t *testing.T) {
	require.Equal(t, "1,600,000", Format(1_600_000))
	require.Equal(t, "0", Format(0))
	require.Equal(t, "999", Format(999))
	require.Equal(t, "20,000,000,000", Format(20_000_000_000))
}
