package calc_test

import (
	"testing"

	"github.com/edgard/calcbot/internal/calc"
)

func TestExtractLastNumber(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
			found:    false,
		},
		{
			name:     "single number",
			input:    "42",
			expected: "42",
			found:    true,
		},
		{
			name:     "number at end of expression",
			input:    "1+1=2",
			expected: "2",
			found:    true,
		},
		{
			name:     "multi-line history takes final line result",
			input:    "1+1=2\n2+2=4",
			expected: "4",
			found:    true,
		},
		{
			name:     "decimal number",
			input:    "10/4=2.5",
			expected: "2.5",
			found:    true,
		},
		{
			name:     "trailing decimal point still matches",
			input:    "result: 3.",
			expected: "3.",
			found:    true,
		},
		{
			name:     "trailing newline blocks the match",
			input:    "1+1=2\n",
			expected: "",
			found:    false,
		},
		{
			name:     "trailing space blocks the match",
			input:    "1+1=2 ",
			expected: "",
			found:    false,
		},
		{
			name:     "no numeral at end",
			input:    "division by zero",
			expected: "",
			found:    false,
		},
		{
			name:     "only punctuation",
			input:    "...",
			expected: "...",
			found:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, found := calc.ExtractLastNumber(tc.input)
			if found != tc.found {
				t.Errorf("ExtractLastNumber(%q) found = %v, want %v", tc.input, found, tc.found)
			}
			if got != tc.expected {
				t.Errorf("ExtractLastNumber(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestExtractLastNumberDeterministic(t *testing.T) {
	t.Parallel()

	const input = "5*5=25\n25-1=24"
	first, _ := calc.ExtractLastNumber(input)
	second, _ := calc.ExtractLastNumber(input)
	if first != second {
		t.Errorf("ExtractLastNumber not deterministic: %q vs %q", first, second)
	}
}

func TestReverseLines(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "single line unchanged",
			input:    "1+1=2",
			expected: "1+1=2",
		},
		{
			name:     "two lines swapped",
			input:    "1+1=2\n2+2=4",
			expected: "2+2=4\n1+1=2",
		},
		{
			name:     "three lines reversed",
			input:    "a\nb\nc",
			expected: "c\nb\na",
		},
		{
			name:     "trailing newline becomes leading empty line",
			input:    "1+1=2\n",
			expected: "\n1+1=2",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := calc.ReverseLines(tc.input); got != tc.expected {
				t.Errorf("ReverseLines(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}
