// Package calc implements the calculator round-trip core: extracting the last
// computed value from a history payload and building the launch link that seeds
// the next Web App session with it.
package calc

import (
	"regexp"
	"strings"
)

// lastNumberRe matches the trailing run of digit/decimal-point characters.
// A lone trailing "." still matches, mirroring the calculator's output format.
var lastNumberRe = regexp.MustCompile(`[0-9.]+$`)

// ExtractLastNumber returns the numeric token terminating text, if any.
// The match is strictly suffix-anchored: the input is not trimmed, so a payload
// ending in whitespace or a newline yields no value. An absent value is a valid
// "no prior result" outcome, not an error.
func ExtractLastNumber(text string) (string, bool) {
	match := lastNumberRe.FindString(text)
	if match == "" {
		return "", false
	}
	return match, true
}

// ReverseLines reverses the line order of text, turning the calculator's
// oldest-first history into the newest-first order shown in chat.
func ReverseLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return strings.Join(lines, "\n")
}
