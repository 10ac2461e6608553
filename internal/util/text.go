package util

import (
	"regexp"
	"strconv"
	"strings"
)

var reSpaces = regexp.MustCompile(`\s+`)

// ReplaceSpaces trims input and replaces every inner whitespace run with sep.
func ReplaceSpaces(input, sep string) string {
	return reSpaces.ReplaceAllString(strings.TrimSpace(input), sep)
}

// ParseLevel reads a decimal level; ok is false for empty or non-numeric input.
func ParseLevel(input string) (int, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
