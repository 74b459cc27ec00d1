// Package utils provides common utility functions.
package utils

import "strings"

// StringHelper provides string utility functions.
type StringHelper struct{}

// NewStringHelper creates a new string helper.
func NewStringHelper() *StringHelper {
	return &StringHelper{}
}

// TrimWhitespace removes leading and trailing whitespace.
func (s *StringHelper) TrimWhitespace(str string) string {
	return strings.TrimSpace(str)
}

// NormalizeWhitespace replaces multiple whitespace with single space.
func (s *StringHelper) NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// Truncate cuts a string to at most max runes, without an ellipsis. Used to
// build stable keys from course names.
func (s *StringHelper) Truncate(str string, max int) string {
	runes := []rune(str)
	if len(runes) <= max {
		return str
	}

	return string(runes[:max])
}

// TruncateString truncates a string to max length for display, appending an
// ellipsis when it was cut.
func (s *StringHelper) TruncateString(str string, maxLength int) string {
	if len(str) <= maxLength {
		return str
	}

	return str[:maxLength] + "..."
}
