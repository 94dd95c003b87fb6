// internal/pkg/security/validate.go
package security

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	strictEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
	phonePattern       = regexp.MustCompile(`^[\d\s\-+()]{8,20}$`)
)

// IsValidEmail checks the address shape, requiring a final label of at least two characters
func IsValidEmail(email string) bool {
	return strictEmailPattern.MatchString(strings.TrimSpace(email))
}

// IsValidRequired reports whether value has at least minLength characters after trimming
func IsValidRequired(value string, minLength int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(value)) >= minLength
}

// IsValidPhone allows digits, spaces, dashes, parentheses and plus signs, 8 to 20 characters
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}
