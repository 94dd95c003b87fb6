// internal/pkg/security/sanitize.go
package security

import (
	"encoding/json"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#x27;",
		"/", "&#x2F;",
	)
	bracketStripper = strings.NewReplacer("<", "", ">", "")
)

// SanitizeHTML escapes markup-significant characters for safe embedding in HTML
func SanitizeHTML(input string) string {
	return htmlEscaper.Replace(input)
}

// SanitizeText removes markup-like substrings and trims whitespace.
// Unpaired angle brackets are dropped too, so the result never contains one.
func SanitizeText(input string) string {
	stripped := tagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(bracketStripper.Replace(stripped))
}

// SanitizeEmail lower-cases and trims an email address and returns it only
// when it has the local@domain.tld shape
func SanitizeEmail(email string) (string, bool) {
	sanitized := strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(sanitized) {
		return "", false
	}
	return sanitized, true
}

// SanitizeNumber coerces value to a finite number that is >= 0
func SanitizeNumber(value any) (float64, bool) {
	return SanitizeNumberInRange(value, 0, math.Inf(1))
}

// SanitizeNumberInRange coerces value to a finite number within [min, max]
func SanitizeNumberInRange(value any, min, max float64) (float64, bool) {
	num, ok := toNumber(value)
	if !ok || math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, false
	}
	if num < min || num > max {
		return 0, false
	}
	return num, true
}

// SanitizeQuantity accepts whole numbers from 1 to 5 inclusive
func SanitizeQuantity(value any) (int, bool) {
	num, ok := SanitizeNumberInRange(value, MinQuantity, MaxQuantity)
	if !ok || num != math.Trunc(num) {
		return 0, false
	}
	return int(num), true
}

// ValidateVariant returns the sanitized value when it is one of allowed
func ValidateVariant(value string, allowed []string) (string, bool) {
	if allowed == nil {
		return "", false
	}
	sanitized := SanitizeText(value)
	if !slices.Contains(allowed, sanitized) {
		return "", false
	}
	return sanitized, true
}

// Quantity bounds for a single cart line
const (
	MinQuantity = 1
	MaxQuantity = 5
)

func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case decimal.Decimal:
		f, _ := v.Float64()
		return f, true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
