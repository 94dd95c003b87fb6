package security

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "  hello  ", "hello"},
		{"script tag", `<script>alert("x")</script>Bob`, `alert("x")Bob`},
		{"attribute", `<img src=x onerror="boom">Alice`, "Alice"},
		{"stray open bracket", "a < b", "a  b"},
		{"stray close bracket", "a > b", "a  b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeText(tt.input))
		})
	}
}

func TestSanitizeText_NeverLeavesAngleBrackets(t *testing.T) {
	inputs := []string{
		`<<script>>`, `"><svg onload=1>`, `<a href='x'>`, `>>><<<`, `<b>bold</b> & "quoted" 'single'`,
		`1 < 2 > 0`, `<<>>`, `<img src="a>b">`,
	}
	for _, in := range inputs {
		out := SanitizeText(in)
		assert.NotContains(t, out, "<", in)
		assert.NotContains(t, out, ">", in)
	}
}

func TestSanitizeHTML(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;Tom &amp; Jerry&#x27;s &quot;show&quot;&lt;&#x2F;b&gt;",
		SanitizeHTML(`<b>Tom & Jerry's "show"</b>`))
}

func TestSanitizeEmail(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"  Jane.Doe@Example.COM ", "jane.doe@example.com", true},
		{"a@b.c", "a@b.c", true},
		{"not-an-email", "", false},
		{"missing@tld", "", false},
		{"two@@example.com", "", false},
		{"spa ce@example.com", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := SanitizeEmail(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeNumber(t *testing.T) {
	n, ok := SanitizeNumber("12.5")
	assert.True(t, ok)
	assert.Equal(t, 12.5, n)

	n, ok = SanitizeNumber(json.Number("3"))
	assert.True(t, ok)
	assert.Equal(t, 3.0, n)

	_, ok = SanitizeNumber(-1)
	assert.False(t, ok, "default range starts at zero")

	_, ok = SanitizeNumber(math.Inf(1))
	assert.False(t, ok)

	_, ok = SanitizeNumber(math.NaN())
	assert.False(t, ok)

	_, ok = SanitizeNumber("abc")
	assert.False(t, ok)

	_, ok = SanitizeNumber([]int{1})
	assert.False(t, ok)

	n, ok = SanitizeNumber("")
	assert.True(t, ok)
	assert.Equal(t, 0.0, n)
}

func TestSanitizeNumberInRange(t *testing.T) {
	_, ok := SanitizeNumberInRange(6, 1, 5)
	assert.False(t, ok)

	_, ok = SanitizeNumberInRange(0, 1, 5)
	assert.False(t, ok)

	n, ok := SanitizeNumberInRange(5, 1, 5)
	assert.True(t, ok)
	assert.Equal(t, 5.0, n)

	n, ok = SanitizeNumberInRange(" 1 ", 1, 5)
	assert.True(t, ok)
	assert.Equal(t, 1.0, n)
}

func TestSanitizeQuantity(t *testing.T) {
	q, ok := SanitizeQuantity(3)
	assert.True(t, ok)
	assert.Equal(t, 3, q)

	q, ok = SanitizeQuantity("2")
	assert.True(t, ok)
	assert.Equal(t, 2, q)

	for _, bad := range []any{0, 6, 2.5, "x", nil, -1} {
		_, ok := SanitizeQuantity(bad)
		assert.False(t, ok, "%v", bad)
	}
}

func TestValidateVariant(t *testing.T) {
	sizes := []string{"S", "M", "L"}

	v, ok := ValidateVariant(" M ", sizes)
	assert.True(t, ok)
	assert.Equal(t, "M", v)

	_, ok = ValidateVariant("m", sizes)
	assert.False(t, ok, "matching is case-sensitive")

	_, ok = ValidateVariant("<b>M</b>", nil)
	assert.False(t, ok)

	v, ok = ValidateVariant("<b>M</b>", sizes)
	assert.True(t, ok)
	assert.Equal(t, "M", v)
}

func TestValidators(t *testing.T) {
	assert.True(t, IsValidEmail("jane@example.com"))
	assert.False(t, IsValidEmail("jane@example.c"))
	assert.False(t, IsValidEmail("not-an-email"))

	assert.True(t, IsValidRequired("  ab ", 2))
	assert.False(t, IsValidRequired("  a ", 2))
	assert.True(t, IsValidRequired("ÅÖ", 2))

	assert.True(t, IsValidPhone("+1 (555) 123-4567"))
	assert.False(t, IsValidPhone("1234"))
	assert.False(t, IsValidPhone("call me maybe"))
	assert.False(t, IsValidPhone(strings.Repeat("1", 21)))
}
