package checkout

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() CustomerForm {
	return CustomerForm{
		Name:       "Jane Doe",
		Email:      "  Jane@Example.com ",
		Phone:      "+66 81 234 5678",
		Address:    "99 Sukhumvit Road",
		City:       "Bangkok",
		PostalCode: "10110",
		Country:    "Thailand",
	}
}

func TestSanitizeForm(t *testing.T) {
	form := validForm()
	form.Name = "<b>Jane</b> Doe"
	form.Notes = "<script>alert(1)</script>leave at door"

	c := SanitizeForm(form)
	assert.Equal(t, "Jane Doe", c.Name)
	assert.Equal(t, "jane@example.com", c.Email)
	assert.Equal(t, "alert(1)leave at door", c.Notes, "tags go, their text stays")

	form.Notes = "  ring <em>twice</em> at gate 4  "
	assert.Equal(t, "ring twice at gate 4", SanitizeForm(form).Notes)

	form.Email = "not-an-email"
	assert.Equal(t, "", SanitizeForm(form).Email)
}

func TestValidateForm(t *testing.T) {
	assert.NoError(t, ValidateForm(SanitizeForm(validForm())))

	form := validForm()
	form.Phone = ""
	assert.NoError(t, ValidateForm(SanitizeForm(form)), "phone is optional")

	form.Email = "not-an-email"
	err := ValidateForm(SanitizeForm(form))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"Please enter a valid email address"}, verr.Problems)
}

func TestValidateForm_CollectsEveryProblem(t *testing.T) {
	err := ValidateForm(SanitizeForm(CustomerForm{Phone: "abc"}))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 7)
	assert.Equal(t, strings.Join(verr.Problems, ". "), err.Error())
	assert.Contains(t, err.Error(), "Please enter a valid name (minimum 2 characters). Please enter a valid email address")
}

func TestCalculateShipping(t *testing.T) {
	tests := []struct {
		country string
		want    int64
	}{
		{"Thailand", 10},
		{"thailand", 10},
		{"  THAILAND  ", 10},
		{"South Korea", 10},
		{"Timor-Leste", 10},
		{"United States", 20},
		{"Atlantis", 20},
		{"", 20},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			got := CalculateShipping(tt.country)
			assert.Equal(t, tt.want, got.IntPart())
			assert.True(t, got.Equal(CalculateShipping(tt.country)))
		})
	}
}

func TestNewOrderID(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	pattern := regexp.MustCompile(`^ORDER-1700000000123-[0-9A-Z]{7}$`)

	seen := make(map[string]bool)
	for range 50 {
		id := NewOrderID(now)
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 30, 0, 250_000_000, time.FixedZone("ICT", 7*3600))
	totals := Totals{Shipping: CalculateShipping("Thailand")}

	order := newOrder(SanitizeForm(validForm()), totals, "USD", now)
	assert.Equal(t, "2024-03-05T03:30:00.250Z", order.Date)
	assert.Equal(t, StatusPending, order.Status)
	assert.Equal(t, "USD", order.Currency)
	assert.True(t, strings.HasPrefix(order.ID, "ORDER-"))
}
