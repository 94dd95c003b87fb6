package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFromNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"49.99", "49.99", false},
		{"0.1", "0.1", false},
		{"10000", "10000", false},
		{"1e2", "100", false},
		{"abc", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FromNumber(json.Number(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(d(tt.want)), got.String())
		})
	}
}

func TestFromNumber_ExactAgainstCatalogPrice(t *testing.T) {
	got, err := FromNumber(json.Number("49.99"))
	require.NoError(t, err)
	assert.True(t, got.Equal(d("49.990")))
	assert.False(t, got.Equal(d("49.98")))
}

func TestInRange(t *testing.T) {
	lo, hi := d("0.01"), d("10000")

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"lower bound", "0.01", true},
		{"upper bound", "10000", true},
		{"inside", "49.99", true},
		{"below", "0.009", false},
		{"zero", "0", false},
		{"above", "10000.01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InRange(d(tt.in), lo, hi))
		})
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		price string
		qty   int
		want  string
	}{
		{"49.99", 3, "149.97"},
		{"0.1", 3, "0.3"},
		{"54.99", 0, "0"},
		{"10000", 5, "50000"},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			got := Mul(d(tt.price), tt.qty)
			assert.True(t, got.Equal(d(tt.want)), got.String())
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$49.99", Format(d("49.99")))
	assert.Equal(t, "$10.00", Format(d("10")))
	assert.Equal(t, "$0.30", Format(d("0.3")))
	assert.Equal(t, "$0.00", Format(Zero))
}

func TestFromFloat(t *testing.T) {
	assert.True(t, FromFloat(10).Equal(d("10")))
	assert.True(t, FromFloat(0.1+0.2).Equal(d("0.3")))
}

func TestPricesMarshalAsNumbers(t *testing.T) {
	raw, err := json.Marshal(map[string]decimal.Decimal{"price": d("49.99")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":49.99}`, string(raw))
}
