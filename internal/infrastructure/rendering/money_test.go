package rendering

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		amount   string
		currency string
		want     string
	}{
		{"150", "BDT", "৳150.00"},
		{"1234.5", "BDT", "৳1,234.50"},
		{"1234567.89", "USD", "$1,234,567.89"},
		{"0", "USD", "$0.00"},
		{"-45.5", "EUR", "-€45.50"},
		{"99.99", "AUD", "AUD 99.99"},
	}
	for _, tc := range cases {
		amt := decimal.RequireFromString(tc.amount)
		assert.Equal(t, tc.want, FormatMoney(amt, tc.currency), "%s %s", tc.amount, tc.currency)
	}
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "100", groupThousands("100"))
	assert.Equal(t, "1,000.00", groupThousands("1000.00"))
	assert.Equal(t, "10,000.00", groupThousands("10000.00"))
	assert.Equal(t, "100,000", groupThousands("100000"))
}
