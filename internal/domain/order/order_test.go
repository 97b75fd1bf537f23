package order

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrder_DisplayDiscount_FieldTakesPrecedence(t *testing.T) {
	o := &Order{
		DiscountTotal: decimal.NewFromFloat(2.50),
		Fees: []FeeLine{
			{ID: uuid.New(), Name: "POS Discount", Total: decimal.NewFromFloat(-9.99)},
		},
	}
	assert.True(t, o.DisplayDiscount().Equal(decimal.NewFromFloat(2.50)))
}

func TestOrder_DisplayDiscount_FallsBackToNegativeFees(t *testing.T) {
	o := &Order{
		DiscountTotal: decimal.Zero,
		Fees: []FeeLine{
			{ID: uuid.New(), Name: "POS Discount", Total: decimal.NewFromFloat(-2.50)},
			{ID: uuid.New(), Name: "Handling", Total: decimal.NewFromFloat(1.00)},
			{ID: uuid.New(), Name: "Promo", Total: decimal.NewFromFloat(-0.50)},
		},
	}
	// Positive fees are ignored; negative fee totals are summed by absolute value.
	assert.True(t, o.DisplayDiscount().Equal(decimal.NewFromFloat(3.00)))
}

func TestOrder_DisplayDiscount_NoDiscount(t *testing.T) {
	o := &Order{DiscountTotal: decimal.Zero}
	assert.True(t, o.DisplayDiscount().IsZero())
}

func TestStatus_Color(t *testing.T) {
	assert.Equal(t, "#16a34a", StatusCompleted.Color())
	assert.Equal(t, "#f59e0b", StatusProcessing.Color())
	assert.Equal(t, "#f59e0b", StatusOnHold.Color())
	assert.Equal(t, "#ef4444", StatusCancelled.Color())
	assert.Equal(t, "#ef4444", StatusRefunded.Color())
	assert.Equal(t, "#3b82f6", StatusPending.Color())
}

func TestAddress_IsEmpty(t *testing.T) {
	assert.True(t, Address{FirstName: "Rahim"}.IsEmpty())
	assert.False(t, Address{City: "Dhaka"}.IsEmpty())
	assert.False(t, Address{Country: "BD"}.IsEmpty())
}

func TestAddress_FullName(t *testing.T) {
	a := Address{FirstName: "  Rahim ", LastName: " Uddin "}
	assert.Equal(t, "Rahim Uddin", a.FullName())
	assert.Equal(t, "Rahim", Address{FirstName: "Rahim"}.FullName())
}

func TestStatus_DisplayName(t *testing.T) {
	assert.Equal(t, "Processing", StatusProcessing.DisplayName())
	assert.Equal(t, "On Hold", StatusOnHold.DisplayName())
	assert.Equal(t, "", Status("").DisplayName())
}
