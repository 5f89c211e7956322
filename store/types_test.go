package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrder_GoString(t *testing.T) {
	order := Order{
		ID:         7,
		CustomerID: 3,
		Status:     StatusPaid,
		TotalCents: 1250,
		Items: []OrderItem{
			{ProductID: 1, Name: "Pen", Quantity: 2, UnitPrice: 625},
		},
		OrderedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	expected := `Order{ID: 7, CustomerID: 3, Status: PAID, TotalCents: 1250¢, ` +
		`Items: []store.OrderItem{OrderItem{ProductID: 1, Name: "Pen", Quantity: x2, UnitPrice: 625¢}}, ` +
		`OrderedAt: 2024-01-02 03:04:05 +0000 UTC}`

	assert.Equal(t, expected, fmt.Sprintf("%#v", order))
	assert.Equal(t, expected, order.GoString())
}

func TestCustomer_GoString(t *testing.T) {
	c := Customer{ID: 3, Email: "ann@example.com", FullName: "Ann Lee", IsActive: true}

	assert.Equal(t,
		`Customer{ID: 3, Email: <ann@example.com>, FullName: "Ann Lee", Address: (*string)(nil), IsActive: true}`,
		fmt.Sprintf("%#v", c))
}

func TestProduct_GoString_PointerReceiver(t *testing.T) {
	p := &Product{ID: 1, SKU: "PEN-01", Name: "Pen", PriceCents: 625, Inventory: 10,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t,
		`Product{ID: 1, SKU: PEN-01, Name: "Pen", Description: "", PriceCents: 625¢, Inventory: 10, `+
			`CreatedAt: 2024-01-01 00:00:00 +0000 UTC}`,
		fmt.Sprintf("%#v", p))
}
