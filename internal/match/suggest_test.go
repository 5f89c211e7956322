package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosest(t *testing.T) {
	types := []string{"Product", "Customer", "Order", "OrderItem"}

	tests := []struct {
		name       string
		input      string
		candidates []string
		want       string
		wantOK     bool
	}{
		{"transposed letters", "Prodcut", types, "Product", true},
		{"case only", "orderitem", types, "OrderItem", true},
		{"missing letter", "Custmer", types, "Customer", true},
		{"nothing close", "Warehouse", types, "", false},
		{"exact match is not a suggestion", "Order", []string{"Order"}, "", false},
		{"no candidates", "Order", nil, "", false},
		{"tag key", "debg", []string{"debug"}, "debug", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Closest(tt.input, tt.candidates, DefaultMinScore)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClosestPrefersEarlierOnTie(t *testing.T) {
	got, ok := Closest("ab", []string{"abc", "abd"}, 0.5)
	assert.True(t, ok)
	assert.Equal(t, "abc", got)
}
