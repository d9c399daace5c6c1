package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"OrderItem", "orderitem"},
		{"order_item", "orderitem"},
		{"order-item", "orderitem"},
		{"ORDER ITEM", "orderitem"},
		{"store.Order", "storeorder"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIdent(tt.in))
		})
	}
}
