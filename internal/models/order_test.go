package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrder() Order {
	return Order{
		Items: []OrderItem{
			{ProductID: "abc", Title: "X", Price: 10, Quantity: 2},
		},
		Subtotal:        20,
		Shipping:        5,
		Total:           25,
		CustomerName:    "A",
		CustomerEmail:   "a@b.com",
		ShippingAddress: "1 St",
		City:            "C",
		Country:         "US",
		PostalCode:      "00000",
	}
}

func TestOrderValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Order)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Order) {},
		},
		{
			name:    "missing items",
			mutate:  func(o *Order) { o.Items = nil },
			wantErr: "items is required",
		},
		{
			name:    "missing customer email",
			mutate:  func(o *Order) { o.CustomerEmail = "" },
			wantErr: "customer_email is required",
		},
		{
			name:    "malformed customer email",
			mutate:  func(o *Order) { o.CustomerEmail = "not-an-email" },
			wantErr: "customer_email must be a valid email address",
		},
		{
			name:    "missing shipping address",
			mutate:  func(o *Order) { o.ShippingAddress = "" },
			wantErr: "shipping_address is required",
		},
		{
			name:    "zero quantity item",
			mutate:  func(o *Order) { o.Items[0].Quantity = 0 },
			wantErr: "quantity is required",
		},
		{
			name:    "negative item price",
			mutate:  func(o *Order) { o.Items[0].Price = -1 },
			wantErr: "price must be 0 or greater",
		},
		{
			name:    "negative total",
			mutate:  func(o *Order) { o.Total = -5 },
			wantErr: "total must be 0 or greater",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := validOrder()
			tt.mutate(&order)

			err := Validate(order)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOrderValidationReportsEveryField(t *testing.T) {
	err := Validate(Order{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	fields := make(map[string]bool, len(verr.Fields))
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	for _, want := range []string{"items", "customer_name", "customer_email", "shipping_address", "city", "country", "postal_code"} {
		assert.True(t, fields[want], "expected field %q in validation error", want)
	}
}

func TestOrderOptionalFields(t *testing.T) {
	order := validOrder()
	order.CustomerPhone = ""
	order.Notes = ""
	order.Shipping = 0

	assert.NoError(t, Validate(order))
}
