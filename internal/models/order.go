package models

// OrderItem is a line of an order. The product_id reference is not
// checked against the product collection.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id" validate:"required"`
	Title     string  `json:"title" bson:"title" validate:"required"`
	Price     float64 `json:"price" bson:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" bson:"quantity" validate:"required,gte=1"`
}

// Order is the orders collection schema. Orders are write-only: created
// once at submission and never read back through this API.
type Order struct {
	ID       string      `json:"id,omitempty" bson:"-"`
	Items    []OrderItem `json:"items" bson:"items" validate:"required,dive"`
	Subtotal float64     `json:"subtotal" bson:"subtotal" validate:"gte=0"`
	Shipping float64     `json:"shipping" bson:"shipping" validate:"gte=0"`
	Total    float64     `json:"total" bson:"total" validate:"gte=0"`

	CustomerName    string `json:"customer_name" bson:"customer_name" validate:"required"`
	CustomerEmail   string `json:"customer_email" bson:"customer_email" validate:"required,email"`
	CustomerPhone   string `json:"customer_phone,omitempty" bson:"customer_phone,omitempty"`
	ShippingAddress string `json:"shipping_address" bson:"shipping_address" validate:"required"`
	City            string `json:"city" bson:"city" validate:"required"`
	Country         string `json:"country" bson:"country" validate:"required"`
	PostalCode      string `json:"postal_code" bson:"postal_code" validate:"required"`
	Notes           string `json:"notes,omitempty" bson:"notes,omitempty"`
}
