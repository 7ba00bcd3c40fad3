package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"store-backend/internal/store"
)

// Collection names follow the original schema convention: the lowercase
// schema name.
const (
	ProductCollection = "product"
	OrderCollection   = "order"
	UserCollection    = "user"
)

const DefaultCategory = "Knee Massager"

// Product is the products collection schema. The ID field carries the
// external string form of the store's "_id" and is never written back.
type Product struct {
	ID             string   `json:"id,omitempty" bson:"-"`
	Title          string   `json:"title" bson:"title" validate:"required"`
	Subtitle       string   `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	Description    string   `json:"description,omitempty" bson:"description,omitempty"`
	Price          float64  `json:"price" bson:"price" validate:"gte=0"`
	CompareAtPrice *float64 `json:"compare_at_price,omitempty" bson:"compare_at_price,omitempty" validate:"omitempty,gte=0"`
	Category       string   `json:"category" bson:"category"`
	InStock        *bool    `json:"in_stock" bson:"in_stock"`
	Images         []string `json:"images" bson:"images"`
	Features       []string `json:"features" bson:"features"`
	Rating         *float64 `json:"rating" bson:"rating" validate:"omitempty,gte=0,lte=5"`
	ReviewsCount   *int     `json:"reviews_count" bson:"reviews_count" validate:"omitempty,gte=0"`
}

// ApplyDefaults fills absent optional fields per the schema.
func (p *Product) ApplyDefaults() {
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if p.InStock == nil {
		inStock := true
		p.InStock = &inStock
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	if p.Rating == nil {
		rating := 4.8
		p.Rating = &rating
	}
	if p.ReviewsCount == nil {
		reviews := 0
		p.ReviewsCount = &reviews
	}
}

// ProductFromDocument maps a stored document to a Product, moving the
// internal id into the public id field and re-validating. A document
// that no longer fits the schema surfaces a drift error.
func ProductFromDocument(doc store.Document) (Product, error) {
	var p Product
	if err := decodeDocument(doc, &p); err != nil {
		return Product{}, fmt.Errorf("decode stored product: %w", err)
	}
	p.ID = store.DocumentID(doc)
	p.ApplyDefaults()
	if err := Validate(p); err != nil {
		return Product{}, fmt.Errorf("stored product %s does not match schema: %w", p.ID, err)
	}
	return p, nil
}

func decodeDocument(doc store.Document, target any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, target)
}
