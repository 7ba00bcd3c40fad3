// Package seed guarantees the storefront never lists an empty catalog
// on a fresh deployment.
package seed

import (
	"context"
	"fmt"

	"store-backend/internal/models"
	"store-backend/internal/store"
)

// Ensure inserts the featured product when the product collection is
// empty. Idempotent: every call after the first is a pure read.
func Ensure(ctx context.Context, s store.Store) error {
	count, err := s.CountDocuments(ctx, models.ProductCollection)
	if err != nil {
		return fmt.Errorf("check product collection: %w", err)
	}
	if count > 0 {
		return nil
	}

	product := featuredProduct()
	if _, err := s.CreateDocument(ctx, models.ProductCollection, product); err != nil {
		return fmt.Errorf("seed product collection: %w", err)
	}
	return nil
}

func featuredProduct() models.Product {
	compareAt := 199.0
	rating := 4.8
	reviews := 267
	inStock := true

	return models.Product{
		Title:    "TheraKnee Pro Heat & Air Compression Massager",
		Subtitle: "Soothe pain, boost circulation, and recover faster",
		Description: "Clinically-inspired knee relief with adjustable heat, air compression, and vibration. " +
			"Targets soreness from arthritis, workouts, or long days on your feet.",
		Price:          129.0,
		CompareAtPrice: &compareAt,
		Category:       models.DefaultCategory,
		InStock:        &inStock,
		Images: []string{
			"https://images.unsplash.com/photo-1579154204601-01588f351e67?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1558618666-606ba59b23d5?q=80&w=1200&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1517836357463-d25dfeac3438?q=80&w=1200&auto=format&fit=crop",
		},
		Features: []string{
			"3 heat levels with auto shut-off",
			"Dynamic air compression with 3 intensities",
			"Targeted vibration massage",
			"Breathable, ergonomic wrap design",
			"USB-C fast charging, 2.5h battery life",
		},
		Rating:       &rating,
		ReviewsCount: &reviews,
	}
}
