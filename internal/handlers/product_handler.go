package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"store-backend/internal/models"
	"store-backend/internal/seed"
	"store-backend/internal/store"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type ProductHandler struct {
	store store.Store
}

func NewProductHandler(s store.Store) *ProductHandler {
	return &ProductHandler{store: s}
}

// ListProducts returns every product. The catalog is seeded first so a
// fresh deployment never lists empty.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if err := seed.Ensure(ctx, h.store); err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "database not available"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not prepare product catalog"})
		return
	}

	docs, err := h.store.GetDocuments(ctx, models.ProductCollection)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not fetch products"})
		return
	}

	products := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		product, err := models.ProductFromDocument(doc)
		if err != nil {
			// Stored data drifted from the schema.
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		products = append(products, product)
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct returns one product by id. A missing or malformed id is a
// plain 404, never a raw store error.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	doc, err := h.store.GetDocumentByID(c.Request.Context(), models.ProductCollection, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not fetch product"})
		return
	}

	product, err := models.ProductFromDocument(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}
