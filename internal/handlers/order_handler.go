package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"store-backend/internal/models"
	"store-backend/internal/store"
)

type OrderHandler struct {
	store store.Store
}

func NewOrderHandler(s store.Store) *OrderHandler {
	return &OrderHandler{store: s}
}

type OrderResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type ValidationErrorResponse struct {
	Error  string              `json:"error"`
	Fields []models.FieldError `json:"fields"`
}

// CreateOrder validates and persists an order submission. Validation
// failures are rejected before anything reaches the store; store
// failures carry the underlying message for operability.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := models.Validate(order); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "invalid order", Fields: verr.Fields})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	orderID, err := h.store.CreateDocument(c.Request.Context(), models.OrderCollection, order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, OrderResponse{OrderID: orderID, Status: "received"})
}
