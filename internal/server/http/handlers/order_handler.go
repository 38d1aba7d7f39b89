package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dribbleops/orderadmin/internal/domain/errors"
	"github.com/dribbleops/orderadmin/internal/domain/model"
	"github.com/dribbleops/orderadmin/internal/domain/status"
	"github.com/dribbleops/orderadmin/internal/server/http/dto"
)

// OrderHandler manages order administration endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /admin/orders.
func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	orders, err := h.facade.Orders(c.Request.Context(),
		c.Query("status"), page, limit, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewError("Failed to load orders"))
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewError("Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewError("Failed to load order"))
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateStatus handles PUT /admin/orders/:id/status and its legacy PATCH alias.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, dto.NewError("status is required"))
		return
	}

	next := model.OrderStatus(req.Status)
	if !status.Known(next) {
		c.JSON(http.StatusBadRequest, dto.NewError("Invalid status: "+req.Status))
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), c.Param("id"), next)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.NewError("Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewError("Failed to update order"))
		return
	}
	c.JSON(http.StatusOK, order)
}

// Cancel handles POST /admin/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	var req dto.CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.NewError("Invalid request body"))
			return
		}
	}

	order, err := h.facade.CancelOrder(c.Request.Context(), c.Param("id"), req.Reason, CurrentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.NewError("Order not found"))
		case errors.Is(err, domainErrors.ErrAlreadyCancelled):
			c.JSON(http.StatusBadRequest, dto.NewError("Order is already cancelled"))
		case errors.Is(err, domainErrors.ErrDelivered):
			c.JSON(http.StatusBadRequest, dto.NewError("Cannot cancel a delivered order"))
		case errors.Is(err, domainErrors.ErrShipmentPickedUp):
			c.JSON(http.StatusBadRequest, dto.NewError("Cannot cancel - shipment has already been picked up by the courier."))
		default:
			c.JSON(http.StatusInternalServerError, dto.NewError("Failed to cancel order"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.CancelResponse{
		Success:     true,
		Message:     "Order cancelled successfully",
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Order:       order,
	})
}

// Stats handles GET /admin/orders/stats.
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.facade.OrderStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewError("Failed to load stats"))
		return
	}
	c.JSON(http.StatusOK, stats)
}
