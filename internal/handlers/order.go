package handlers

import (
	"errors"
	"net/http"
	"strconv"

	dom "Platform/internal/domain"
	"Platform/internal/dto"
	"Platform/internal/identity"
	"Platform/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves the order endpoints. All routes sit behind the
// identity middleware; GetByID additionally applies the ownership check.
type OrderHandler struct {
	svc *service.OrderService
}

// NewOrderHandler returns a new OrderHandler.
func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// Create godoc
// @Summary      Create an order for the authenticated user
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateOrderRequest  true  "Order body"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	ident, ok := identity.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": identity.ErrUnauthenticated.Error()})
		return
	}
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	o, err := h.svc.Create(c.Request.Context(), ident.UserID, req.Details)
	if err != nil {
		if errors.Is(err, service.ErrMissingDetails) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, orderToResponse(o))
}

// List godoc
// @Summary      List the authenticated user's orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListOrdersResponse
// @Failure      401  {object}  map[string]string
// @Router       /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	ident, ok := identity.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": identity.ErrUnauthenticated.Error()})
		return
	}
	list, err := h.svc.ListByUser(c.Request.Context(), ident.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListOrdersResponse{Items: ordersToResponses(list)})
}

// GetByID godoc
// @Summary      Get an order by ID
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  dto.OrderResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	o, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ident, _ := identity.FromContext(c)
	if err := identity.CheckOwner(o.UserID, ident); err != nil {
		if errors.Is(err, identity.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orderToResponse(o))
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func orderToResponse(o dom.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Details:   o.Details,
		CreatedAt: o.CreatedAt,
	}
}

func ordersToResponses(list []dom.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, len(list))
	for i := range list {
		out[i] = orderToResponse(list[i])
	}
	return out
}
