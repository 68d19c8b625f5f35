package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gravecare/internal/models/request_models"
	"gravecare/internal/services"
	"gravecare/pkg/utils"
)

type OrderController struct {
	orderService services.OrderService
}

func NewOrderController(orderService services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// Checkout godoc
// @Summary Snapshot the cart into an order and open checkout
// @Tags Orders
// @Security BearerAuth
// @Param request body request_models.CheckoutRequest true "Checkout payload"
// @Success 200 {object} utils.APIResponse
// @Router /orders/checkout [post]
func (o *OrderController) Checkout(c *gin.Context) {
	var req request_models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, ok := cartUserID(c)
	if !ok {
		return
	}
	result, err := o.orderService.Checkout(c.Request.Context(), userID, callerEmail(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Order created")
}

// MyOrders godoc
// @Summary The caller's order history
// @Tags Orders
// @Security BearerAuth
// @Router /orders/mine [get]
func (o *OrderController) MyOrders(c *gin.Context) {
	orders, err := o.orderService.GetUserOrders(c.Request.Context(), callerID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, orders, "")
}

func (o *OrderController) GetOrder(c *gin.Context) {
	order, err := o.orderService.GetOrder(c.Request.Context(), c.Param("id"), callerEmail(c), callerIsAdmin(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, order, "")
}

// ListOrders godoc
// @Summary Paginated order list (admin)
// @Tags Orders
// @Security BearerAuth
// @Router /orders [get]
func (o *OrderController) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	orders, total, err := o.orderService.ListOrders(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"orders": orders, "total": total, "page": page, "page_size": pageSize}, "")
}

// UpdateStatus godoc
// @Summary Update an order status (admin)
// @Tags Orders
// @Security BearerAuth
// @Router /orders/{id}/status [patch]
func (o *OrderController) UpdateStatus(c *gin.Context) {
	var req request_models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := o.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Status updated")
}
