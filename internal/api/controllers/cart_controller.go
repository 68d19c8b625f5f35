package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gravecare/internal/models/request_models"
	"gravecare/internal/services"
	"gravecare/pkg/utils"
)

type CartController struct {
	cartService services.CartService
}

func NewCartController(cartService services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

func cartUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(callerID(c))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
		return uuid.Nil, false
	}
	return id, true
}

// GetCart godoc
// @Summary The caller's cart
// @Tags Cart
// @Security BearerAuth
// @Router /cart [get]
func (ct *CartController) GetCart(c *gin.Context) {
	userID, ok := cartUserID(c)
	if !ok {
		return
	}
	cart, err := ct.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cart, "")
}

// AddItem godoc
// @Summary Add a product to the cart
// @Tags Cart
// @Security BearerAuth
// @Param request body request_models.AddCartItemRequest true "Item payload"
// @Router /cart/items [post]
func (ct *CartController) AddItem(c *gin.Context) {
	var req request_models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, ok := cartUserID(c)
	if !ok {
		return
	}
	cart, err := ct.cartService.AddItem(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cart, "Item added")
}

// UpdateItem godoc
// @Summary Change a line item quantity (0 removes it)
// @Tags Cart
// @Security BearerAuth
// @Router /cart/items/{id} [patch]
func (ct *CartController) UpdateItem(c *gin.Context) {
	var req request_models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, ok := cartUserID(c)
	if !ok {
		return
	}
	cart, err := ct.cartService.UpdateItem(c.Request.Context(), userID, c.Param("id"), *req.Quantity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cart, "Cart updated")
}

func (ct *CartController) RemoveItem(c *gin.Context) {
	userID, ok := cartUserID(c)
	if !ok {
		return
	}
	cart, err := ct.cartService.RemoveItem(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cart, "Item removed")
}

func (ct *CartController) ClearCart(c *gin.Context) {
	userID, ok := cartUserID(c)
	if !ok {
		return
	}
	if err := ct.cartService.ClearCart(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Cart cleared")
}
