package controllers

import (
	"net/http"

	"doener-shop/middleware"
	"doener-shop/models"
	"doener-shop/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Carts *services.CartService
}

// @Summary Get cart
// @Tags Cart
// @Produce json
// @Param X-Cart-ID header string false "Cart ID"
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	view, err := ctrl.Carts.Get(c.Request.Context(), middleware.CartID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Cart retrieved", view)
}

// @Summary Add item to cart
// @Description Add one unit of a fully specified selection. Age-restricted items go through the configurator.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-ID header string false "Cart ID"
// @Param request body models.CartItemRequest true "Item"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := ctrl.Carts.AddItem(c.Request.Context(), middleware.CartID(c), req.ItemID, req.Selection)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Item added to cart", view)
}

// @Summary Update cart item quantity
// @Description Quantity 0 or less removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-ID header string true "Cart ID"
// @Param request body models.UpdateCartItemRequest true "Line and quantity"
// @Success 200 {object} models.Response
// @Router /cart/items [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := ctrl.Carts.UpdateQuantity(c.Request.Context(), middleware.CartID(c), req.ItemID, req.Selection, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Cart updated", view)
}

// @Summary Remove cart item
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-ID header string true "Cart ID"
// @Param request body models.CartItemRequest true "Line"
// @Success 200 {object} models.Response
// @Router /cart/items [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	var req models.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := ctrl.Carts.RemoveItem(c.Request.Context(), middleware.CartID(c), req.ItemID, req.Selection)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Item removed from cart", view)
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Param X-Cart-ID header string true "Cart ID"
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	view, err := ctrl.Carts.Clear(c.Request.Context(), middleware.CartID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Cart cleared", view)
}
