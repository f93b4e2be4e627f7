package controllers

import (
	"net/http"
	"time"

	"doener-shop/middleware"
	"doener-shop/models"
	"doener-shop/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	Orders *services.OrderService
	Zones  *services.ZoneTable
	Hours  *services.OpeningHours
	Now    func() time.Time
}

func (ctrl *CheckoutController) now() time.Time {
	if ctrl.Now != nil {
		return ctrl.Now()
	}
	return time.Now()
}

// @Summary List delivery zones
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout/zones [get]
func (ctrl *CheckoutController) GetZones(c *gin.Context) {
	respondOK(c, http.StatusOK, "Delivery zones retrieved", ctrl.Zones.Zones())
}

// @Summary Quote checkout totals
// @Description Subtotal, delivery fee and whether the zone minimum is met
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Cart-ID header string true "Cart ID"
// @Param request body models.QuoteRequest true "Order type and zone"
// @Success 200 {object} models.Response
// @Router /checkout/quote [post]
func (ctrl *CheckoutController) Quote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	quote, err := ctrl.Orders.Quote(c.Request.Context(), middleware.CartID(c), req.OrderType, req.Zone)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Quote calculated", quote)
}

// @Summary List today's time slots
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout/timeslots [get]
func (ctrl *CheckoutController) GetTimeSlots(c *gin.Context) {
	respondOK(c, http.StatusOK, "Time slots retrieved", ctrl.Hours.Slots(ctrl.now()))
}

// @Summary Opening hours status
// @Tags Checkout
// @Produce json
// @Success 200 {object} models.Response
// @Router /opening-hours [get]
func (ctrl *CheckoutController) GetOpeningHours(c *gin.Context) {
	respondOK(c, http.StatusOK, "Opening hours retrieved", ctrl.Hours.Status(ctrl.now()))
}

// @Summary Submit order
// @Description Validates the checkout and returns the WhatsApp link with the order text
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Cart-ID header string true "Cart ID"
// @Param request body models.CheckoutRequest true "Customer details"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *CheckoutController) CreateOrder(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	meta := models.OrderMetadata{
		ClientIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	result, err := ctrl.Orders.Submit(c.Request.Context(), middleware.CartID(c), req, meta)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Order created", result)
}
