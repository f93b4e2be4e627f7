package controllers

import (
	"net/http"

	"doener-shop/middleware"
	"doener-shop/models"
	"doener-shop/services"

	"github.com/gin-gonic/gin"
)

type ConfiguratorController struct {
	Configurator *services.ConfiguratorService
}

// @Summary Open configurator
// @Description Start configuring a menu item for the current cart
// @Tags Configurator
// @Accept json
// @Produce json
// @Param X-Cart-ID header string false "Cart ID"
// @Param request body models.OpenConfiguratorRequest true "Item"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /configurator [post]
func (ctrl *ConfiguratorController) Open(c *gin.Context) {
	var req models.OpenConfiguratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	view, err := ctrl.Configurator.Open(c.Request.Context(), middleware.CartID(c), req.ItemID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Configurator opened", view)
}

// @Summary Get configurator
// @Tags Configurator
// @Produce json
// @Param X-Cart-ID header string true "Cart ID"
// @Param id path string true "Session ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /configurator/{id} [get]
func (ctrl *ConfiguratorController) Get(c *gin.Context) {
	view, err := ctrl.Configurator.Get(c.Request.Context(), middleware.CartID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Configurator retrieved", view)
}

// @Summary Send configurator event
// @Description Apply one event (select_size, toggle_sauce, next, back, confirm_age, cancel, ...)
// @Tags Configurator
// @Accept json
// @Produce json
// @Param X-Cart-ID header string true "Cart ID"
// @Param id path string true "Session ID"
// @Param request body models.ConfiguratorEventRequest true "Event"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /configurator/{id}/events [post]
func (ctrl *ConfiguratorController) ApplyEvent(c *gin.Context) {
	var req models.ConfiguratorEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ev := services.Event{Type: services.EventType(req.Type), Value: req.Value}
	view, err := ctrl.Configurator.Apply(c.Request.Context(), middleware.CartID(c), c.Param("id"), ev)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Configurator updated"
	switch view.Step {
	case models.StepDone:
		message = "Item added to cart"
	case models.StepCancelled:
		message = "Configurator closed"
	}
	respondOK(c, http.StatusOK, message, view)
}

// @Summary Close configurator
// @Tags Configurator
// @Produce json
// @Param X-Cart-ID header string true "Cart ID"
// @Param id path string true "Session ID"
// @Success 200 {object} models.Response
// @Router /configurator/{id} [delete]
func (ctrl *ConfiguratorController) Close(c *gin.Context) {
	if err := ctrl.Configurator.Close(c.Request.Context(), middleware.CartID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Configurator closed", nil)
}
