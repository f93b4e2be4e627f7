package controllers

import (
	"net/http"
	"strconv"

	"doener-shop/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menu *services.MenuService
}

// @Summary Get menu
// @Description Get all menu sections, or one section when section is given
// @Tags Menu
// @Produce json
// @Param section query string false "Section key"
// @Success 200 {object} models.Response
// @Router /menu [get]
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	if key := c.Query("section"); key != "" {
		section, err := ctrl.Menu.Section(key)
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, http.StatusOK, "Menu section retrieved", section)
		return
	}
	respondOK(c, http.StatusOK, "Menu retrieved", ctrl.Menu.Sections())
}

// @Summary Search menu
// @Description Search items by name, description or number
// @Tags Menu
// @Produce json
// @Param q query string false "Search text"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.HATEOASResponse
// @Router /menu/search [get]
func (ctrl *MenuController) Search(c *gin.Context) {
	page, limit, _ := getPaginationParams(c, 20)
	items, meta := ctrl.Menu.Search(c.Query("q"), page, limit)
	c.JSON(http.StatusOK, buildResponse(c, "Menu items retrieved", items, meta.Page, meta.Limit, meta.TotalItems))
}

// @Summary Get menu item
// @Description Get one menu item with its configuration needs
// @Tags Menu
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /menu/{id} [get]
func (ctrl *MenuController) GetItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid item ID"})
		return
	}

	item, err := ctrl.Menu.Item(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Menu item retrieved", item)
}
