package controllers

import (
	"net/http"
	"time"

	"doener-shop/models"
	"doener-shop/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	History  *services.HistoryService
	Location *time.Location
}

type orderPage struct {
	Range   string               `json:"range"`
	From    *time.Time           `json:"from,omitempty"`
	To      *time.Time           `json:"to,omitempty"`
	Count   int                  `json:"count"`
	Revenue models.Cents         `json:"revenue"`
	Orders  []models.OrderRecord `json:"orders"`
}

// @Summary Get orders
// @Description Orders in a time range, newest first, with count and revenue over the whole range
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param range query string false "today, week, month, year, custom or all"
// @Param start_date query string false "Custom range start (format: 2006-01-02)"
// @Param end_date query string false "Custom range end, inclusive (format: 2006-01-02)"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.HATEOASResponse
// @Router /admin/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 10)

	r, err := services.ParseRange(c.Query("range"), c.Query("start_date"), c.Query("end_date"), time.Now(), ctrl.Location)
	if err != nil {
		respondError(c, err)
		return
	}

	history, err := ctrl.History.List(c.Request.Context(), r)
	if err != nil {
		respondError(c, err)
		return
	}

	start, end := paginate(len(history.Orders), limit, offset)
	data := orderPage{
		Range:   history.Range,
		From:    history.From,
		To:      history.To,
		Count:   history.Count,
		Revenue: history.Revenue,
		Orders:  history.Orders[start:end],
	}
	c.JSON(http.StatusOK, buildResponse(c, "Orders retrieved", data, page, limit, history.Count))
}

// @Summary Delete order
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/orders/{id} [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order ID"})
		return
	}

	if err := ctrl.History.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Order deleted", nil)
}
