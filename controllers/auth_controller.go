package controllers

import (
	"net/http"

	"doener-shop/models"
	"doener-shop/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AdminAuthService
}

// @Summary Admin login
// @Description Exchange the admin password for a bearer token. Repeated failures lock the login.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body models.AdminLoginRequest true "Password"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Router /admin/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	resp, err := ctrl.Auth.Login(c.Request.Context(), req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Login successful", resp)
}
