package controllers

import (
	"errors"
	"net/http"

	"doener-shop/libs"
	"doener-shop/models"
	"doener-shop/services"

	"github.com/gin-gonic/gin"
)

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: "Invalid request",
		Error:   err.Error(),
	})
}

// respondError maps service errors onto HTTP responses. Anything unknown is
// logged and reported as a 500 without details.
func respondError(c *gin.Context, err error) {
	if ve, ok := services.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: ve.Message,
			Field:   ve.Field,
		})
		return
	}

	var loginErr *services.LoginError
	if errors.As(err, &loginErr) {
		status := http.StatusUnauthorized
		if errors.Is(err, services.ErrAccountLocked) {
			status = http.StatusTooManyRequests
		}
		c.JSON(status, gin.H{
			"success": false,
			"message": loginErr.Error(),
			"data":    loginErr.Failure,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrEmptyCart):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrSessionClosed):
		status = http.StatusConflict
	case errors.Is(err, services.ErrAdminNotConfigured):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		libs.Logger.WithError(err).WithField("path", c.Request.URL.Path).Error("unhandled error")
		c.JSON(status, models.ErrorResponse{Success: false, Message: "Internal server error"})
		return
	}
	c.JSON(status, models.ErrorResponse{Success: false, Message: err.Error()})
}
