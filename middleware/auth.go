package middleware

import (
	"errors"
	"net/http"

	"doener-shop/models"
	"doener-shop/utils"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

func abortJSON(c *gin.Context, status int, message string, err error) {
	resp := models.ErrorResponse{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.AbortWithStatusJSON(status, resp)
}

// AuthMiddleware accepts requests carrying a valid bearer token and stores
// its claims on the context.
func AuthMiddleware(tokens *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := tokens.Authenticate(c.GetHeader("Authorization"))
		switch {
		case errors.Is(err, utils.ErrMissingToken), errors.Is(err, utils.ErrMalformedHeader):
			abortJSON(c, http.StatusUnauthorized, err.Error(), nil)
			return
		case err != nil:
			abortJSON(c, http.StatusUnauthorized, "Invalid or expired token", err)
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Claims(c).HasRole(role) {
			abortJSON(c, http.StatusForbidden, "Access denied. "+role+" role required", nil)
			return
		}
		c.Next()
	}
}

func Claims(c *gin.Context) *utils.Claims {
	claims, _ := c.Get(claimsKey)
	out, _ := claims.(*utils.Claims)
	return out
}
