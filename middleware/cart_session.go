package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CartHeader = "X-Cart-ID"
	cartIDKey  = "cart_id"
)

// CartSession resolves the device's cart id from the X-Cart-ID header and
// issues a new one when the header is missing or malformed. The id is echoed
// back on every response.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(CartHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(cartIDKey, id)
		c.Header(CartHeader, id)
		c.Next()
	}
}

func CartID(c *gin.Context) string {
	return c.GetString(cartIDKey)
}
