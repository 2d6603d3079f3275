package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mridularora123/shopsphere-community-sub000/internal/signature"
)

// ShopKey is the context key holding the verified shop domain.
const ShopKey = "shop"

// ProxySignature guards every storefront-facing endpoint. A request
// that was not forwarded intact by the trusted proxy never reaches the
// handlers behind it.
func ProxySignature(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := c.Request.URL.Query()
		shop := params.Get("shop")
		if shop == "" || !signature.Verify(params, secret) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid signature",
			})
			return
		}
		c.Set(ShopKey, shop)
		c.Next()
	}
}

// Shop returns the verified shop domain set by ProxySignature.
func Shop(c *gin.Context) string {
	return c.GetString(ShopKey)
}
