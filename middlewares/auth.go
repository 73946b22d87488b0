package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rashidrk201111/badshahpizzahub/pkg/resp"
	"github.com/rashidrk201111/badshahpizzahub/utils"
)

// AuthMiddleware checks the bearer token.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		authorize(c, strings.TrimPrefix(h, "Bearer "), secret)
	}
}

func authorize(c *gin.Context, tokenStr, secret string) {
	claims, err := utils.ParseToken(tokenStr, secret)
	if err != nil {
		resp.Unauthorized(c, "invalid token")
		c.Abort()
		return
	}
	utils.SetCurrentUser(c, claims)
	c.Next()
}
