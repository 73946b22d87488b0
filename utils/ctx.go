package utils

import "github.com/gin-gonic/gin"

const ctxUserID = "userId"

// SetCurrentUser stores the authenticated user on the request context.
func SetCurrentUser(c *gin.Context, claims *Claims) {
	c.Set(ctxUserID, claims.UserID)
}

// CurrentUserID is 0 when the request is not authenticated.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(ctxUserID)
	if id, ok := v.(uint); ok {
		return id
	}
	return 0
}
