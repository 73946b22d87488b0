package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rashidrk201111/badshahpizzahub/pkg/resp"
)

// paramID parses a positive numeric path parameter, answering 400 otherwise.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
