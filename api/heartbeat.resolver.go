package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) heartbeat(c *gin.Context) {
	result, err := m.HeartbeatService.Check(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, result)
}
