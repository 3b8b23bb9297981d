package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) listScenarios(c *gin.Context) {
	c.JSON(200, m.ScenarioBuilder.View().Scenarios)
}

func (m ApiHandler) refreshScenarios(c *gin.Context) {
	view, err := m.ScenarioBuilder.RefreshScenarios(c.Request.Context())
	if err != nil {
		returnErrorJson(fmt.Errorf("Error loading scenarios: %w", err), c)
		return
	}
	c.JSON(200, view.Scenarios)
}
