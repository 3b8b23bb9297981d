package api

import (
	"fmt"
	"net/http"
	"strconv"

	"mcscenario/internal/domain"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getSimulationResources(c *gin.Context) {
	resources, err := m.SimulationService.Resources(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, resources)
}

func (m ApiHandler) runSimulation(c *gin.Context) {
	scenarioID, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid scenario id %q", c.Param("id")), c, http.StatusBadRequest)
		return
	}

	var settings domain.SimulationSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	result, err := m.SimulationService.Run(c.Request.Context(), int32(scenarioID), settings)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}
