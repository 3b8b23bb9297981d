package api

import (
	"fmt"
	"net/http"

	"mcscenario/internal/domain"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) listAssets(c *gin.Context) {
	c.JSON(200, m.ScenarioBuilder.View().Assets)
}

func (m ApiHandler) refreshAssets(c *gin.Context) {
	view, err := m.ScenarioBuilder.RefreshAssets(c.Request.Context())
	if err != nil {
		returnErrorJson(fmt.Errorf("Error loading assets: %w", err), c)
		return
	}
	c.JSON(200, view.Assets)
}

func (m ApiHandler) syncAsset(c *gin.Context) {
	var requestBody domain.SyncAssetRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	result, err := m.ScenarioBuilder.SyncAsset(c.Request.Context(), requestBody.Symbol)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}
