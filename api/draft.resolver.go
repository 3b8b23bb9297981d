package api

import (
	"fmt"
	"net/http"
	"strconv"

	"mcscenario/internal/domain"
	"mcscenario/internal/logger"

	"github.com/gin-gonic/gin"
)

type updateDraftRequest struct {
	Name          *string `json:"name"`
	FloatedWeight *bool   `json:"floatedWeight"`
}

func (m ApiHandler) getDraft(c *gin.Context) {
	c.JSON(200, m.ScenarioBuilder.View())
}

func (m ApiHandler) updateDraft(c *gin.Context) {
	var requestBody updateDraftRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	if requestBody.Name != nil {
		m.ScenarioBuilder.SetName(*requestBody.Name)
	}
	if requestBody.FloatedWeight != nil {
		m.ScenarioBuilder.SetFloatedWeight(*requestBody.FloatedWeight)
	}

	c.JSON(200, m.ScenarioBuilder.View())
}

func (m ApiHandler) addDraftRow(c *gin.Context) {
	c.JSON(200, m.ScenarioBuilder.AddRow())
}

func rowIndex(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, fmt.Errorf("invalid row index %q", c.Param("index"))
	}
	return index, nil
}

func (m ApiHandler) updateDraftRow(c *gin.Context) {
	index, err := rowIndex(c)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	var patch domain.DraftRowPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	view, ok := m.ScenarioBuilder.UpdateRow(index, patch)
	if !ok {
		returnErrorJsonCode(fmt.Errorf("row %d does not exist", index), c, http.StatusNotFound)
		return
	}

	c.JSON(200, view)
}

func (m ApiHandler) removeDraftRow(c *gin.Context) {
	index, err := rowIndex(c)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	view, ok := m.ScenarioBuilder.RemoveRow(index)
	if !ok {
		if len(view.Draft.Rows) <= 1 {
			returnErrorJsonCode(fmt.Errorf("a scenario needs at least one row"), c, http.StatusBadRequest)
			return
		}
		returnErrorJsonCode(fmt.Errorf("row %d does not exist", index), c, http.StatusNotFound)
		return
	}

	c.JSON(200, view)
}

func (m ApiHandler) resetDraft(c *gin.Context) {
	m.ScenarioBuilder.ResetDraft()
	c.JSON(200, m.ScenarioBuilder.View())
}

// submitDraft answers with the view either way so the page can show the
// message next to the entries it kept
func (m ApiHandler) submitDraft(c *gin.Context) {
	profile, endProfile := domain.NewProfile()
	ctx := domain.NewCtxWithProfile(c.Request.Context(), profile)

	view, err := m.ScenarioBuilder.Submit(ctx)
	endProfile()
	if b, profileErr := profile.ToJsonBytes(); profileErr == nil {
		logger.FromContext(ctx).Debugf("submit profile: %s", string(b))
	}

	if err != nil {
		message := view.Submission.Error
		if message == "" {
			message = err.Error()
		}
		c.AbortWithStatusJSON(errorStatusCode(err), gin.H{
			"error": message,
			"view":  view,
		})
		return
	}

	c.JSON(200, view)
}

func (m ApiHandler) acknowledgeSubmission(c *gin.Context) {
	c.JSON(200, m.ScenarioBuilder.Acknowledge())
}
