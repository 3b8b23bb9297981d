package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"mcscenario/internal/app"
	"mcscenario/internal/calculator"
	"mcscenario/internal/logger"
	"mcscenario/internal/service"
	"mcscenario/pkg/mcservice"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	ScenarioBuilder   *app.ScenarioBuilderHandler
	SimulationService service.SimulationService
	HeartbeatService  service.HeartbeatService
	AllowedOrigins    []string
	Logger            *zap.SugaredLogger
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(m.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = m.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to mcscenario"})
	})

	router.GET("/draft", m.getDraft)
	router.PUT("/draft", m.updateDraft)
	router.POST("/draft/rows", m.addDraftRow)
	router.PATCH("/draft/rows/:index", m.updateDraftRow)
	router.DELETE("/draft/rows/:index", m.removeDraftRow)
	router.POST("/draft/reset", m.resetDraft)
	router.POST("/draft/submit", m.submitDraft)
	router.POST("/draft/acknowledge", m.acknowledgeSubmission)

	router.GET("/assets", m.listAssets)
	router.POST("/assets/refresh", m.refreshAssets)
	router.POST("/assets/sync", m.syncAsset)

	router.GET("/scenarios", m.listScenarios)
	router.POST("/scenarios/refresh", m.refreshScenarios)

	router.GET("/simulation/resources", m.getSimulationResources)
	router.POST("/simulation/run/:id", m.runSimulation)

	router.GET("/heartbeat", m.heartbeat)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

// errorStatusCode picks the status we answer with for an error coming out
// of the services
func errorStatusCode(err error) int {
	validationErr := calculator.ValidationError{}
	serverErr := &mcservice.ServerError{}
	transportErr := &mcservice.TransportError{}

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrSubmissionInProgress):
		return http.StatusConflict
	case errors.As(err, &serverErr):
		if serverErr.StatusCode >= 400 && serverErr.StatusCode < 500 {
			return serverErr.StatusCode
		}
		return http.StatusBadGateway
	case errors.As(err, &transportErr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, errorStatusCode(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log := logger.FromContext(c.Request.Context())
	if code >= 500 {
		log.Errorf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	} else {
		log.Infof("%s %s rejected: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddlware(c *gin.Context) {
	requestID := c.GetHeader(mcservice.RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Writer.Header().Set(mcservice.RequestIDHeader, requestID)

	base := m.Logger
	if base == nil {
		base = zap.S()
	}
	log := base.With("requestID", requestID)
	c.Request = c.Request.WithContext(logger.NewContext(c.Request.Context(), log))

	start := time.Now()
	c.Next()

	log.Infow(
		"handled request",
		"method", c.Request.Method,
		"route", c.FullPath(),
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
