package integration_tests

import (
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"mcscenario/internal/domain"
	"mcscenario/pkg/mcservice"

	"github.com/gin-gonic/gin"
)

// FakeBackend is an in-memory stand-in for the monte carlo service. it
// checks scenario requests the same way the real service does and can
// answer with either envelope
type FakeBackend struct {
	Server   *httptest.Server
	Envelope mcservice.Envelope

	mu        sync.Mutex
	assets    []domain.Asset
	scenarios map[int32]domain.Scenario
	nextID    int32
	unhealthy map[string]bool
	Requests  []string
}

func NewFakeBackend(envelope mcservice.Envelope, symbols ...string) *FakeBackend {
	gin.SetMode(gin.TestMode)
	b := &FakeBackend{
		Envelope:  envelope,
		scenarios: map[int32]domain.Scenario{},
		nextID:    1,
		unhealthy: map[string]bool{},
	}
	for _, s := range symbols {
		b.addAsset(s)
	}
	b.Server = httptest.NewServer(b.router())
	return b
}

func (b *FakeBackend) Close() {
	b.Server.Close()
}

func (b *FakeBackend) URL() string {
	return b.Server.URL
}

func (b *FakeBackend) SetUnhealthy(service string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.unhealthy[service] = true
}

func (b *FakeBackend) ScenarioCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.scenarios)
}

func (b *FakeBackend) addAsset(symbol string) domain.Asset {
	for _, a := range b.assets {
		if a.Symbol == symbol {
			return a
		}
	}
	a := domain.Asset{
		ID:            int32(len(b.assets) + 1),
		Symbol:        symbol,
		LastRefreshed: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	b.assets = append(b.assets, a)
	return a
}

func (b *FakeBackend) respond(c *gin.Context, code int, payload interface{}) {
	if code == http.StatusNoContent {
		c.Status(code)
		return
	}
	if b.Envelope == mcservice.EnvelopeWrapped {
		c.JSON(code, gin.H{"data": payload, "error": nil})
		return
	}
	c.JSON(code, payload)
}

func (b *FakeBackend) respondError(c *gin.Context, code int, message string) {
	if b.Envelope == mcservice.EnvelopeWrapped {
		c.AbortWithStatusJSON(code, gin.H{"data": nil, "error": message})
		return
	}
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

func (b *FakeBackend) router() *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		b.mu.Lock()
		b.Requests = append(b.Requests, c.Request.Method+" "+c.Request.URL.Path)
		b.mu.Unlock()
	})

	router.GET("/api/assets", b.listAssets)
	router.POST("/api/assets/sync", b.syncAsset)
	router.POST("/api/syncStockData", b.syncAsset)
	router.GET("/api/scenarios", b.listScenarios)
	router.POST("/api/scenarios", b.createScenario)
	router.GET("/api/scenarios/:id", b.getScenario)
	router.PUT("/api/scenarios/:id", b.updateScenario)
	router.DELETE("/api/scenarios/:id", b.deleteScenario)
	router.GET("/api/simulation/resources", b.simulationResources)
	router.POST("/api/simulation/run/:id", b.runSimulation)
	router.GET("/api/heartbeat", b.heartbeat)

	return router
}

func (b *FakeBackend) listAssets(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.respond(c, 200, b.assets)
}

func (b *FakeBackend) syncAsset(c *gin.Context) {
	req := domain.SyncAssetRequest{}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Symbol) == "" {
		b.respondError(c, http.StatusBadRequest, "symbol is required")
		return
	}
	if req.Symbol == "FAIL" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"date": "2024-03-01", "message": "no data for FAIL"})
		return
	}

	b.mu.Lock()
	b.addAsset(req.Symbol)
	b.mu.Unlock()
	b.respond(c, 200, domain.SyncResult{Date: "2024-03-01"})
}

func validateScenarioRequest(req domain.NewScenarioRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if len(req.Components) == 0 {
		return fmt.Errorf("at least one component is required")
	}

	seen := map[int32]bool{}
	weightSum := 0.0
	for _, component := range req.Components {
		if component.AssetID == 0 {
			return fmt.Errorf("assetId must be provided")
		}
		if component.Weight <= 0 {
			return fmt.Errorf("component weights must be positive")
		}
		if seen[component.AssetID] {
			return fmt.Errorf("duplicate assetId %d", component.AssetID)
		}
		seen[component.AssetID] = true
		weightSum += component.Weight
	}

	if math.Abs(weightSum-1.0) > 0.001 {
		return fmt.Errorf("component weights must sum to 1.0, got %.4f", weightSum)
	}
	return nil
}

// components come back heaviest first, not in the order they were sent
func storedComponents(in []domain.ScenarioComponent) []domain.ScenarioComponent {
	out := make([]domain.ScenarioComponent, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight > out[j].Weight
	})
	return out
}

func (b *FakeBackend) listScenarios(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := []domain.Scenario{}
	for _, s := range b.scenarios {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	b.respond(c, 200, out)
}

func (b *FakeBackend) createScenario(c *gin.Context) {
	req := domain.NewScenarioRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		b.respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateScenarioRequest(req); err != nil {
		b.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, existing := range b.scenarios {
		if existing.Name == strings.TrimSpace(req.Name) {
			b.respondError(c, http.StatusConflict, fmt.Sprintf("scenario %s already exists", existing.Name))
			return
		}
	}
	now := time.Now().UTC()
	s := domain.Scenario{
		ID:            b.nextID,
		Name:          strings.TrimSpace(req.Name),
		FloatedWeight: req.FloatedWeight,
		CreatedAt:     now,
		UpdatedAt:     now,
		Components:    storedComponents(req.Components),
	}
	b.scenarios[s.ID] = s
	b.nextID++

	b.respond(c, http.StatusCreated, s)
}

func (b *FakeBackend) scenarioID(c *gin.Context) (int32, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		b.respondError(c, http.StatusBadRequest, "invalid scenario id")
		return 0, false
	}
	return int32(id), true
}

func (b *FakeBackend) getScenario(c *gin.Context) {
	id, ok := b.scenarioID(c)
	if !ok {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.scenarios[id]
	if !ok {
		b.respondError(c, http.StatusNotFound, "scenario not found")
		return
	}
	b.respond(c, 200, s)
}

func (b *FakeBackend) updateScenario(c *gin.Context) {
	id, ok := b.scenarioID(c)
	if !ok {
		return
	}
	s := domain.Scenario{}
	if err := c.ShouldBindJSON(&s); err != nil {
		b.respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateScenarioRequest(domain.NewScenarioRequest{Name: s.Name, FloatedWeight: s.FloatedWeight, Components: s.Components}); err != nil {
		b.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	existing, ok := b.scenarios[id]
	if !ok {
		b.respondError(c, http.StatusNotFound, "scenario not found")
		return
	}
	existing.Name = strings.TrimSpace(s.Name)
	existing.FloatedWeight = s.FloatedWeight
	existing.Components = storedComponents(s.Components)
	existing.UpdatedAt = time.Now().UTC()
	b.scenarios[id] = existing
	b.respond(c, 200, existing)
}

func (b *FakeBackend) deleteScenario(c *gin.Context) {
	id, ok := b.scenarioID(c)
	if !ok {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.scenarios[id]; !ok {
		b.respondError(c, http.StatusNotFound, "scenario not found")
		return
	}
	delete(b.scenarios, id)
	b.respond(c, http.StatusNoContent, nil)
}

func (b *FakeBackend) simulationResources(c *gin.Context) {
	b.respond(c, 200, domain.SimulationResources{
		DistType: map[string]int{
			"standardNormal": domain.DistTypeStandardNormal,
			"studentT":       domain.DistTypeStudentT,
		},
		SimulationUnitOfTime: map[string]int{
			"weekly": domain.UnitWeekly,
		},
		SimulationDuration: map[string]int{
			"days":     domain.UnitDaily,
			"weeks":    domain.UnitWeekly,
			"months":   domain.UnitMonthly,
			"quarters": domain.UnitQuarterly,
			"years":    domain.UnitYearly,
		},
	})
}

// runSimulation returns a fixed fan of paths sized to the requested
// duration. the numbers only need to be stable
func (b *FakeBackend) runSimulation(c *gin.Context) {
	id, ok := b.scenarioID(c)
	if !ok {
		return
	}
	settings := domain.SimulationSettings{}
	if err := c.ShouldBindJSON(&settings); err != nil {
		b.respondError(c, http.StatusBadRequest, "invalid simulation settings")
		return
	}
	b.mu.Lock()
	_, exists := b.scenarios[id]
	b.mu.Unlock()
	if !exists {
		b.respondError(c, http.StatusNotFound, "scenario not found")
		return
	}

	steps := settings.SimulationDuration + 1
	drifts := map[float64]float64{5: -0.004, 50: 0.001, 95: 0.006}
	labels := map[float64]string{5: "p5", 50: "median", 95: "p95"}
	paths := []domain.SamplePath{}
	for _, p := range []float64{5, 50, 95} {
		values := make([]float64, steps)
		for i := range values {
			values[i] = math.Pow(1+drifts[p], float64(i))
		}
		paths = append(paths, domain.SamplePath{Percentile: p, Values: values, Label: labels[p]})
	}

	stats := domain.SimulationStats{}
	for i := 0; i < steps; i++ {
		stats.Mean = append(stats.Mean, paths[1].Values[i])
		stats.P5 = append(stats.P5, paths[0].Values[i])
		stats.P50 = append(stats.P50, paths[1].Values[i])
		stats.P95 = append(stats.P95, paths[2].Values[i])
	}

	b.respond(c, 200, domain.SimulationResponse{
		RiskMetrics: domain.RiskMetrics{
			VaR95:             paths[0].Values[steps-1] - 1,
			ProbabilityOfLoss: 0.3,
			MeanFinalValue:    paths[1].Values[steps-1],
			MedianFinalValue:  paths[1].Values[steps-1],
		},
		SamplePaths:     paths,
		SimulationStats: stats,
	})
}

func (b *FakeBackend) heartbeat(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := domain.Heartbeat{"postgres": true, "alphaVantage": true}
	for name := range b.unhealthy {
		out[name] = false
	}
	b.respond(c, 200, out)
}
