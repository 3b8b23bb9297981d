package service

import (
	"context"
	"fmt"
	"sync"

	"mcscenario/internal/domain"
	"mcscenario/internal/logger"
	"mcscenario/internal/repository"
)

// ReferenceDataService holds the asset catalog and scenario list the
// composer reads from. each list has its own loading flag and error slot
type ReferenceDataService interface {
	LoadAssets(ctx context.Context) ([]domain.Asset, error)
	LoadScenarios(ctx context.Context) ([]domain.Scenario, error)
	LoadAll(ctx context.Context)
	Snapshot() ReferenceData
}

type ReferenceData struct {
	Assets           []domain.Asset    `json:"assets"`
	Scenarios        []domain.Scenario `json:"scenarios"`
	AssetsLoaded     bool              `json:"assetsLoaded"`
	LoadingAssets    bool              `json:"loadingAssets"`
	LoadingScenarios bool              `json:"loadingScenarios"`
	AssetsError      string            `json:"assetsError,omitempty"`
	ScenariosError   string            `json:"scenariosError,omitempty"`
}

type referenceDataServiceHandler struct {
	AssetRepository    repository.AssetRepository
	ScenarioRepository repository.ScenarioRepository

	mu                sync.Mutex
	assets            []domain.Asset
	scenarios         []domain.Scenario
	assetsLoaded      bool
	assetsInFlight    int
	scenariosInFlight int
	assetsError       string
	scenariosError    string
}

func NewReferenceDataService(assetRepository repository.AssetRepository, scenarioRepository repository.ScenarioRepository) ReferenceDataService {
	return &referenceDataServiceHandler{
		AssetRepository:    assetRepository,
		ScenarioRepository: scenarioRepository,
		assets:             []domain.Asset{},
		scenarios:          []domain.Scenario{},
	}
}

// LoadAssets replaces the catalog with whatever the server returns. with
// overlapping calls the one that finishes last wins
func (h *referenceDataServiceHandler) LoadAssets(ctx context.Context) ([]domain.Asset, error) {
	h.mu.Lock()
	h.assetsInFlight++
	h.mu.Unlock()

	assets, err := h.AssetRepository.List(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.assetsInFlight--
	if err != nil {
		h.assetsError = fmt.Sprintf("Error loading assets: %s", err.Error())
		logger.FromContext(ctx).Warnf("failed to load assets: %v", err)
		return nil, err
	}
	h.assets = assets
	h.assetsLoaded = true
	h.assetsError = ""

	return copyAssets(assets), nil
}

func (h *referenceDataServiceHandler) LoadScenarios(ctx context.Context) ([]domain.Scenario, error) {
	h.mu.Lock()
	h.scenariosInFlight++
	h.mu.Unlock()

	scenarios, err := h.ScenarioRepository.List(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.scenariosInFlight--
	if err != nil {
		h.scenariosError = fmt.Sprintf("Error loading scenarios: %s", err.Error())
		logger.FromContext(ctx).Warnf("failed to load scenarios: %v", err)
		return nil, err
	}
	h.scenarios = scenarios
	h.scenariosError = ""

	return copyScenarios(scenarios), nil
}

// LoadAll fetches both lists at the same time and returns once both are
// done. failures end up in the error slots
func (h *referenceDataServiceHandler) LoadAll(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		h.LoadAssets(ctx)
	}()
	go func() {
		defer wg.Done()
		h.LoadScenarios(ctx)
	}()
	wg.Wait()
}

func (h *referenceDataServiceHandler) Snapshot() ReferenceData {
	h.mu.Lock()
	defer h.mu.Unlock()

	return ReferenceData{
		Assets:           copyAssets(h.assets),
		Scenarios:        copyScenarios(h.scenarios),
		AssetsLoaded:     h.assetsLoaded,
		LoadingAssets:    h.assetsInFlight > 0,
		LoadingScenarios: h.scenariosInFlight > 0,
		AssetsError:      h.assetsError,
		ScenariosError:   h.scenariosError,
	}
}

func copyAssets(in []domain.Asset) []domain.Asset {
	out := make([]domain.Asset, len(in))
	copy(out, in)
	return out
}

// component slices are shared, nothing mutates them after decoding
func copyScenarios(in []domain.Scenario) []domain.Scenario {
	out := make([]domain.Scenario, len(in))
	copy(out, in)
	return out
}
