package repository

import (
	"context"

	"mcscenario/internal/domain"
	"mcscenario/pkg/mcservice"
)

type ScenarioRepository interface {
	List(ctx context.Context) ([]domain.Scenario, error)
	Get(ctx context.Context, id int32) (*domain.Scenario, error)
	Add(ctx context.Context, req domain.NewScenarioRequest) (*domain.Scenario, error)
	Update(ctx context.Context, scenario domain.Scenario) (*domain.Scenario, error)
	Delete(ctx context.Context, id int32) (bool, error)
}

type scenarioRepositoryHandler struct {
	Client mcservice.Client
}

func NewScenarioRepository(client mcservice.Client) ScenarioRepository {
	return scenarioRepositoryHandler{Client: client}
}

func (h scenarioRepositoryHandler) List(ctx context.Context) ([]domain.Scenario, error) {
	scenarios, err := h.Client.ListScenarios(ctx)
	if err != nil {
		return nil, err
	}
	if scenarios == nil {
		scenarios = []domain.Scenario{}
	}
	return scenarios, nil
}

func (h scenarioRepositoryHandler) Get(ctx context.Context, id int32) (*domain.Scenario, error) {
	return h.Client.GetScenario(ctx, id)
}

func (h scenarioRepositoryHandler) Add(ctx context.Context, req domain.NewScenarioRequest) (*domain.Scenario, error) {
	return h.Client.CreateScenario(ctx, req)
}

func (h scenarioRepositoryHandler) Update(ctx context.Context, scenario domain.Scenario) (*domain.Scenario, error) {
	return h.Client.UpdateScenario(ctx, scenario)
}

func (h scenarioRepositoryHandler) Delete(ctx context.Context, id int32) (bool, error) {
	return h.Client.DeleteScenario(ctx, id)
}
