package repository

import (
	"context"

	"mcscenario/internal/domain"
	"mcscenario/pkg/mcservice"
)

type SimulationRepository interface {
	GetResources(ctx context.Context) (*domain.SimulationResources, error)
	Run(ctx context.Context, scenarioID int32, settings domain.SimulationSettings) (*domain.SimulationResponse, error)
}

type simulationRepositoryHandler struct {
	Client mcservice.Client
}

func NewSimulationRepository(client mcservice.Client) SimulationRepository {
	return simulationRepositoryHandler{Client: client}
}

func (h simulationRepositoryHandler) GetResources(ctx context.Context) (*domain.SimulationResources, error) {
	return h.Client.GetSimulationResources(ctx)
}

func (h simulationRepositoryHandler) Run(ctx context.Context, scenarioID int32, settings domain.SimulationSettings) (*domain.SimulationResponse, error) {
	return h.Client.RunSimulation(ctx, scenarioID, settings)
}
