package service

import (
	"context"
	"fmt"

	"mcscenario/internal/calculator"
	"mcscenario/internal/domain"
	"mcscenario/internal/logger"
	"mcscenario/internal/repository"
)

type SimulationRunResult struct {
	Response *domain.SimulationResponse   `json:"response"`
	Summary  *calculator.SimulationSummary `json:"summary,omitempty"`
}

type SimulationService interface {
	Resources(ctx context.Context) (*domain.SimulationResources, error)
	Run(ctx context.Context, scenarioID int32, settings domain.SimulationSettings) (*SimulationRunResult, error)
}

type simulationServiceHandler struct {
	SimulationRepository repository.SimulationRepository
}

func NewSimulationService(simulationRepository repository.SimulationRepository) SimulationService {
	return simulationServiceHandler{
		SimulationRepository: simulationRepository,
	}
}

func (h simulationServiceHandler) Resources(ctx context.Context) (*domain.SimulationResources, error) {
	return h.SimulationRepository.GetResources(ctx)
}

// Run checks settings against the server's resources before running the
// simulation for a saved scenario
func (h simulationServiceHandler) Run(ctx context.Context, scenarioID int32, settings domain.SimulationSettings) (*SimulationRunResult, error) {
	log := logger.FromContext(ctx)

	resources, err := h.SimulationRepository.GetResources(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get simulation resources: %w", err)
	}
	if err := calculator.ValidateSimulationSettings(settings, *resources); err != nil {
		return nil, err
	}

	response, err := h.SimulationRepository.Run(ctx, scenarioID, settings)
	if err != nil {
		return nil, err
	}

	summary, err := calculator.SummarizeSimulation(*response)
	if err != nil {
		log.Warnf("could not summarize simulation for scenario %d: %v", scenarioID, err)
		summary = nil
	}

	return &SimulationRunResult{
		Response: response,
		Summary:  summary,
	}, nil
}
