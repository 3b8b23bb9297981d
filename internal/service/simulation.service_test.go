package service

import (
	"context"
	"errors"
	"testing"

	"mcscenario/internal/domain"
	mock_repository "mcscenario/internal/repository/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSimulationService_Run(t *testing.T) {
	ctx := context.Background()
	resources := &domain.SimulationResources{
		DistType:             map[string]int{"standardNormal": domain.DistTypeStandardNormal, "studentT": domain.DistTypeStudentT},
		SimulationUnitOfTime: map[string]int{"weekly": domain.UnitWeekly},
		SimulationDuration:   map[string]int{"weeks": domain.UnitWeekly},
	}
	settings := domain.SimulationSettings{
		DistType:             domain.DistTypeStandardNormal,
		SimulationUnitOfTime: domain.UnitWeekly,
		SimulationDuration:   52,
		Iterations:           500,
	}

	t.Run("runs and summarizes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		simulationRepository := mock_repository.NewMockSimulationRepository(ctrl)
		handler := NewSimulationService(simulationRepository)

		simulationRepository.EXPECT().GetResources(gomock.Any()).Return(resources, nil)
		simulationRepository.EXPECT().Run(gomock.Any(), int32(4), settings).Return(&domain.SimulationResponse{
			SamplePaths: []domain.SamplePath{
				{Percentile: 5, Values: []float64{1, 0.9}},
				{Percentile: 95, Values: []float64{1, 1.3}},
			},
		}, nil)

		result, err := handler.Run(ctx, 4, settings)
		require.NoError(t, err)
		require.NotNil(t, result.Summary)
		require.Equal(t, 2, result.Summary.Paths)
		require.InDelta(t, 0.5, result.Summary.ProbabilityLoss, 1e-9)
	})

	t.Run("invalid settings never reach the server", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		simulationRepository := mock_repository.NewMockSimulationRepository(ctrl)
		handler := NewSimulationService(simulationRepository)

		simulationRepository.EXPECT().GetResources(gomock.Any()).Return(resources, nil)

		bad := settings
		bad.Iterations = 0
		_, err := handler.Run(ctx, 4, bad)
		require.EqualError(t, err, "Iterations must be positive.")
	})

	t.Run("empty response still returns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		simulationRepository := mock_repository.NewMockSimulationRepository(ctrl)
		handler := NewSimulationService(simulationRepository)

		simulationRepository.EXPECT().GetResources(gomock.Any()).Return(resources, nil)
		simulationRepository.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.SimulationResponse{}, nil)

		result, err := handler.Run(ctx, 4, settings)
		require.NoError(t, err)
		require.Nil(t, result.Summary)
	})

	t.Run("resources failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		simulationRepository := mock_repository.NewMockSimulationRepository(ctrl)
		handler := NewSimulationService(simulationRepository)

		simulationRepository.EXPECT().GetResources(gomock.Any()).Return(nil, errors.New("Unable to load simulation resources"))

		_, err := handler.Run(ctx, 4, settings)
		require.EqualError(t, err, "failed to get simulation resources: Unable to load simulation resources")
	})
}

func TestAssetSyncService_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("reloads the catalog after a sync", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		refData := NewReferenceDataService(assetRepository, mock_repository.NewMockScenarioRepository(ctrl))
		handler := NewAssetSyncService(assetRepository, refData)

		gomock.InOrder(
			assetRepository.EXPECT().Sync(gomock.Any(), "QQQ").Return(&domain.SyncResult{Date: "2024-03-01"}, nil),
			assetRepository.EXPECT().List(gomock.Any()).Return([]domain.Asset{{ID: 8, Symbol: "QQQ"}}, nil),
		)

		result, err := handler.Sync(ctx, "QQQ")
		require.NoError(t, err)
		require.Equal(t, "2024-03-01", result.Date)
		require.Equal(t, []domain.Asset{{ID: 8, Symbol: "QQQ"}}, refData.Snapshot().Assets)
	})

	t.Run("sync failure skips the reload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		refData := NewReferenceDataService(assetRepository, mock_repository.NewMockScenarioRepository(ctrl))
		handler := NewAssetSyncService(assetRepository, refData)

		assetRepository.EXPECT().Sync(gomock.Any(), "ZZZZ").Return(nil, errors.New("Unable to sync stock data"))

		_, err := handler.Sync(ctx, "ZZZZ")
		require.EqualError(t, err, "Unable to sync stock data")
	})
}

func TestHeartbeatService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	heartbeatRepository := mock_repository.NewMockHeartbeatRepository(ctrl)
	handler := NewHeartbeatService(heartbeatRepository)

	heartbeatRepository.EXPECT().Get(gomock.Any()).Return(domain.Heartbeat{"postgres": true, "alphaVantage": false}, nil)

	result, err := handler.Check(context.Background())
	require.NoError(t, err)
	require.False(t, result.Healthy)
	require.Equal(t, []string{"alphaVantage"}, result.Unhealthy)
}
