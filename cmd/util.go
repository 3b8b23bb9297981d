package cmd

import (
	"fmt"

	"mcscenario/api"
	"mcscenario/internal/app"
	"mcscenario/internal/logger"
	"mcscenario/internal/repository"
	"mcscenario/internal/service"
	"mcscenario/internal/util"
	"mcscenario/pkg/mcservice"
)

type Dependencies struct {
	Config *util.Config
	Client mcservice.Client

	AssetRepository      repository.AssetRepository
	ScenarioRepository   repository.ScenarioRepository
	SimulationRepository repository.SimulationRepository
	HeartbeatRepository  repository.HeartbeatRepository
	CsvExportRepository  repository.CsvExportRepository

	ReferenceDataService      service.ReferenceDataService
	ScenarioSubmissionService service.ScenarioSubmissionService
	AssetSyncService          service.AssetSyncService
	SimulationService         service.SimulationService
	HeartbeatService          service.HeartbeatService

	ScenarioBuilder *app.ScenarioBuilderHandler
	ApiHandler      *api.ApiHandler
}

func InitializeDependencies() (*Dependencies, error) {
	config, err := util.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return InitializeDependenciesWithConfig(config)
}

func InitializeDependenciesWithConfig(config *util.Config) (*Dependencies, error) {
	clientConfig, err := config.ClientConfig()
	if err != nil {
		return nil, err
	}
	client := mcservice.NewClient(clientConfig)

	assetRepository := repository.NewAssetRepository(client)
	scenarioRepository := repository.NewScenarioRepository(client)
	simulationRepository := repository.NewSimulationRepository(client)
	heartbeatRepository := repository.NewHeartbeatRepository(client)

	referenceDataService := service.NewReferenceDataService(assetRepository, scenarioRepository)
	scenarioSubmissionService := service.NewScenarioSubmissionService(scenarioRepository, referenceDataService)
	assetSyncService := service.NewAssetSyncService(assetRepository, referenceDataService)
	simulationService := service.NewSimulationService(simulationRepository)
	heartbeatService := service.NewHeartbeatService(heartbeatRepository)

	scenarioBuilder := app.NewScenarioBuilderHandler(
		referenceDataService,
		scenarioSubmissionService,
		assetSyncService,
	)

	apiHandler := &api.ApiHandler{
		ScenarioBuilder:   scenarioBuilder,
		SimulationService: simulationService,
		HeartbeatService:  heartbeatService,
		AllowedOrigins:    config.Server.AllowedOrigins,
		Logger:            logger.New(),
	}

	return &Dependencies{
		Config:                    config,
		Client:                    client,
		AssetRepository:           assetRepository,
		ScenarioRepository:        scenarioRepository,
		SimulationRepository:      simulationRepository,
		HeartbeatRepository:       heartbeatRepository,
		CsvExportRepository:       repository.NewCsvExportRepository(),
		ReferenceDataService:      referenceDataService,
		ScenarioSubmissionService: scenarioSubmissionService,
		AssetSyncService:          assetSyncService,
		SimulationService:         simulationService,
		HeartbeatService:          heartbeatService,
		ScenarioBuilder:           scenarioBuilder,
		ApiHandler:                apiHandler,
	}, nil
}
