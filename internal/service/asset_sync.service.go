package service

import (
	"context"

	"mcscenario/internal/domain"
	"mcscenario/internal/logger"
	"mcscenario/internal/repository"
)

type AssetSyncService interface {
	Sync(ctx context.Context, symbol string) (*domain.SyncResult, error)
}

type assetSyncServiceHandler struct {
	AssetRepository      repository.AssetRepository
	ReferenceDataService ReferenceDataService
}

func NewAssetSyncService(assetRepository repository.AssetRepository, referenceDataService ReferenceDataService) AssetSyncService {
	return assetSyncServiceHandler{
		AssetRepository:      assetRepository,
		ReferenceDataService: referenceDataService,
	}
}

// Sync asks the server to pull market data for symbol, then reloads the
// catalog so a newly synced symbol can be picked right away
func (h assetSyncServiceHandler) Sync(ctx context.Context, symbol string) (*domain.SyncResult, error) {
	log := logger.FromContext(ctx)

	result, err := h.AssetRepository.Sync(ctx, symbol)
	if err != nil {
		return nil, err
	}
	log.Infof("synced %s through %s", symbol, result.Date)

	if _, err := h.ReferenceDataService.LoadAssets(ctx); err != nil {
		log.Warnf("synced %s but failed to reload assets: %v", symbol, err)
	}

	return result, nil
}
