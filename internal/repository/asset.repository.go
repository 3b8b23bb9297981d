package repository

import (
	"context"
	"fmt"
	"strings"

	"mcscenario/internal/domain"
	"mcscenario/pkg/mcservice"
)

type AssetRepository interface {
	List(ctx context.Context) ([]domain.Asset, error)
	Sync(ctx context.Context, symbol string) (*domain.SyncResult, error)
}

type assetRepositoryHandler struct {
	Client mcservice.Client
}

func NewAssetRepository(client mcservice.Client) AssetRepository {
	return assetRepositoryHandler{Client: client}
}

func (h assetRepositoryHandler) List(ctx context.Context) ([]domain.Asset, error) {
	assets, err := h.Client.ListAssets(ctx)
	if err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []domain.Asset{}
	}
	return assets, nil
}

func (h assetRepositoryHandler) Sync(ctx context.Context, symbol string) (*domain.SyncResult, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	return h.Client.SyncAsset(ctx, symbol)
}
