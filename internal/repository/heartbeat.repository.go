package repository

import (
	"context"

	"mcscenario/internal/domain"
	"mcscenario/pkg/mcservice"
)

type HeartbeatRepository interface {
	Get(ctx context.Context) (domain.Heartbeat, error)
}

type heartbeatRepositoryHandler struct {
	Client mcservice.Client
}

func NewHeartbeatRepository(client mcservice.Client) HeartbeatRepository {
	return heartbeatRepositoryHandler{Client: client}
}

func (h heartbeatRepositoryHandler) Get(ctx context.Context) (domain.Heartbeat, error) {
	hb, err := h.Client.GetHeartbeat(ctx)
	if err != nil {
		return nil, err
	}
	if hb == nil {
		hb = domain.Heartbeat{}
	}
	return hb, nil
}
