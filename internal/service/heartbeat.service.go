package service

import (
	"context"

	"mcscenario/internal/domain"
	"mcscenario/internal/repository"
)

type HeartbeatResult struct {
	Services  domain.Heartbeat `json:"services"`
	Unhealthy []string         `json:"unhealthy"`
	Healthy   bool             `json:"healthy"`
}

type HeartbeatService interface {
	Check(ctx context.Context) (*HeartbeatResult, error)
}

type heartbeatServiceHandler struct {
	HeartbeatRepository repository.HeartbeatRepository
}

func NewHeartbeatService(heartbeatRepository repository.HeartbeatRepository) HeartbeatService {
	return heartbeatServiceHandler{HeartbeatRepository: heartbeatRepository}
}

func (h heartbeatServiceHandler) Check(ctx context.Context) (*HeartbeatResult, error) {
	hb, err := h.HeartbeatRepository.Get(ctx)
	if err != nil {
		return nil, err
	}
	unhealthy := hb.UnhealthyServices()
	return &HeartbeatResult{
		Services:  hb,
		Unhealthy: unhealthy,
		Healthy:   len(unhealthy) == 0,
	}, nil
}
