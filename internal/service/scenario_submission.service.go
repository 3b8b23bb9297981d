package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"mcscenario/internal/calculator"
	"mcscenario/internal/domain"
	"mcscenario/internal/logger"
	"mcscenario/internal/repository"
)

var ErrSubmissionInProgress = errors.New("a scenario is already being submitted")

const MsgScenarioCreated = "Scenario created successfully."

type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionValidating SubmissionState = "validating"
	SubmissionSubmitting SubmissionState = "submitting"
	SubmissionSuccess    SubmissionState = "success"
	SubmissionFailed     SubmissionState = "failed"
)

type SubmissionStatus struct {
	State    SubmissionState  `json:"state"`
	Error    string           `json:"error,omitempty"`
	Success  string           `json:"success,omitempty"`
	Scenario *domain.Scenario `json:"scenario,omitempty"`
}

// DraftStore is whatever owns the draft being submitted. the submission
// only reads it and resets it after a successful create
type DraftStore interface {
	CurrentDraft() domain.Draft
	ResetDraft()
}

type ScenarioSubmissionService interface {
	Submit(ctx context.Context, store DraftStore) (SubmissionStatus, error)
	Acknowledge() SubmissionStatus
	Status() SubmissionStatus
}

type scenarioSubmissionServiceHandler struct {
	ScenarioRepository   repository.ScenarioRepository
	ReferenceDataService ReferenceDataService

	mu     sync.Mutex
	status SubmissionStatus
}

func NewScenarioSubmissionService(scenarioRepository repository.ScenarioRepository, referenceDataService ReferenceDataService) ScenarioSubmissionService {
	return &scenarioSubmissionServiceHandler{
		ScenarioRepository:   scenarioRepository,
		ReferenceDataService: referenceDataService,
		status:               SubmissionStatus{State: SubmissionIdle},
	}
}

func (h *scenarioSubmissionServiceHandler) Status() SubmissionStatus {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.status
}

// Acknowledge moves a finished submission back to idle and clears its
// messages
func (h *scenarioSubmissionServiceHandler) Acknowledge() SubmissionStatus {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.status.State != SubmissionSubmitting && h.status.State != SubmissionValidating {
		h.status = SubmissionStatus{State: SubmissionIdle}
	}
	return h.status
}

func (h *scenarioSubmissionServiceHandler) setStatus(status SubmissionStatus) SubmissionStatus {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = status
	return status
}

// Submit validates the current draft and creates it on the server. a
// validation failure leaves the draft alone and goes back to idle with
// the message kept. only a successful create resets the draft
func (h *scenarioSubmissionServiceHandler) Submit(ctx context.Context, store DraftStore) (SubmissionStatus, error) {
	log := logger.FromContext(ctx)
	profile := domain.ProfileFromContext(ctx)

	h.mu.Lock()
	if h.status.State == SubmissionSubmitting || h.status.State == SubmissionValidating {
		status := h.status
		h.mu.Unlock()
		return status, ErrSubmissionInProgress
	}
	h.status = SubmissionStatus{State: SubmissionValidating}
	h.mu.Unlock()

	profile.StartNewSpan("validate draft")
	draft := store.CurrentDraft()
	req, err := calculator.ValidateDraft(draft)
	if err == nil {
		refData := h.ReferenceDataService.Snapshot()
		if refData.AssetsLoaded {
			err = calculator.ValidateAgainstCatalog(req.Components, refData.Assets)
		}
	}
	if err != nil {
		log.Debugf("draft rejected: %s", err.Error())
		return h.setStatus(SubmissionStatus{
			State: SubmissionIdle,
			Error: err.Error(),
		}), err
	}

	h.setStatus(SubmissionStatus{State: SubmissionSubmitting})

	profile.StartNewSpan("create scenario")
	created, err := h.ScenarioRepository.Add(ctx, *req)
	if err != nil {
		log.Warnf("failed to create scenario %s: %v", req.Name, err)
		return h.setStatus(SubmissionStatus{
			State: SubmissionFailed,
			Error: fmt.Sprintf("Error creating scenario: %s", err.Error()),
		}), fmt.Errorf("failed to create scenario: %w", err)
	}

	// a failed refresh shows up in the scenario list's error slot, the
	// scenario itself was saved
	profile.StartNewSpan("refresh scenarios")
	if _, err := h.ReferenceDataService.LoadScenarios(ctx); err != nil {
		log.Warnf("created scenario %d but failed to refresh list: %v", created.ID, err)
	}

	store.ResetDraft()
	log.Infof("created scenario %d (%s) with %d components", created.ID, created.Name, len(req.Components))

	return h.setStatus(SubmissionStatus{
		State:    SubmissionSuccess,
		Success:  MsgScenarioCreated,
		Scenario: created,
	}), nil
}
