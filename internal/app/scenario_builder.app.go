package app

import (
	"context"
	"math"
	"sync"

	"mcscenario/internal/calculator"
	"mcscenario/internal/domain"
	"mcscenario/internal/service"
)

// ScenarioBuilderHandler is the scenario screen without the rendering. it
// owns exactly one draft, which nothing else writes to
type ScenarioBuilderHandler struct {
	ReferenceDataService      service.ReferenceDataService
	ScenarioSubmissionService service.ScenarioSubmissionService
	AssetSyncService          service.AssetSyncService

	mu    sync.Mutex
	draft *domain.Draft
}

func NewScenarioBuilderHandler(
	referenceDataService service.ReferenceDataService,
	scenarioSubmissionService service.ScenarioSubmissionService,
	assetSyncService service.AssetSyncService,
) *ScenarioBuilderHandler {
	return &ScenarioBuilderHandler{
		ReferenceDataService:      referenceDataService,
		ScenarioSubmissionService: scenarioSubmissionService,
		AssetSyncService:          assetSyncService,
		draft:                     domain.NewDraft(),
	}
}

// NormalizedComponentView is a normalized component as shown next to the
// draft. Weight is nil when the typed text isn't a finite number
type NormalizedComponentView struct {
	AssetID int32    `json:"assetId"`
	Symbol  string   `json:"symbol,omitempty"`
	Weight  *float64 `json:"weight"`
	Percent string   `json:"percent,omitempty"`
}

type ScenarioBuilderView struct {
	Draft                 domain.Draft              `json:"draft"`
	NormalizedComponents  []NormalizedComponentView `json:"normalizedComponents"`
	TotalWeight           float64                   `json:"totalWeight"`
	TotalWeightLabel      string                    `json:"totalWeightLabel"`
	UnassignedWeight      float64                   `json:"unassignedWeight"`
	UnassignedWeightLabel string                    `json:"unassignedWeightLabel,omitempty"`
	CanRemoveRow          bool                      `json:"canRemoveRow"`

	Assets           []domain.Asset    `json:"assets"`
	Scenarios        []domain.Scenario `json:"scenarios"`
	LoadingAssets    bool              `json:"loadingAssets"`
	LoadingScenarios bool              `json:"loadingScenarios"`

	Submission service.SubmissionStatus `json:"submission"`
	Saving     bool                     `json:"saving"`
	CanSubmit  bool                     `json:"canSubmit"`
	// Errors holds every non-empty error slot, submission first
	Errors  []string `json:"errors"`
	Success string   `json:"success,omitempty"`
}

// Mount starts a fresh draft and loads the reference data the screen
// needs
func (h *ScenarioBuilderHandler) Mount(ctx context.Context) ScenarioBuilderView {
	h.mu.Lock()
	h.draft.Reset()
	h.mu.Unlock()

	h.ReferenceDataService.LoadAll(ctx)
	return h.View()
}

func (h *ScenarioBuilderHandler) AddRow() ScenarioBuilderView {
	h.mu.Lock()
	h.draft.AddRow()
	h.mu.Unlock()
	return h.View()
}

func (h *ScenarioBuilderHandler) UpdateRow(index int, patch domain.DraftRowPatch) (ScenarioBuilderView, bool) {
	h.mu.Lock()
	ok := h.draft.UpdateRow(index, patch)
	h.mu.Unlock()
	return h.View(), ok
}

func (h *ScenarioBuilderHandler) RemoveRow(index int) (ScenarioBuilderView, bool) {
	h.mu.Lock()
	ok := h.draft.RemoveRow(index)
	h.mu.Unlock()
	return h.View(), ok
}

func (h *ScenarioBuilderHandler) SetName(name string) ScenarioBuilderView {
	h.mu.Lock()
	h.draft.SetName(name)
	h.mu.Unlock()
	return h.View()
}

func (h *ScenarioBuilderHandler) SetFloatedWeight(floated bool) ScenarioBuilderView {
	h.mu.Lock()
	h.draft.SetFloatedWeight(floated)
	h.mu.Unlock()
	return h.View()
}

func (h *ScenarioBuilderHandler) CurrentDraft() domain.Draft {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.draft.Copy()
}

func (h *ScenarioBuilderHandler) ResetDraft() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.draft.Reset()
}

func (h *ScenarioBuilderHandler) Submit(ctx context.Context) (ScenarioBuilderView, error) {
	_, err := h.ScenarioSubmissionService.Submit(ctx, h)
	return h.View(), err
}

func (h *ScenarioBuilderHandler) Acknowledge() ScenarioBuilderView {
	h.ScenarioSubmissionService.Acknowledge()
	return h.View()
}

func (h *ScenarioBuilderHandler) RefreshAssets(ctx context.Context) (ScenarioBuilderView, error) {
	_, err := h.ReferenceDataService.LoadAssets(ctx)
	return h.View(), err
}

func (h *ScenarioBuilderHandler) RefreshScenarios(ctx context.Context) (ScenarioBuilderView, error) {
	_, err := h.ReferenceDataService.LoadScenarios(ctx)
	return h.View(), err
}

func (h *ScenarioBuilderHandler) SyncAsset(ctx context.Context, symbol string) (*domain.SyncResult, error) {
	return h.AssetSyncService.Sync(ctx, symbol)
}

// View computes everything derived from the current draft. it reads one
// snapshot of the rows so the total and the normalized list always agree
func (h *ScenarioBuilderHandler) View() ScenarioBuilderView {
	draft := h.CurrentDraft()
	refData := h.ReferenceDataService.Snapshot()
	submission := h.ScenarioSubmissionService.Status()

	normalized := calculator.NormalizeComponents(draft.Rows)
	assetsByID := domain.AssetsByID(refData.Assets)
	components := []NormalizedComponentView{}
	for _, c := range normalized {
		view := NormalizedComponentView{AssetID: c.AssetID}
		if a, ok := assetsByID[c.AssetID]; ok {
			view.Symbol = a.Symbol
		}
		weight := c.Weight
		if !math.IsNaN(weight) && !math.IsInf(weight, 0) {
			view.Weight = &weight
			view.Percent = calculator.FormatPercent(weight)
		}
		components = append(components, view)
	}

	total := calculator.TotalWeight(normalized)
	unassigned := calculator.UnassignedWeight(draft.Rows)
	unassignedLabel := ""
	if unassigned != 0 {
		unassignedLabel = calculator.FormatWeight(unassigned)
	}

	errors := []string{}
	for _, msg := range []string{submission.Error, refData.AssetsError, refData.ScenariosError} {
		if msg != "" {
			errors = append(errors, msg)
		}
	}

	saving := submission.State == service.SubmissionSubmitting || submission.State == service.SubmissionValidating

	return ScenarioBuilderView{
		Draft:                 draft,
		NormalizedComponents:  components,
		TotalWeight:           total,
		TotalWeightLabel:      calculator.FormatWeight(total),
		UnassignedWeight:      unassigned,
		UnassignedWeightLabel: unassignedLabel,
		CanRemoveRow:          len(draft.Rows) > 1,
		Assets:                refData.Assets,
		Scenarios:             refData.Scenarios,
		LoadingAssets:         refData.LoadingAssets,
		LoadingScenarios:      refData.LoadingScenarios,
		Submission:            submission,
		Saving:                saving,
		CanSubmit:             !saving && !refData.LoadingAssets,
		Errors:                errors,
		Success:               submission.Success,
	}
}
