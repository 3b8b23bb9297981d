package mcservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mcscenario/internal/domain"
	"mcscenario/internal/logger"

	"github.com/google/uuid"
)

const (
	DefaultBaseURL     = "http://localhost:8080"
	DefaultSyncPath    = "/api/assets/sync"
	LegacySyncPath     = "/api/syncStockData"
	RequestIDHeader    = "X-Request-ID"
	defaultHttpTimeout = 30 * time.Second
)

// Client talks to the monte carlo service. the zero value is not usable,
// build one with NewClient.
type Client struct {
	HttpClient *http.Client
	BaseURL    string
	SyncPath   string
	Decoder    Decoder
}

type Config struct {
	BaseURL  string
	SyncPath string
	Envelope Envelope
	Timeout  time.Duration
}

func NewClient(cfg Config) Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	syncPath := cfg.SyncPath
	if syncPath == "" {
		syncPath = DefaultSyncPath
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultHttpTimeout
	}

	return Client{
		HttpClient: &http.Client{Timeout: timeout},
		BaseURL:    strings.TrimRight(baseURL, "/"),
		SyncPath:   syncPath,
		Decoder:    Decoder{Envelope: cfg.Envelope},
	}
}

func (c Client) do(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	log := logger.FromContext(ctx)

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	url := c.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		log.Debugf("%s %s failed after %s: %v", method, path, time.Since(start), err)
		return nil, err
	}
	log.Debugf("%s %s %d (%s, request %s)", method, path, resp.StatusCode, time.Since(start), requestID)

	return resp, nil
}

func (c Client) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/assets", nil)
	return Decode[[]domain.Asset](c.Decoder, resp, err, "Unable to load assets")
}

func (c Client) SyncAsset(ctx context.Context, symbol string) (*domain.SyncResult, error) {
	resp, err := c.do(ctx, http.MethodPost, c.SyncPath, domain.SyncAssetRequest{Symbol: symbol})
	out, err := Decode[domain.SyncResult](c.Decoder, resp, err, "Unable to sync stock data")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c Client) ListScenarios(ctx context.Context) ([]domain.Scenario, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/scenarios", nil)
	return Decode[[]domain.Scenario](c.Decoder, resp, err, "Unable to load scenarios")
}

func (c Client) GetScenario(ctx context.Context, id int32) (*domain.Scenario, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/scenarios/%d", id), nil)
	out, err := Decode[domain.Scenario](c.Decoder, resp, err, "Unable to load scenario")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c Client) CreateScenario(ctx context.Context, req domain.NewScenarioRequest) (*domain.Scenario, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/scenarios", req)
	out, err := Decode[domain.Scenario](c.Decoder, resp, err, "Unable to create scenario.")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c Client) UpdateScenario(ctx context.Context, scenario domain.Scenario) (*domain.Scenario, error) {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/scenarios/%d", scenario.ID), scenario)
	out, err := Decode[domain.Scenario](c.Decoder, resp, err, "Unable to update scenario.")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteScenario reports whether the server deleted the scenario. the
// server answers 204 with no body, which counts as deleted
func (c Client) DeleteScenario(ctx context.Context, id int32) (bool, error) {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/scenarios/%d", id), nil)
	out, err := Decode[*bool](c.Decoder, resp, err, "Unable to delete scenario.")
	if err != nil {
		return false, err
	}
	if out == nil {
		return true, nil
	}
	return *out, nil
}

func (c Client) GetSimulationResources(ctx context.Context) (*domain.SimulationResources, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/simulation/resources", nil)
	out, err := Decode[domain.SimulationResources](c.Decoder, resp, err, "Unable to load simulation resources")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c Client) RunSimulation(ctx context.Context, scenarioID int32, settings domain.SimulationSettings) (*domain.SimulationResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/simulation/run/%d", scenarioID), settings)
	out, err := Decode[domain.SimulationResponse](c.Decoder, resp, err, "Unable to run simulation")
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c Client) GetHeartbeat(ctx context.Context) (domain.Heartbeat, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/heartbeat", nil)
	return Decode[domain.Heartbeat](c.Decoder, resp, err, "Unable to get heartbeat")
}
