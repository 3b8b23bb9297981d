package mcservice

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mcscenario/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method    string
	Path      string
	Body      string
	RequestID string
}

func newTestServer(t *testing.T, status int, response string, recorded *recordedRequest) Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*recorded = recordedRequest{
			Method:    r.Method,
			Path:      r.URL.Path,
			Body:      string(body),
			RequestID: r.Header.Get(RequestIDHeader),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)

	return NewClient(Config{BaseURL: server.URL + "/"})
}

func TestClient_CreateScenario(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the request and returns the saved scenario", func(t *testing.T) {
		recorded := recordedRequest{}
		c := newTestServer(t, http.StatusCreated, `{"id":9,"name":"Balanced","floatedWeight":false,"components":[{"assetId":1,"weight":0.6},{"assetId":2,"weight":0.4}]}`, &recorded)

		req := domain.NewScenarioRequest{
			Name: "Balanced",
			Components: []domain.ScenarioComponent{
				{AssetID: 1, Weight: 0.6},
				{AssetID: 2, Weight: 0.4},
			},
		}
		out, err := c.CreateScenario(ctx, req)
		require.NoError(t, err)
		require.Equal(t, int32(9), out.ID)
		require.Equal(t, "", cmp.Diff(req.Components, out.Components))

		require.Equal(t, http.MethodPost, recorded.Method)
		require.Equal(t, "/api/scenarios", recorded.Path)
		require.NotEmpty(t, recorded.RequestID)

		sent := domain.NewScenarioRequest{}
		require.NoError(t, json.Unmarshal([]byte(recorded.Body), &sent))
		require.Equal(t, "", cmp.Diff(req, sent))
	})

	t.Run("surfaces the server message", func(t *testing.T) {
		recorded := recordedRequest{}
		c := newTestServer(t, http.StatusBadRequest, `{"error":"Scenario weights must sum to 1"}`, &recorded)

		out, err := c.CreateScenario(ctx, domain.NewScenarioRequest{Name: "x"})
		require.Nil(t, out)
		require.EqualError(t, err, "Scenario weights must sum to 1")
	})

	t.Run("uses the default message", func(t *testing.T) {
		recorded := recordedRequest{}
		c := newTestServer(t, http.StatusInternalServerError, ``, &recorded)

		_, err := c.CreateScenario(ctx, domain.NewScenarioRequest{Name: "x"})
		require.EqualError(t, err, "Unable to create scenario.")
	})
}

func TestClient_DeleteScenario(t *testing.T) {
	ctx := context.Background()

	t.Run("no content counts as deleted", func(t *testing.T) {
		recorded := recordedRequest{}
		c := newTestServer(t, http.StatusNoContent, ``, &recorded)

		deleted, err := c.DeleteScenario(ctx, 4)
		require.NoError(t, err)
		require.True(t, deleted)
		require.Equal(t, http.MethodDelete, recorded.Method)
		require.Equal(t, "/api/scenarios/4", recorded.Path)
	})

	t.Run("explicit false", func(t *testing.T) {
		recorded := recordedRequest{}
		c := newTestServer(t, http.StatusOK, `false`, &recorded)

		deleted, err := c.DeleteScenario(ctx, 4)
		require.NoError(t, err)
		require.False(t, deleted)
	})
}

func TestClient_SyncAsset(t *testing.T) {
	ctx := context.Background()
	recorded := recordedRequest{}
	c := newTestServer(t, http.StatusOK, `{"date":"2024-03-01"}`, &recorded)
	c.SyncPath = LegacySyncPath

	out, err := c.SyncAsset(ctx, "SPY")
	require.NoError(t, err)
	require.Equal(t, "2024-03-01", out.Date)
	require.Equal(t, "/api/syncStockData", recorded.Path)
	require.JSONEq(t, `{"symbol":"SPY"}`, recorded.Body)
}

func TestClient_RunSimulation(t *testing.T) {
	ctx := context.Background()
	recorded := recordedRequest{}
	c := newTestServer(t, http.StatusOK, `{
		"riskMetrics": {"var95": -0.12, "probabilityOfLoss": 0.2},
		"samplePaths": [{"percentile": 50, "values": [1, 1.05], "label": "median"}],
		"simulationStats": {"mean": [1, 1.04]}
	}`, &recorded)

	out, err := c.RunSimulation(ctx, 3, domain.SimulationSettings{
		DistType:             domain.DistTypeStudentT,
		SimulationUnitOfTime: domain.UnitMonthly,
		SimulationDuration:   10,
		Iterations:           1000,
		Seed:                 42,
		DegreesOfFreedom:     5,
	})
	require.NoError(t, err)
	require.Equal(t, "/api/simulation/run/3", recorded.Path)
	require.Equal(t, -0.12, out.RiskMetrics.VaR95)
	require.Equal(t, 2, out.SimulationStats.Steps())
	final, ok := out.SamplePaths[0].FinalValue()
	require.True(t, ok)
	require.Equal(t, 1.05, final)
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := NewClient(Config{BaseURL: server.URL})
	server.Close()

	_, err := c.ListAssets(context.Background())
	transportErr := &TransportError{}
	require.ErrorAs(t, err, &transportErr)
	require.Equal(t, "Unable to load assets", transportErr.Op)
}

func TestClient_WrappedEnvelope(t *testing.T) {
	recorded := recordedRequest{}
	c := newTestServer(t, http.StatusOK, `{"data":{"postgres":true,"alphaVantage":false},"error":null}`, &recorded)
	c.Decoder = Decoder{Envelope: EnvelopeWrapped}

	hb, err := c.GetHeartbeat(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"alphaVantage"}, hb.UnhealthyServices())
}
