package repository

import (
	"bytes"
	"testing"
	"time"

	"mcscenario/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCsvExportRepository(t *testing.T) {
	h := NewCsvExportRepository()
	assets := []domain.Asset{
		{ID: 1, Symbol: "SPY", LastRefreshed: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Symbol: "AGG"},
	}

	t.Run("assets", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, h.WriteAssets(buf, assets))
		require.Equal(t, "id,symbol,last_refreshed\n1,SPY,2024-03-01T00:00:00Z\n2,AGG,\n", buf.String())
	})

	t.Run("scenarios one row per component", func(t *testing.T) {
		buf := &bytes.Buffer{}
		scenarios := []domain.Scenario{
			{ID: 7, Name: "Growth", FloatedWeight: true, Components: []domain.ScenarioComponent{{AssetID: 3, Weight: 1}}},
			{ID: 4, Name: "Balanced", Components: []domain.ScenarioComponent{{AssetID: 1, Weight: 0.6}, {AssetID: 2, Weight: 0.4}}},
		}
		require.NoError(t, h.WriteScenarios(buf, scenarios, assets))
		require.Equal(
			t,
			"scenario_id,name,weighting,asset_id,symbol,weight,weight_percent,created_at\n"+
				"4,Balanced,Fixed,1,SPY,0.6000,60.00%,\n"+
				"4,Balanced,Fixed,2,AGG,0.4000,40.00%,\n"+
				"7,Growth,Floated,3,,1.0000,100.00%,\n",
			buf.String(),
		)
	})

	t.Run("simulation stats", func(t *testing.T) {
		buf := &bytes.Buffer{}
		stats := domain.SimulationStats{
			Mean: []float64{1, 1.02},
			P50:  []float64{1, 1.01},
		}
		require.NoError(t, h.WriteSimulationStats(buf, stats))
		require.Equal(t, "step,mean,std_dev,p5,p25,p50,p75,p95\n0,1,,,,1,,\n1,1.02,,,,1.01,,\n", buf.String())
	})
}
