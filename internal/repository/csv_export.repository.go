package repository

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"mcscenario/internal/calculator"
	"mcscenario/internal/domain"

	"github.com/gocarina/gocsv"
)

// CsvExportRepository writes reference data and simulation output as csv
type CsvExportRepository interface {
	WriteAssets(w io.Writer, assets []domain.Asset) error
	WriteScenarios(w io.Writer, scenarios []domain.Scenario, assets []domain.Asset) error
	WriteSimulationStats(w io.Writer, stats domain.SimulationStats) error
}

type csvExportRepositoryHandler struct{}

func NewCsvExportRepository() CsvExportRepository {
	return csvExportRepositoryHandler{}
}

type assetCsvRow struct {
	ID            int32  `csv:"id"`
	Symbol        string `csv:"symbol"`
	LastRefreshed string `csv:"last_refreshed"`
}

// one row per component so a scenario with three legs takes three rows
type scenarioCsvRow struct {
	ScenarioID    int32  `csv:"scenario_id"`
	Name          string `csv:"name"`
	Weighting     string `csv:"weighting"`
	AssetID       int32  `csv:"asset_id"`
	Symbol        string `csv:"symbol"`
	Weight        string `csv:"weight"`
	WeightPercent string `csv:"weight_percent"`
	CreatedAt     string `csv:"created_at"`
}

type simulationStatsCsvRow struct {
	Step   int    `csv:"step"`
	Mean   string `csv:"mean"`
	StdDev string `csv:"std_dev"`
	P5     string `csv:"p5"`
	P25    string `csv:"p25"`
	P50    string `csv:"p50"`
	P75    string `csv:"p75"`
	P95    string `csv:"p95"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func (h csvExportRepositoryHandler) WriteAssets(w io.Writer, assets []domain.Asset) error {
	rows := []assetCsvRow{}
	for _, a := range assets {
		rows = append(rows, assetCsvRow{
			ID:            a.ID,
			Symbol:        a.Symbol,
			LastRefreshed: formatTime(a.LastRefreshed),
		})
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write assets csv: %w", err)
	}
	return nil
}

func (h csvExportRepositoryHandler) WriteScenarios(w io.Writer, scenarios []domain.Scenario, assets []domain.Asset) error {
	byID := domain.AssetsByID(assets)
	sorted := make([]domain.Scenario, len(scenarios))
	copy(sorted, scenarios)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	rows := []scenarioCsvRow{}
	for _, s := range sorted {
		for _, c := range s.Components {
			symbol := ""
			if a, ok := byID[c.AssetID]; ok {
				symbol = a.Symbol
			}
			rows = append(rows, scenarioCsvRow{
				ScenarioID:    s.ID,
				Name:          s.Name,
				Weighting:     s.WeightLabel(),
				AssetID:       c.AssetID,
				Symbol:        symbol,
				Weight:        calculator.FormatWeight(c.Weight),
				WeightPercent: calculator.FormatPercent(c.Weight),
				CreatedAt:     formatTime(s.CreatedAt),
			})
		}
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write scenarios csv: %w", err)
	}
	return nil
}

func valueAt(values []float64, i int) string {
	if i >= len(values) {
		return ""
	}
	return strconv.FormatFloat(values[i], 'f', -1, 64)
}

func (h csvExportRepositoryHandler) WriteSimulationStats(w io.Writer, stats domain.SimulationStats) error {
	rows := []simulationStatsCsvRow{}
	for i := 0; i < stats.Steps(); i++ {
		rows = append(rows, simulationStatsCsvRow{
			Step:   i,
			Mean:   valueAt(stats.Mean, i),
			StdDev: valueAt(stats.StdDev, i),
			P5:     valueAt(stats.P5, i),
			P25:    valueAt(stats.P25, i),
			P50:    valueAt(stats.P50, i),
			P75:    valueAt(stats.P75, i),
			P95:    valueAt(stats.P95, i),
		})
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write simulation stats csv: %w", err)
	}
	return nil
}
