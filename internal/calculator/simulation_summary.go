package calculator

import (
	"fmt"
	"sort"
	"strings"

	"mcscenario/internal/domain"

	"github.com/montanaflynn/stats"
)

type SimulationSummary struct {
	Steps           int
	Paths           int
	FinalMean       float64
	FinalStdev      float64
	FinalMin        float64
	FinalMax        float64
	FinalP5         float64
	FinalP50        float64
	FinalP95        float64
	ProbabilityLoss float64
}

// SummarizeSimulation describes the spread of the sample paths' final
// values. paths with no values are skipped
func SummarizeSimulation(resp domain.SimulationResponse) (*SimulationSummary, error) {
	finals := []float64{}
	for _, p := range resp.SamplePaths {
		if v, ok := p.FinalValue(); ok {
			finals = append(finals, v)
		}
	}
	if len(finals) == 0 {
		return nil, fmt.Errorf("simulation returned no sample paths")
	}

	data := stats.Float64Data(finals)
	mean, err := data.Mean()
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean: %w", err)
	}
	stdev := 0.0
	if len(finals) > 1 {
		stdev, err = stats.StandardDeviationSample(data)
		if err != nil {
			return nil, fmt.Errorf("failed to compute stdev: %w", err)
		}
	}
	min, err := data.Min()
	if err != nil {
		return nil, err
	}
	max, err := data.Max()
	if err != nil {
		return nil, err
	}
	p5, err := stats.PercentileNearestRank(data, 5)
	if err != nil {
		return nil, fmt.Errorf("failed to compute p5: %w", err)
	}
	p50, err := data.Median()
	if err != nil {
		return nil, fmt.Errorf("failed to compute median: %w", err)
	}
	p95, err := stats.PercentileNearestRank(data, 95)
	if err != nil {
		return nil, fmt.Errorf("failed to compute p95: %w", err)
	}

	losses := 0
	for _, p := range resp.SamplePaths {
		if len(p.Values) == 0 {
			continue
		}
		if p.Values[len(p.Values)-1] < p.Values[0] {
			losses++
		}
	}

	return &SimulationSummary{
		Steps:           resp.SimulationStats.Steps(),
		Paths:           len(finals),
		FinalMean:       mean,
		FinalStdev:      stdev,
		FinalMin:        min,
		FinalMax:        max,
		FinalP5:         p5,
		FinalP50:        p50,
		FinalP95:        p95,
		ProbabilityLoss: float64(losses) / float64(len(finals)),
	}, nil
}

// ValidateSimulationSettings checks settings against the codes the server
// advertised before spending a request on them
func ValidateSimulationSettings(settings domain.SimulationSettings, resources domain.SimulationResources) error {
	if !containsCode(resources.DistType, settings.DistType) {
		return ValidationError{Message: fmt.Sprintf("Unknown distribution type %d, expected one of %s.", settings.DistType, describeCodes(resources.DistType))}
	}
	if !containsCode(resources.SimulationUnitOfTime, settings.SimulationUnitOfTime) {
		return ValidationError{Message: fmt.Sprintf("Unknown unit of time %d, expected one of %s.", settings.SimulationUnitOfTime, describeCodes(resources.SimulationUnitOfTime))}
	}
	if settings.SimulationDuration <= 0 {
		return ValidationError{Message: "Simulation duration must be positive."}
	}
	if settings.Iterations <= 0 {
		return ValidationError{Message: "Iterations must be positive."}
	}
	if settings.MaxLookback < 0 {
		return ValidationError{Message: "Max lookback cannot be negative."}
	}
	if settings.DistType == domain.DistTypeStudentT && settings.DegreesOfFreedom <= 2 {
		return ValidationError{Message: "Degrees of freedom must be greater than 2 for a Student-t distribution."}
	}
	return nil
}

// CodeByName looks a setting up by the name the server gave it, so
// callers can say "monthly" instead of 12
func CodeByName(codes map[string]int, name string) (int, bool) {
	for k, v := range codes {
		if strings.EqualFold(k, strings.TrimSpace(name)) {
			return v, true
		}
	}
	return 0, false
}

func containsCode(codes map[string]int, code int) bool {
	for _, v := range codes {
		if v == code {
			return true
		}
	}
	return false
}

func describeCodes(codes map[string]int) string {
	names := []string{}
	for k, v := range codes {
		names = append(names, fmt.Sprintf("%s=%d", k, v))
	}
	sort.Strings(names)
	if len(names) == 0 {
		return "nothing (no resources loaded)"
	}
	return strings.Join(names, ", ")
}
