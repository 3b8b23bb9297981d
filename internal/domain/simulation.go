package domain

import "time"

// distribution types understood by the simulation engine
const (
	DistTypeStandardNormal = iota
	DistTypeStudentT
)

// units of time, expressed as periods per year
const (
	UnitDaily     = 252
	UnitWeekly    = 52
	UnitMonthly   = 12
	UnitQuarterly = 4
	UnitYearly    = 1
)

// SimulationResources lists the named codes the server accepts for each
// enumerated simulation setting
type SimulationResources struct {
	DistType             map[string]int `json:"disttype"`
	SimulationUnitOfTime map[string]int `json:"simulationunitoftime"`
	SimulationDuration   map[string]int `json:"simulationduration"`
}

type SimulationSettings struct {
	DistType             int           `json:"distType"`
	SimulationUnitOfTime int           `json:"simulationUnitOfTime"`
	SimulationDuration   int           `json:"simulationDuration"`
	MaxLookback          time.Duration `json:"maxLookback"`
	Iterations           int           `json:"iterations"`
	Seed                 int64         `json:"seed"`
	DegreesOfFreedom     int           `json:"degreesOfFreedom"`
}

type SimulationResponse struct {
	RiskMetrics     RiskMetrics     `json:"riskMetrics"`
	SamplePaths     []SamplePath    `json:"samplePaths"`
	SimulationStats SimulationStats `json:"simulationStats"`
}

type RiskMetrics struct {
	VaR95             float64 `json:"var95"`
	VaR99             float64 `json:"var99"`
	CVaR95            float64 `json:"cvar95"`
	CVaR99            float64 `json:"cvar99"`
	ProbabilityOfLoss float64 `json:"probabilityOfLoss"`
	MaxDrawdownP95    float64 `json:"maxDrawdownP95"`
	MeanFinalValue    float64 `json:"meanFinalValue"`
	MedianFinalValue  float64 `json:"medianFinalValue"`
}

type SamplePath struct {
	Percentile float64   `json:"percentile"`
	Values     []float64 `json:"values"`
	Label      string    `json:"label"`
}

func (p SamplePath) FinalValue() (float64, bool) {
	if len(p.Values) == 0 {
		return 0, false
	}
	return p.Values[len(p.Values)-1], true
}

// SimulationStats holds one value per simulated step for each band
type SimulationStats struct {
	Mean   []float64 `json:"mean"`
	StdDev []float64 `json:"stdDev"`
	P5     []float64 `json:"p5"`
	P25    []float64 `json:"p25"`
	P50    []float64 `json:"p50"`
	P75    []float64 `json:"p75"`
	P95    []float64 `json:"p95"`
}

func (s SimulationStats) Steps() int {
	return len(s.Mean)
}
