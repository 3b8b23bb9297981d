package calculator

import (
	"testing"
	"time"

	"mcscenario/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestSummarizeSimulation(t *testing.T) {
	t.Run("final value spread", func(t *testing.T) {
		resp := domain.SimulationResponse{
			SamplePaths: []domain.SamplePath{
				{Percentile: 5, Values: []float64{1, 0.9, 0.8}},
				{Percentile: 50, Values: []float64{1, 1.0, 1.1}},
				{Percentile: 95, Values: []float64{1, 1.2, 1.4}},
				{Percentile: 99, Values: []float64{}},
			},
			SimulationStats: domain.SimulationStats{Mean: []float64{1, 1.03, 1.1}},
		}

		summary, err := SummarizeSimulation(resp)
		require.NoError(t, err)
		require.Equal(t, 3, summary.Steps)
		require.Equal(t, 3, summary.Paths)
		require.InDelta(t, 1.1, summary.FinalMean, 1e-9)
		require.InDelta(t, 0.3, summary.FinalStdev, 1e-9)
		require.Equal(t, 0.8, summary.FinalMin)
		require.Equal(t, 1.4, summary.FinalMax)
		require.Equal(t, 1.1, summary.FinalP50)
		require.InDelta(t, 1.0/3, summary.ProbabilityLoss, 1e-9)
	})

	t.Run("no paths", func(t *testing.T) {
		_, err := SummarizeSimulation(domain.SimulationResponse{})
		require.Error(t, err)
	})
}

func TestValidateSimulationSettings(t *testing.T) {
	resources := domain.SimulationResources{
		DistType:             map[string]int{"standardNormal": domain.DistTypeStandardNormal, "studentT": domain.DistTypeStudentT},
		SimulationUnitOfTime: map[string]int{"weekly": domain.UnitWeekly},
		SimulationDuration:   map[string]int{"weeks": domain.UnitWeekly, "years": domain.UnitYearly},
	}
	valid := domain.SimulationSettings{
		DistType:             domain.DistTypeStandardNormal,
		SimulationUnitOfTime: domain.UnitWeekly,
		SimulationDuration:   52,
		MaxLookback:          24 * time.Hour * 365,
		Iterations:           1000,
	}

	require.NoError(t, ValidateSimulationSettings(valid, resources))

	type testCase struct {
		name          string
		modify        func(s *domain.SimulationSettings)
		expectedError string
	}
	testCases := []testCase{
		{
			name:          "unknown unit",
			modify:        func(s *domain.SimulationSettings) { s.SimulationUnitOfTime = domain.UnitDaily },
			expectedError: "Unknown unit of time 252, expected one of weekly=52.",
		},
		{
			name:          "unknown distribution",
			modify:        func(s *domain.SimulationSettings) { s.DistType = 7 },
			expectedError: "Unknown distribution type 7, expected one of standardNormal=0, studentT=1.",
		},
		{
			name:          "zero duration",
			modify:        func(s *domain.SimulationSettings) { s.SimulationDuration = 0 },
			expectedError: "Simulation duration must be positive.",
		},
		{
			name:          "no iterations",
			modify:        func(s *domain.SimulationSettings) { s.Iterations = 0 },
			expectedError: "Iterations must be positive.",
		},
		{
			name:          "negative lookback",
			modify:        func(s *domain.SimulationSettings) { s.MaxLookback = -time.Hour },
			expectedError: "Max lookback cannot be negative.",
		},
		{
			name: "student t needs degrees of freedom",
			modify: func(s *domain.SimulationSettings) {
				s.DistType = domain.DistTypeStudentT
				s.DegreesOfFreedom = 2
			},
			expectedError: "Degrees of freedom must be greater than 2 for a Student-t distribution.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid
			tc.modify(&s)
			require.EqualError(t, ValidateSimulationSettings(s, resources), tc.expectedError)
		})
	}

	code, ok := CodeByName(resources.DistType, "StudentT")
	require.True(t, ok)
	require.Equal(t, domain.DistTypeStudentT, code)
	_, ok = CodeByName(resources.DistType, "cauchy")
	require.False(t, ok)
}
