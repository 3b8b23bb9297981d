package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"mcscenario/internal/calculator"
	"mcscenario/internal/domain"

	"github.com/spf13/cobra"
)

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var (
		distType    string
		unit        string
		duration    int
		iterations  int
		seed        int64
		dof         int
		maxLookback time.Duration
		statsCsv    string
	)

	simulate := &cobra.Command{
		Use:   "simulate SCENARIO_ID",
		Short: "Run a monte carlo simulation for a saved scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			scenarioID, err := parseScenarioID(args[0])
			if err != nil {
				return err
			}
			deps, err := opts.dependencies()
			if err != nil {
				return err
			}
			ctx := commandContext(c)

			resources, err := deps.SimulationService.Resources(ctx)
			if err != nil {
				return err
			}
			distCode, ok := calculator.CodeByName(resources.DistType, distType)
			if !ok {
				return fmt.Errorf("unknown distribution %q", distType)
			}
			unitCode, ok := calculator.CodeByName(resources.SimulationUnitOfTime, unit)
			if !ok {
				return fmt.Errorf("unknown unit of time %q", unit)
			}

			result, err := deps.SimulationService.Run(ctx, scenarioID, domain.SimulationSettings{
				DistType:             distCode,
				SimulationUnitOfTime: unitCode,
				SimulationDuration:   duration,
				MaxLookback:          maxLookback,
				Iterations:           iterations,
				Seed:                 seed,
				DegreesOfFreedom:     dof,
			})
			if err != nil {
				return err
			}

			if statsCsv != "" {
				f, err := os.Create(statsCsv)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", statsCsv, err)
				}
				defer f.Close()
				if err := deps.CsvExportRepository.WriteSimulationStats(f, result.Response.SimulationStats); err != nil {
					return err
				}
			}

			out := c.OutOrStdout()
			switch opts.output {
			case outputJson:
				return writeJson(out, result)
			case outputCsv:
				return deps.CsvExportRepository.WriteSimulationStats(out, result.Response.SimulationStats)
			}

			m := result.Response.RiskMetrics
			rows := [][]string{
				{"VaR 95", calculator.FormatPercent(m.VaR95)},
				{"VaR 99", calculator.FormatPercent(m.VaR99)},
				{"CVaR 95", calculator.FormatPercent(m.CVaR95)},
				{"CVaR 99", calculator.FormatPercent(m.CVaR99)},
				{"Probability of loss", calculator.FormatPercent(m.ProbabilityOfLoss)},
				{"Max drawdown (p95)", calculator.FormatPercent(m.MaxDrawdownP95)},
				{"Mean final value", calculator.FormatWeight(m.MeanFinalValue)},
				{"Median final value", calculator.FormatWeight(m.MedianFinalValue)},
			}
			if s := result.Summary; s != nil {
				rows = append(rows,
					[]string{"Sample paths", strconv.Itoa(s.Paths)},
					[]string{"Steps", strconv.Itoa(s.Steps)},
					[]string{"Sample final p5 / p50 / p95", fmt.Sprintf("%s / %s / %s", calculator.FormatWeight(s.FinalP5), calculator.FormatWeight(s.FinalP50), calculator.FormatWeight(s.FinalP95))},
					[]string{"Sample final stdev", calculator.FormatWeight(s.FinalStdev)},
				)
			}
			return writeTable(out, []string{"METRIC", "VALUE"}, rows)
		},
	}

	simulate.Flags().StringVar(&distType, "dist", "standardNormal", "distribution name from the simulation resources")
	simulate.Flags().StringVar(&unit, "unit", "weekly", "unit of time name from the simulation resources")
	simulate.Flags().IntVar(&duration, "duration", 52, "number of units of time to simulate")
	simulate.Flags().IntVar(&iterations, "iterations", 10000, "number of simulated paths")
	simulate.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 lets the server pick")
	simulate.Flags().IntVar(&dof, "dof", 5, "degrees of freedom for a student t distribution")
	simulate.Flags().DurationVar(&maxLookback, "lookback", 0, "how much price history to fit against, 0 for all of it")
	simulate.Flags().StringVar(&statsCsv, "stats-csv", "", "also write per-step simulation stats to this csv file")

	return simulate
}
