package main

import (
	"fmt"
	"strconv"
	"strings"

	"mcscenario/internal/calculator"
	"mcscenario/internal/domain"

	"github.com/spf13/cobra"
)

func parseScenarioID(s string) (int32, error) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid scenario id %q", s)
	}
	return int32(id), nil
}

func describeComponents(s domain.Scenario, assetsByID map[int32]domain.Asset) string {
	parts := []string{}
	for _, c := range s.Components {
		label := fmt.Sprintf("#%d", c.AssetID)
		if a, ok := assetsByID[c.AssetID]; ok {
			label = a.Symbol
		}
		parts = append(parts, fmt.Sprintf("%s %s", label, calculator.FormatPercent(c.Weight)))
	}
	return strings.Join(parts, ", ")
}

func newScenariosCmd(opts *rootOptions) *cobra.Command {
	scenarios := &cobra.Command{
		Use:   "scenarios",
		Short: "Create, list and delete scenarios",
	}

	scenarios.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved scenarios",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := opts.dependencies()
			if err != nil {
				return err
			}
			ctx := commandContext(c)

			deps.ReferenceDataService.LoadAll(ctx)
			refData := deps.ReferenceDataService.Snapshot()
			if refData.ScenariosError != "" {
				return fmt.Errorf("%s", refData.ScenariosError)
			}

			out := c.OutOrStdout()
			switch opts.output {
			case outputJson:
				return writeJson(out, refData.Scenarios)
			case outputCsv:
				return deps.CsvExportRepository.WriteScenarios(out, refData.Scenarios, refData.Assets)
			}

			assetsByID := domain.AssetsByID(refData.Assets)
			rows := [][]string{}
			for _, s := range refData.Scenarios {
				rows = append(rows, []string{
					strconv.Itoa(int(s.ID)),
					s.Name,
					s.WeightLabel(),
					describeComponents(s, assetsByID),
				})
			}
			return writeTable(out, []string{"ID", "NAME", "WEIGHTING", "COMPONENTS"}, rows)
		},
	})

	scenarios.AddCommand(&cobra.Command{
		Use:   "get ID",
		Short: "Show one scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := parseScenarioID(args[0])
			if err != nil {
				return err
			}
			deps, err := opts.dependencies()
			if err != nil {
				return err
			}

			scenario, err := deps.ScenarioRepository.Get(commandContext(c), id)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			switch opts.output {
			case outputJson:
				return writeJson(out, scenario)
			case outputCsv:
				return deps.CsvExportRepository.WriteScenarios(out, []domain.Scenario{*scenario}, nil)
			}
			rows := [][]string{}
			for _, comp := range scenario.Components {
				rows = append(rows, []string{
					strconv.Itoa(int(comp.AssetID)),
					calculator.FormatWeight(comp.Weight),
					calculator.FormatPercent(comp.Weight),
				})
			}
			fmt.Fprintf(out, "%s (%s)\n", scenario.Name, scenario.WeightLabel())
			return writeTable(out, []string{"ASSET ID", "WEIGHT", "PERCENT"}, rows)
		},
	})

	scenarios.AddCommand(newCreateScenarioCmd(opts))

	scenarios.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := parseScenarioID(args[0])
			if err != nil {
				return err
			}
			deps, err := opts.dependencies()
			if err != nil {
				return err
			}

			deleted, err := deps.ScenarioRepository.Delete(commandContext(c), id)
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("scenario %d was not deleted", id)
			}
			fmt.Fprintf(c.OutOrStdout(), "Deleted scenario %d\n", id)
			return nil
		},
	})

	return scenarios
}

func newCreateScenarioCmd(opts *rootOptions) *cobra.Command {
	var (
		name       string
		floated    bool
		components []string
	)

	create := &cobra.Command{
		Use:   "create",
		Short: "Create a scenario from SYMBOL=WEIGHT components",
		Example: `  mcscenario scenarios create --name Balanced --component SPY=0.6 --component AGG=0.4
  mcscenario scenarios create --name Growth --floated --component QQQ=1`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := opts.dependencies()
			if err != nil {
				return err
			}
			ctx := commandContext(c)
			builder := deps.ScenarioBuilder

			view := builder.Mount(ctx)
			if len(view.Errors) > 0 {
				return fmt.Errorf("%s", strings.Join(view.Errors, "; "))
			}

			rows, err := calculator.RowsFromPairs(components, view.Assets)
			if err != nil {
				return err
			}

			builder.SetName(name)
			builder.SetFloatedWeight(floated)
			for i, row := range rows {
				if i > 0 {
					builder.AddRow()
				}
				assetID, weight := row.AssetID, row.Weight
				builder.UpdateRow(i, domain.DraftRowPatch{AssetID: &assetID, Weight: &weight})
			}

			view, err = builder.Submit(ctx)
			if err != nil {
				if view.Submission.Error != "" {
					return fmt.Errorf("%s", view.Submission.Error)
				}
				return err
			}

			if opts.output == outputJson {
				return writeJson(c.OutOrStdout(), view.Submission.Scenario)
			}
			fmt.Fprintf(c.OutOrStdout(), "%s (id %d)\n", view.Success, view.Submission.Scenario.ID)
			return nil
		},
	}

	create.Flags().StringVar(&name, "name", "", "scenario name")
	create.Flags().BoolVar(&floated, "floated", false, "float the weights (rebalanced during simulation) instead of keeping them fixed")
	create.Flags().StringArrayVarP(&components, "component", "c", nil, "component as SYMBOL=WEIGHT, repeatable")

	return create
}
