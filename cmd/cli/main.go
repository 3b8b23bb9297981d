package main

import (
	"context"
	"fmt"
	"os"

	"mcscenario/cmd"
	"mcscenario/internal/logger"
	"mcscenario/internal/util"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	apiBase  string
	envelope string
	syncPath string
	output   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "mcscenario",
		Short:         "Compose, save and simulate portfolio scenarios",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.apiBase, "api-base", "", "base url of the monte carlo service (overrides config)")
	root.PersistentFlags().StringVar(&opts.envelope, "envelope", "", "response envelope: bare or wrapped (overrides config)")
	root.PersistentFlags().StringVar(&opts.syncPath, "sync-path", "", "path of the sync endpoint (overrides config)")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", outputTable, "output format: table, json or csv")

	root.AddCommand(
		newAssetsCmd(opts),
		newScenariosCmd(opts),
		newSimulateCmd(opts),
		newHeartbeatCmd(opts),
		newServeCmd(opts),
	)
	return root
}

// dependencies loads config, applies flag overrides and wires everything
func (o *rootOptions) dependencies() (*cmd.Dependencies, error) {
	if err := validateOutput(o.output); err != nil {
		return nil, err
	}
	config, err := util.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.apiBase != "" {
		config.Api.BaseURL = o.apiBase
	}
	if o.envelope != "" {
		config.Api.Envelope = o.envelope
	}
	if o.syncPath != "" {
		config.Api.SyncPath = o.syncPath
	}
	return cmd.InitializeDependenciesWithConfig(config)
}

func commandContext(c *cobra.Command) context.Context {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logger.NewContext(ctx, logger.New())
}
