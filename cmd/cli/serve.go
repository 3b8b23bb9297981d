package main

import (
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scenario builder as a local json api",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := opts.dependencies()
			if err != nil {
				return err
			}
			if port == 0 {
				port = deps.Config.Server.Port
			}

			deps.ScenarioBuilder.Mount(commandContext(c))
			return deps.ApiHandler.StartApi(port)
		},
	}
	serve.Flags().IntVar(&port, "port", 0, "port to listen on (defaults to server.port from config)")

	return serve
}
