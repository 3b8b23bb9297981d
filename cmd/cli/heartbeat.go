package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

func newHeartbeatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "heartbeat",
		Short: "Check the health of the service's dependencies",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := opts.dependencies()
			if err != nil {
				return err
			}

			result, err := deps.HeartbeatService.Check(commandContext(c))
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if opts.output == outputJson {
				if err := writeJson(out, result); err != nil {
					return err
				}
			} else {
				names := []string{}
				for name := range result.Services {
					names = append(names, name)
				}
				sort.Strings(names)
				rows := [][]string{}
				for _, name := range names {
					rows = append(rows, []string{name, strconv.FormatBool(result.Services[name])})
				}
				if err := writeTable(out, []string{"SERVICE", "HEALTHY"}, rows); err != nil {
					return err
				}
			}

			if !result.Healthy {
				return fmt.Errorf("unhealthy services: %v", result.Unhealthy)
			}
			return nil
		},
	}
}
