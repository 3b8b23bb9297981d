package main

import (
	"context"
	"os"

	"mcscenario/cmd"
	"mcscenario/internal/logger"
)

func main() {
	logger.Info("starting mcscenario api %s", os.Getenv("commit_hash"))
	deps, err := cmd.InitializeDependencies()
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}

	deps.ScenarioBuilder.Mount(context.Background())

	err = deps.ApiHandler.StartApi(deps.Config.Server.Port)
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
