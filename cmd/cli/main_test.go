package main

import (
	"bytes"
	"path/filepath"
	"testing"

	integration_tests "mcscenario/integration-tests"
	"mcscenario/pkg/mcservice"

	"github.com/stretchr/testify/require"
)

func runCli(t *testing.T, backend *integration_tests.FakeBackend, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MC_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("MC_API_BASE", "")
	t.Setenv("MC_ENVELOPE", "")

	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append([]string{"--api-base", backend.URL(), "--envelope", backend.Envelope.String()}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestScenariosCreate(t *testing.T) {
	t.Run("creates scenario", func(t *testing.T) {
		backend := integration_tests.NewFakeBackend(mcservice.EnvelopeWrapped, "SPY", "AGG")
		defer backend.Close()

		out, err := runCli(t, backend, "scenarios", "create", "--name", "Balanced", "-c", "spy=0.6", "-c", "AGG=0.4")
		require.NoError(t, err)
		require.Equal(t, "Scenario created successfully. (id 1)\n", out)
		require.Equal(t, 1, backend.ScenarioCount())

		out, err = runCli(t, backend, "scenarios", "list", "-o", "csv")
		require.NoError(t, err)
		require.Contains(t, out, "Balanced")
	})

	t.Run("rejects weights that do not sum to one", func(t *testing.T) {
		backend := integration_tests.NewFakeBackend(mcservice.EnvelopeBare, "SPY", "AGG")
		defer backend.Close()

		_, err := runCli(t, backend, "scenarios", "create", "--name", "Short", "-c", "SPY=0.5", "-c", "AGG=0.2")
		require.Error(t, err)
		require.Equal(t, "Weights must sum to 1.0 (currently 0.7000).", err.Error())
		require.Equal(t, 0, backend.ScenarioCount())
	})

	t.Run("unknown symbol", func(t *testing.T) {
		backend := integration_tests.NewFakeBackend(mcservice.EnvelopeBare, "SPY")
		defer backend.Close()

		_, err := runCli(t, backend, "scenarios", "create", "--name", "Odd", "-c", "XYZ=1")
		require.Error(t, err)
		require.Equal(t, "no asset found for symbol XYZ", err.Error())
	})
}

func TestHeartbeat(t *testing.T) {
	backend := integration_tests.NewFakeBackend(mcservice.EnvelopeBare)
	defer backend.Close()

	out, err := runCli(t, backend, "heartbeat")
	require.NoError(t, err)
	require.Contains(t, out, "postgres")

	backend.SetUnhealthy("postgres")
	_, err = runCli(t, backend, "heartbeat")
	require.Error(t, err)
	require.Equal(t, "unhealthy services: [postgres]", err.Error())
}

func TestOutputFlag(t *testing.T) {
	backend := integration_tests.NewFakeBackend(mcservice.EnvelopeBare, "SPY")
	defer backend.Close()

	_, err := runCli(t, backend, "assets", "list", "-o", "yaml")
	require.Error(t, err)
	require.Equal(t, `unknown output "yaml", expected table, json or csv`, err.Error())
}
