package util

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"mcscenario/internal/logger"
	"mcscenario/pkg/mcservice"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort = 3009

	envConfigFile = "MC_CONFIG"
	envApiBase    = "MC_API_BASE"
	envEnvelope   = "MC_ENVELOPE"
	envSyncPath   = "MC_SYNC_PATH"
	envPort       = "MC_PORT"
)

type Config struct {
	Api    ApiConfig    `yaml:"api"`
	Server ServerConfig `yaml:"server"`
}

// ApiConfig points at the monte carlo service
type ApiConfig struct {
	BaseURL        string `yaml:"base_url"`
	SyncPath       string `yaml:"sync_path"`
	Envelope       string `yaml:"envelope"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ServerConfig is for the local api that serves the scenario builder
type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func configFileForEnv() string {
	if f := os.Getenv(envConfigFile); f != "" {
		return f
	}
	switch strings.ToLower(os.Getenv(logger.EnvVar)) {
	case "dev":
		return "config-dev.yaml"
	case "test":
		return "config-test.yaml"
	}
	return "config.yaml"
}

// LoadConfig reads the config file for the current MC_ENV, then applies
// env overrides. a missing file is fine and leaves the defaults
func LoadConfig() (*Config, error) {
	path := configFileForEnv()
	c, err := LoadConfigFile(path)
	if errors.Is(err, os.ErrNotExist) {
		c = &Config{}
	} else if err != nil {
		return nil, err
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	c.applyDefaults()

	if _, err := mcservice.ParseEnvelope(c.Api.Envelope); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return c, nil
}

func LoadConfigFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	c := Config{}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &c, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(envApiBase); v != "" {
		c.Api.BaseURL = v
	}
	if v := os.Getenv(envEnvelope); v != "" {
		c.Api.Envelope = v
	}
	if v := os.Getenv(envSyncPath); v != "" {
		c.Api.SyncPath = v
	}
	if v := os.Getenv(envPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", envPort, v, err)
		}
		c.Server.Port = port
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Api.BaseURL == "" {
		c.Api.BaseURL = mcservice.DefaultBaseURL
	}
	if c.Api.SyncPath == "" {
		c.Api.SyncPath = mcservice.DefaultSyncPath
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
}

// ClientConfig turns the api section into what mcservice.NewClient takes
func (c Config) ClientConfig() (mcservice.Config, error) {
	envelope, err := mcservice.ParseEnvelope(c.Api.Envelope)
	if err != nil {
		return mcservice.Config{}, err
	}
	return mcservice.Config{
		BaseURL:  c.Api.BaseURL,
		SyncPath: c.Api.SyncPath,
		Envelope: envelope,
		Timeout:  time.Duration(c.Api.TimeoutSeconds) * time.Second,
	}, nil
}
