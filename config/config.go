package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	CONFIG_PATH = "./res/config.yaml"

	DefaultBasePath    = "/users"
	DefaultMetricsPath = "/metrics"
)

// ServiceConfig holds the configuration for the service.
type ServiceConfig struct {
	ServiceName string `yaml:"service_name" validate:"required"`
	LogLevel    string `yaml:"loglevel" validate:"required,oneof=debug info warn error fatal panic DEBUG INFO WARN ERROR FATAL PANIC"`
	Host        string `yaml:"host"`
	Port        string `yaml:"port" validate:"required,numeric"`
	// BasePath is the collection path the user routes hang off.
	BasePath    string `yaml:"base_path" validate:"required,startswith=/"`
	MetricsPath string `yaml:"metrics_path" validate:"required,startswith=/,nefield=BasePath"`
	// SeedPlaceholder stores one placeholder user at startup.
	SeedPlaceholder bool `yaml:"seed_placeholder"`
}

// ReadLocalConfig reads the service configuration from a YAML file at the specified path.
// Keys missing from the file keep their defaults: the /users and /metrics
// paths and placeholder seeding switched on.
func ReadLocalConfig(configPath string) (*ServiceConfig, error) {
	config := &ServiceConfig{
		BasePath:        DefaultBasePath,
		MetricsPath:     DefaultMetricsPath,
		SeedPlaceholder: true,
	}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
