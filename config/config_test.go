package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	structValidator "github.com/go-playground/validator/v10"
)

func TestMain(m *testing.M) {
	invalidYamlPath := "./invalid_config.yaml"
	invalidContent := []byte("invalid: [unclosed_list\nanother: value")

	// Create invalid YAML file
	if err := os.WriteFile(invalidYamlPath, invalidContent, 0600); err != nil {
		panic("failed to create invalid YAML file: " + err.Error())
	}

	// Run tests
	code := m.Run()

	// Clean up
	os.Remove(invalidYamlPath)

	os.Exit(code)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestReadLocalConfig(t *testing.T) {
	type args struct {
		configPath string
	}
	tests := []struct {
		name    string
		args    args
		want    *ServiceConfig
		wantErr bool
	}{
		{
			name: "successful",
			args: args{
				configPath: "../res/config.yaml",
			},
			want: &ServiceConfig{
				ServiceName:     "userdirectory",
				LogLevel:        "DEBUG",
				Host:            "localhost",
				Port:            "8080",
				BasePath:        "/users",
				MetricsPath:     "/metrics",
				SeedPlaceholder: true,
			},
			wantErr: false,
		},
		{
			name: "defaults for missing keys",
			args: args{
				configPath: writeConfig(t, "service_name: svc\nloglevel: info\nport: \"9000\"\n"),
			},
			want: &ServiceConfig{
				ServiceName:     "svc",
				LogLevel:        "info",
				Port:            "9000",
				BasePath:        DefaultBasePath,
				MetricsPath:     DefaultMetricsPath,
				SeedPlaceholder: true,
			},
			wantErr: false,
		},
		{
			name: "seeding switched off",
			args: args{
				configPath: writeConfig(t, "service_name: svc\nloglevel: info\nport: \"9000\"\nseed_placeholder: false\n"),
			},
			want: &ServiceConfig{
				ServiceName: "svc",
				LogLevel:    "info",
				Port:        "9000",
				BasePath:    DefaultBasePath,
				MetricsPath: DefaultMetricsPath,
			},
			wantErr: false,
		},
		{
			name: "file does not exist",
			args: args{
				configPath: "",
			},
			want:    nil,
			wantErr: true,
		},
		{
			name: "invalid YAML file",
			args: args{
				configPath: "./invalid_config.yaml",
			},
			want:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLocalConfig(tt.args.configPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadLocalConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadLocalConfig() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestServiceConfig_Validation(t *testing.T) {
	valid := ServiceConfig{
		ServiceName: "svc",
		LogLevel:    "info",
		Port:        "8080",
		BasePath:    "/users",
		MetricsPath: "/metrics",
	}
	tests := []struct {
		name    string
		mutate  func(cfg *ServiceConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(cfg *ServiceConfig) {}},
		{name: "missing service name", mutate: func(cfg *ServiceConfig) { cfg.ServiceName = "" }, wantErr: true},
		{name: "unknown log level", mutate: func(cfg *ServiceConfig) { cfg.LogLevel = "chatty" }, wantErr: true},
		{name: "non numeric port", mutate: func(cfg *ServiceConfig) { cfg.Port = "http" }, wantErr: true},
		{name: "relative base path", mutate: func(cfg *ServiceConfig) { cfg.BasePath = "users" }, wantErr: true},
		{name: "metrics path clashes with base path", mutate: func(cfg *ServiceConfig) { cfg.MetricsPath = "/users" }, wantErr: true},
	}
	validator := structValidator.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := validator.Struct(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
