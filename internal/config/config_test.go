package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Athlete.Name != "Athlete" {
		t.Errorf("Athlete.Name = %q, want %q", cfg.Athlete.Name, "Athlete")
	}
	if cfg.Display.DistanceUnit != "km" {
		t.Errorf("Display.DistanceUnit = %q, want %q", cfg.Display.DistanceUnit, "km")
	}
	if cfg.Display.HistoryPage != 15 {
		t.Errorf("Display.HistoryPage = %v, want 15", cfg.Display.HistoryPage)
	}
	if cfg.DataDir != "" {
		t.Errorf("DataDir should be empty by default, got %q", cfg.DataDir)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errContains string
	}{
		{
			name:        "empty config",
			config:      Config{},
			expectError: false,
		},
		{
			name:        "valid defaults",
			config:      DefaultConfig(),
			expectError: false,
		},
		{
			name: "miles unit",
			config: Config{
				Display: DisplayConfig{DistanceUnit: "mi"},
			},
			expectError: false,
		},
		{
			name: "bad distance unit",
			config: Config{
				Display: DisplayConfig{DistanceUnit: "furlongs"},
			},
			expectError: true,
			errContains: "distance_unit",
		},
		{
			name: "negative page size",
			config: Config{
				Display: DisplayConfig{HistoryPage: -1},
			},
			expectError: true,
			errContains: "history_page_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err, tt.errContains)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestResolveDataDir(t *testing.T) {
	cfg := Config{DataDir: "/tmp/fittrack-test"}
	dir, err := cfg.ResolveDataDir()
	if err != nil {
		t.Fatalf("ResolveDataDir: %v", err)
	}
	if dir != "/tmp/fittrack-test" {
		t.Errorf("ResolveDataDir = %q, want override", dir)
	}

	cfg = Config{}
	dir, err = cfg.ResolveDataDir()
	if err != nil {
		t.Fatalf("ResolveDataDir: %v", err)
	}
	if !strings.HasSuffix(dir, ".fittrack") {
		t.Errorf("ResolveDataDir = %q, want path ending in .fittrack", dir)
	}
}
