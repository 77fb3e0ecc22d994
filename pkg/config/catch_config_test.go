package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCatchConfig(t *testing.T) {
	cfg := DefaultCatchConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.TargetScore != 10 {
		t.Errorf("TargetScore: got %d, want 10", cfg.TargetScore)
	}
	if cfg.SessionSeconds != 15 {
		t.Errorf("SessionSeconds: got %d, want 15", cfg.SessionSeconds)
	}
	if cfg.SpawnInterval().Milliseconds() != 1000 {
		t.Errorf("SpawnInterval: got %v, want 1s", cfg.SpawnInterval())
	}
	if cfg.FallSpeed != 2 {
		t.Errorf("FallSpeed: got %.1f, want 2", cfg.FallSpeed)
	}
	if cfg.CatcherHalfWidth != 50 {
		t.Errorf("CatcherHalfWidth: got %.1f, want 50", cfg.CatcherHalfWidth)
	}
	if cfg.Catcher.Min != 0 || cfg.Catcher.Max != 90 || cfg.Catcher.Step != 5 {
		t.Errorf("Catcher range: got %+v", cfg.Catcher)
	}
}

func TestBandContainsIsOpen(t *testing.T) {
	band := Band{Top: 80, Bottom: 90}

	tests := []struct {
		y    float64
		want bool
	}{
		{79.9, false},
		{80, false},
		{80.1, true},
		{85, true},
		{89.9, true},
		{90, false},
		{92, false},
	}

	for _, tt := range tests {
		if got := band.Contains(tt.y); got != tt.want {
			t.Errorf("Contains(%.1f) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestParseCatchConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *CatchConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
targetScore: 5
sessionSeconds: 20
`,
			validate: func(t *testing.T, cfg *CatchConfig) {
				if cfg.TargetScore != 5 {
					t.Errorf("expected targetScore = 5, got %d", cfg.TargetScore)
				}
				if cfg.SessionSeconds != 20 {
					t.Errorf("expected sessionSeconds = 20, got %d", cfg.SessionSeconds)
				}
				if cfg.FallSpeed != 2 {
					t.Errorf("expected default fallSpeed = 2, got %.1f", cfg.FallSpeed)
				}
			},
		},
		{
			name: "full config",
			yamlContent: `
targetScore: 10
sessionSeconds: 15
spawnIntervalMs: 500
fallSpeed: 3
spawnY: -10
spawnMaxX: 90
catchBand:
  top: 70
  bottom: 85
catcherHalfWidth: 20
pruneY: 100
catcher:
  min: 0
  max: 90
  step: 10
  initial: 45
maxActiveHearts: 0
`,
			validate: func(t *testing.T, cfg *CatchConfig) {
				if cfg.SpawnIntervalMs != 500 {
					t.Errorf("expected spawnIntervalMs = 500, got %d", cfg.SpawnIntervalMs)
				}
				if cfg.CatchBand.Top != 70 || cfg.CatchBand.Bottom != 85 {
					t.Errorf("unexpected catch band %+v", cfg.CatchBand)
				}
				if cfg.Catcher.Step != 10 || cfg.Catcher.Initial != 45 {
					t.Errorf("unexpected catcher %+v", cfg.Catcher)
				}
				if cfg.MaxActiveHearts != 0 {
					t.Errorf("expected unlimited hearts, got %d", cfg.MaxActiveHearts)
				}
			},
		},
		{
			name: "inverted catch band",
			yamlContent: `
catchBand:
  top: 90
  bottom: 80
`,
			wantErr:     true,
			errContains: "catch band invalid",
		},
		{
			name:        "zero target",
			yamlContent: "targetScore: 0\n",
			wantErr:     true,
			errContains: "targetScore must be positive",
		},
		{
			name:        "non-positive spawn interval",
			yamlContent: "spawnIntervalMs: -1\n",
			wantErr:     true,
			errContains: "spawnIntervalMs must be positive",
		},
		{
			name: "initial catcher outside range",
			yamlContent: `
catcher:
  min: 0
  max: 90
  step: 5
  initial: 95
`,
			wantErr:     true,
			errContains: "catcher initial",
		},
		{
			name:        "malformed yaml",
			yamlContent: "targetScore: [",
			wantErr:     true,
			errContains: "failed to parse catch game config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseCatchConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadCatchConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catch_game.yaml")
	if err := os.WriteFile(path, []byte("fallSpeed: 4\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadCatchConfig(path)
	if err != nil {
		t.Fatalf("LoadCatchConfig() error: %v", err)
	}
	if cfg.FallSpeed != 4 {
		t.Errorf("expected fallSpeed = 4, got %.1f", cfg.FallSpeed)
	}

	if _, err := LoadCatchConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestShippedCatchConfigIsValid(t *testing.T) {
	cfg, err := LoadCatchConfig(filepath.Join("..", "..", "data", "catch_game.yaml"))
	if err != nil {
		t.Fatalf("shipped config should load: %v", err)
	}
	defaults := DefaultCatchConfig()
	if *cfg != *defaults {
		t.Errorf("shipped config drifted from defaults:\n got  %+v\n want %+v", *cfg, *defaults)
	}
}
