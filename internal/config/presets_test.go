package config

import (
	"strings"
	"testing"
)

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if _, err := ParsePreset("x"); err != nil && !strings.Contains(err.Error(), "config:") {
		t.Errorf("error should carry the package prefix: %v", err)
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		wantWarnings int
		wantFixed    bool
	}{
		{DifficultyEasy, 7, false},
		{DifficultyNormal, 5, false},
		{DifficultyHard, 3, false},
		{DifficultyFixed, 5, true},
	}
	for _, tt := range tests {
		cfg := DefaultRunnerConfig()
		ApplyRunnerPreset(&cfg, tt.preset)
		if cfg.Rules.MaxWarnings != tt.wantWarnings || cfg.Curve.Fixed != tt.wantFixed {
			t.Errorf("%s: warnings=%d fixed=%v", tt.preset, cfg.Rules.MaxWarnings, cfg.Curve.Fixed)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: preset produced invalid config: %v", tt.preset, err)
		}
	}
}

func TestApplyCatcherPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		wantTime  int
		wantLevel int
	}{
		{DifficultyEasy, 90, 1},
		{DifficultyNormal, 60, 1},
		{DifficultyHard, 45, 3},
		{DifficultyFixed, 60, 1},
	}
	for _, tt := range tests {
		cfg := DefaultCatcherConfig()
		ApplyCatcherPreset(&cfg, tt.preset)
		if cfg.Rules.TimeLimit != tt.wantTime || cfg.Rules.StartLevel != tt.wantLevel {
			t.Errorf("%s: time=%d level=%d", tt.preset, cfg.Rules.TimeLimit, cfg.Rules.StartLevel)
		}
		if cfg.Curve.Fixed != (tt.preset == DifficultyFixed) {
			t.Errorf("%s: fixed=%v", tt.preset, cfg.Curve.Fixed)
		}
	}
}
