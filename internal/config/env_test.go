package config

import (
	"strings"
	"testing"
)

func TestLoadEnvDefaults(t *testing.T) {
	p, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if p.TickRate != 60 || p.SSHPort != 2222 || p.Lang != "en" {
		t.Errorf("defaults = %+v", p)
	}
	if !p.OTelEnabled || p.OTelEndpoint != "" {
		t.Errorf("otel defaults = enabled %v endpoint %q", p.OTelEnabled, p.OTelEndpoint)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ARCADE_TICK_RATE", "30")
	t.Setenv("ARCADE_LANG", "ko")
	t.Setenv("ARCADE_DB_PATH", "/tmp/arcade.db")

	p, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if p.TickRate != 30 || p.Lang != "ko" || p.DBPath != "/tmp/arcade.db" {
		t.Errorf("overrides = %+v", p)
	}
}

func TestLoadEnvError(t *testing.T) {
	t.Setenv("ARCADE_SSH_PORT", "not-a-port")

	_, err := LoadEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
