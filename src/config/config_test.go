package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/finsync")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("default port %q, want 8080", cfg.Port)
	}
	if cfg.QBOEnv != "sandbox" || cfg.PlaidEnv != "sandbox" {
		t.Errorf("default environments %q/%q, want sandbox", cfg.QBOEnv, cfg.PlaidEnv)
	}
	if cfg.SyncInterval != 6*time.Hour {
		t.Errorf("default sync interval %v, want 6h", cfg.SyncInterval)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("default timezone %q, want UTC", cfg.Timezone)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/finsync")
	t.Setenv("SYNC_INTERVAL", "45m")
	t.Setenv("QBO_REALM_ID", "realm-9")
	t.Setenv("PLAID_ENV", "production")

	cfg := Load()

	if cfg.SyncInterval != 45*time.Minute {
		t.Errorf("sync interval %v, want 45m", cfg.SyncInterval)
	}
	if cfg.QBORealmID != "realm-9" {
		t.Errorf("realm id %q, want realm-9", cfg.QBORealmID)
	}
	if cfg.PlaidEnv != "production" {
		t.Errorf("plaid env %q, want production", cfg.PlaidEnv)
	}
}
