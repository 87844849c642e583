// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("SESSION_SECRET", "test-secret")
	os.Setenv("ADMIN_PASS", "test-pass")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-session-secret", "s1", "-admin-pass", "s2"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-session-secret", "s1", "-admin-pass", "s2"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default database type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.SQLitePath != "bechde.db" {
		t.Errorf("expected default sqlite path bechde.db, got %q", cfg.SQLitePath)
	}
	if cfg.CodesCSV != "codes.csv" {
		t.Errorf("expected default codes csv, got %q", cfg.CodesCSV)
	}
}

func TestParseFlags_DatabaseURLImpliesPostgres(t *testing.T) {
	os.Setenv("DATABASE_URL", "postgres://bechde@localhost/bechde")
	os.Setenv("SESSION_SECRET", "s1")
	os.Setenv("ADMIN_PASS", "s2")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres when DATABASE_URL is set, got %q", cfg.DatabaseType)
	}
}

func TestParseFlags_PostgresRequiresURL(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{"-t", "postgres", "-session-secret", "s1", "-admin-pass", "s2"})
	if err == nil {
		t.Error("expected error for postgres without a connection URL")
	}
}

func TestParseFlags_MissingSecrets(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-admin-pass", "s2"}); err == nil {
		t.Error("expected error for missing SESSION_SECRET")
	}
	if _, err := ParseFlags([]string{"-session-secret", "s1"}); err == nil {
		t.Error("expected error for missing ADMIN_PASS")
	}
}
