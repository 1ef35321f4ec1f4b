package config

import (
	"os"
	"testing"
	"time"
)

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, k := range []string{"PORT", "ADMIN_USERNAME", "ADMIN_PASSWORD", "SHEETS_BACKEND", "SESSION_BACKEND", "SHEETS_CACHE_TTL", "EMAIL_USERNAME", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "APP_ENV", "SECRET_KEY"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" || cfg.Admin.Username != "admin" || cfg.Admin.Password != "changeme123" {
		t.Fatalf("unexpected defaults: %+v %+v", cfg.Server, cfg.Admin)
	}
	if cfg.Sheets.Backend != "workbook" || cfg.Sheets.CacheTTL != 60*time.Second || cfg.Sheets.RateLimitRequests != 10 {
		t.Fatalf("unexpected sheets defaults: %+v", cfg.Sheets)
	}
	if cfg.SMTP.Host != "smtp.gmail.com" || cfg.SMTP.Port != 587 || cfg.SMTP.Enabled() {
		t.Fatalf("unexpected smtp defaults: %+v", cfg.SMTP)
	}
	if cfg.Payments.Mock {
		t.Fatalf("mock mode should be off by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("SHEETS_BACKEND", "Google")
	t.Setenv("SHEETS_CACHE_TTL", "5s")
	t.Setenv("SHEETS_MAX_RETRIES", "not-a-number")
	t.Setenv("MERCADOPAGO_MOCK", "yes")
	t.Setenv("SESSION_BACKEND", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Sheets.Backend != "google" || cfg.Sheets.CacheTTL != 5*time.Second {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Sheets.MaxRetries != 3 {
		t.Fatalf("invalid int should fall back to default, got %d", cfg.Sheets.MaxRetries)
	}
	if !cfg.Payments.Mock {
		t.Fatalf("MERCADOPAGO_MOCK=yes should enable mock mode")
	}
}

func TestLoad_RejectsUnknownBackends(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SHEETS_BACKEND", "postgres")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown sheets backend")
	}
	t.Setenv("SHEETS_BACKEND", "workbook")
	t.Setenv("SESSION_BACKEND", "redis")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown session backend")
	}
}

func TestLoad_ProductionNeedsSecretKey(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SHEETS_BACKEND", "")
	t.Setenv("SESSION_BACKEND", "")
	t.Setenv("APP_ENV", "production")
	t.Setenv("COOKIE_SECURE", "")

	t.Setenv("SECRET_KEY", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when SECRET_KEY is unset in production")
	}

	t.Setenv("SECRET_KEY", defaultSecretKey)
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when SECRET_KEY is the development default")
	}

	t.Setenv("SECRET_KEY", "a-real-secret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWT.SigningKey != "a-real-secret" || !cfg.Server.CookieSecure {
		t.Fatalf("unexpected production config: %+v %+v", cfg.JWT, cfg.Server)
	}
}
