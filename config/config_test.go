package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		ServerPort:    "8080",
		SessionSecret: "0123456789abcdef",
		SessionTTL:    time.Hour,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.ServerPort = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range",
			mutate:      func(c *Config) { c.ServerPort = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "short session secret",
			mutate:      func(c *Config) { c.SessionSecret = "short" },
			wantErr:     true,
			errorString: "session secret must be at least 16 characters",
		},
		{
			name:        "non-positive TTL",
			mutate:      func(c *Config) { c.SessionTTL = 0 },
			wantErr:     true,
			errorString: "invalid session TTL 0s: must be positive",
		},
		{
			name:        "unknown log level",
			mutate:      func(c *Config) { c.LogLevel = "verbose" },
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
		{
			name:        "unknown log format",
			mutate:      func(c *Config) { c.LogFormat = "xml" },
			wantErr:     true,
			errorString: "invalid log format 'xml'",
		},
		{
			name:   "level is case-insensitive",
			mutate: func(c *Config) { c.LogLevel = "DEBUG"; c.LogFormat = "JSON" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q", tt.errorString)
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Config{ServerPort: "0", SessionSecret: "", SessionTTL: -time.Second, LogLevel: "x", LogFormat: "y"}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if n := strings.Count(err.Error(), "\n  - "); n != 5 {
		t.Fatalf("expected 5 errors, got %d: %v", n, err)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_SECRET", "a-very-long-session-secret")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("SESSION_COOKIE_SECURE", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg := Load()
	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %s", cfg.ServerPort)
	}
	if cfg.SessionSecret != "a-very-long-session-secret" || cfg.UsesDevSecret() {
		t.Errorf("SessionSecret = %s", cfg.SessionSecret)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %s", cfg.SessionTTL)
	}
	if !cfg.SessionCookieSecure {
		t.Error("SessionCookieSecure should be true")
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("log settings = %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config invalid: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "SESSION_SECRET", "SESSION_TTL", "SESSION_COOKIE_SECURE", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}
	t.Setenv("SESSION_TTL", "not-a-duration")

	cfg := Load()
	if cfg.ServerPort != "8080" || cfg.SessionTTL != 12*time.Hour || cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if !cfg.UsesDevSecret() {
		t.Error("expected development secret")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}
