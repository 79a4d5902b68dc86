package config

import (
	"os"
	"testing"
)

func TestLoadConfig_ReadsEnvVars(t *testing.T) {
	env := map[string]string{
		"DB_HOST":        "localhost",
		"DB_PORT":        "5432",
		"DB_USER":        "user1",
		"DB_PASSWORD":    "pass1",
		"DB_NAME":        "db1",
		"JWT_SECRET":     "secret",
		"ADMIN_PASSWORD": "bootstrap-pass",
		"GCS_BUCKET":     "school-site-media",
		"CORS_ORIGINS":   "http://localhost:3000,https://school.example.com",
	}

	for k, v := range env {
		os.Setenv(k, v)
		t.Cleanup(func(key string) func() {
			return func() { os.Unsetenv(key) }
		}(k))
	}

	cfg := LoadConfig()

	if cfg.DBHost != env["DB_HOST"] {
		t.Fatalf("DBHost=%q want %q", cfg.DBHost, env["DB_HOST"])
	}
	if cfg.DBPort != env["DB_PORT"] {
		t.Fatalf("DBPort=%q want %q", cfg.DBPort, env["DB_PORT"])
	}
	if cfg.DBUser != env["DB_USER"] {
		t.Fatalf("DBUser=%q want %q", cfg.DBUser, env["DB_USER"])
	}
	if cfg.DBPassword != env["DB_PASSWORD"] {
		t.Fatalf("DBPassword=%q want %q", cfg.DBPassword, env["DB_PASSWORD"])
	}
	if cfg.DBName != env["DB_NAME"] {
		t.Fatalf("DBName=%q want %q", cfg.DBName, env["DB_NAME"])
	}
	if cfg.JWTSecret != env["JWT_SECRET"] {
		t.Fatalf("JWTSecret=%q want %q", cfg.JWTSecret, env["JWT_SECRET"])
	}
	if cfg.AdminPassword != env["ADMIN_PASSWORD"] {
		t.Fatalf("AdminPassword=%q want %q", cfg.AdminPassword, env["ADMIN_PASSWORD"])
	}
	if cfg.GCSBucket != env["GCS_BUCKET"] {
		t.Fatalf("GCSBucket=%q want %q", cfg.GCSBucket, env["GCS_BUCKET"])
	}
	if cfg.CORSOrigins != env["CORS_ORIGINS"] {
		t.Fatalf("CORSOrigins=%q want %q", cfg.CORSOrigins, env["CORS_ORIGINS"])
	}
}

func TestLoadConfig_MissingVars_ReturnEmptyStrings(t *testing.T) {
	keys := []string{
		"DB_HOST",
		"DB_PORT",
		"DB_USER",
		"DB_PASSWORD",
		"DB_NAME",
		"JWT_SECRET",
		"ADMIN_PASSWORD",
		"GCS_BUCKET",
		"CORS_ORIGINS",
	}

	for _, k := range keys {
		os.Unsetenv(k)
	}

	cfg := LoadConfig()

	if cfg.DBHost != "" || cfg.DBPort != "" || cfg.DBUser != "" || cfg.DBPassword != "" || cfg.DBName != "" ||
		cfg.JWTSecret != "" || cfg.AdminPassword != "" || cfg.GCSBucket != "" || cfg.CORSOrigins != "" {
		t.Fatalf("expected all empty strings, got: %+v", cfg)
	}
}
