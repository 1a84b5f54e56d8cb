package config

import (
	"os"
	"os/exec"
	"testing"
	"time"
)

// TestLoadConfig_Defaults verifies that defaults are loaded.
func TestLoadConfig_Defaults(t *testing.T) {
	// Clear relevant env vars to ensure defaults are used
	_ = os.Unsetenv("SERVER_PORT")
	_ = os.Unsetenv("NEPSE_BASE_URL")
	_ = os.Unsetenv("NEPSE_TIMEOUT_SECONDS")
	_ = os.Unsetenv("NEPSE_TLS_VERIFY")
	_ = os.Unsetenv("RATE_LIMIT_CAPACITY")
	_ = os.Unsetenv("RATE_LIMIT_REFILL_PER_SECOND")

	LoadConfig()

	if AppConfig.Server.Port != "8000" {
		t.Fatalf("expected default SERVER_PORT=8000, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Nepse.BaseURL != "https://www.nepalstock.com" {
		t.Fatalf("unexpected base url: %q", AppConfig.Nepse.BaseURL)
	}
	if AppConfig.Nepse.Timeout != 15*time.Second {
		t.Fatalf("unexpected timeout: %v", AppConfig.Nepse.Timeout)
	}
	if AppConfig.Nepse.VerifyTLS {
		t.Fatalf("TLS verification should default to off")
	}
	if AppConfig.RateLimit.Capacity != 4 || AppConfig.RateLimit.RefillPerSecond != 2.0 {
		t.Fatalf("unexpected rate limit defaults: %+v", AppConfig.RateLimit)
	}
}

// TestLoadConfig_EnvOverrides verifies env vars beat defaults.
func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("RATE_LIMIT_CAPACITY", "10")

	LoadConfig()

	if AppConfig.Server.Port != "9999" {
		t.Fatalf("expected SERVER_PORT override, got %q", AppConfig.Server.Port)
	}
	if AppConfig.RateLimit.Capacity != 10 {
		t.Fatalf("expected RATE_LIMIT_CAPACITY override, got %d", AppConfig.RateLimit.Capacity)
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig triggers a fatal exit
// when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		// In child process: set empty AppConfig and call validateConfig() to trigger log.Fatalf (os.Exit)
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
