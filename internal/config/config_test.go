// file: internal/config/config_test.go
// version: 1.3.0
// guid: b2c3d4e5-f6a7-8b9c-0d1e-2f3a4b5c6d7e

package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

// TestInitConfig tests configuration initialization with defaults
func TestInitConfig(t *testing.T) {
	// Arrange
	viper.Reset()

	// Act
	InitConfig()

	// Assert - Verify daemon defaults
	if AppConfig.Host != "127.0.0.1" {
		t.Errorf("Expected host to be '127.0.0.1', got '%s'", AppConfig.Host)
	}

	if AppConfig.Port != 9091 {
		t.Errorf("Expected port to be 9091, got %d", AppConfig.Port)
	}

	if AppConfig.DownloadDir != "/var/lib/transmission-daemon/downloads" {
		t.Errorf("Expected download_dir to be '/var/lib/transmission-daemon/downloads', got '%s'", AppConfig.DownloadDir)
	}

	if !AppConfig.RPCEnabled {
		t.Error("Expected rpc_enabled to be true by default")
	}

	if AppConfig.RemoteBin != "transmission-remote" {
		t.Errorf("Expected remote_bin to be 'transmission-remote', got '%s'", AppConfig.RemoteBin)
	}

	// Verify credentials are empty by default
	if AppConfig.User != "" {
		t.Errorf("Expected user to be empty by default, got '%s'", AppConfig.User)
	}

	if AppConfig.Pass != "" {
		t.Errorf("Expected pass to be empty by default, got '%s'", AppConfig.Pass)
	}
}

// TestTimeoutDefaults tests timeout default values
func TestTimeoutDefaults(t *testing.T) {
	// Arrange-Act-Assert: Test timeout defaults
	viper.Reset()
	InitConfig()

	if AppConfig.RPCTimeout != 30*time.Second {
		t.Errorf("Expected rpc_timeout to be 30s, got %v", AppConfig.RPCTimeout)
	}

	if AppConfig.ListTimeout != 10*time.Second {
		t.Errorf("Expected list_timeout to be 10s, got %v", AppConfig.ListTimeout)
	}
}

// TestServerDefaults tests HTTP server configuration defaults
func TestServerDefaults(t *testing.T) {
	// Arrange-Act-Assert: Test server defaults
	viper.Reset()
	InitConfig()

	if AppConfig.EnableCORS {
		t.Error("Expected enable_cors to be false by default")
	}

	if AppConfig.RateLimitPerMin != 120 {
		t.Errorf("Expected rate_limit_per_min to be 120, got %d", AppConfig.RateLimitPerMin)
	}

	if AppConfig.RateLimitBurst != 30 {
		t.Errorf("Expected rate_limit_burst to be 30, got %d", AppConfig.RateLimitBurst)
	}

	if AppConfig.MaxBodyBytes != 1<<20 {
		t.Errorf("Expected max_body_bytes to be %d, got %d", 1<<20, AppConfig.MaxBodyBytes)
	}
}

// TestEnvironmentBindings tests the TRANSMISSION_* environment variables
func TestEnvironmentBindings(t *testing.T) {
	// Arrange
	viper.Reset()
	t.Setenv("TRANSMISSION_HOST", "10.0.0.5")
	t.Setenv("TRANSMISSION_PORT", "19091")
	t.Setenv("TRANSMISSION_USER", "admin")
	t.Setenv("TRANSMISSION_PASS", "hunter2")
	t.Setenv("TRANSMISSION_DOWNLOAD_DIR", "/srv/torrents")
	t.Setenv("TRANSMISSION_RPC_ENABLED", "false")
	t.Setenv("ENABLE_CORS", "true")

	// Act
	InitConfig()

	// Assert
	if AppConfig.Host != "10.0.0.5" {
		t.Errorf("Expected host from environment to be '10.0.0.5', got '%s'", AppConfig.Host)
	}

	if AppConfig.Port != 19091 {
		t.Errorf("Expected port from environment to be 19091, got %d", AppConfig.Port)
	}

	if AppConfig.User != "admin" {
		t.Errorf("Expected user from environment to be 'admin', got '%s'", AppConfig.User)
	}

	if AppConfig.Pass != "hunter2" {
		t.Errorf("Expected pass from environment to be 'hunter2', got '%s'", AppConfig.Pass)
	}

	if AppConfig.DownloadDir != "/srv/torrents" {
		t.Errorf("Expected download_dir from environment to be '/srv/torrents', got '%s'", AppConfig.DownloadDir)
	}

	if AppConfig.RPCEnabled {
		t.Error("Expected rpc_enabled to be false when TRANSMISSION_RPC_ENABLED=false")
	}

	if !AppConfig.EnableCORS {
		t.Error("Expected enable_cors to be true when ENABLE_CORS=true")
	}
}

// TestTimeoutNormalization tests that zero timeouts are reset to defaults
func TestTimeoutNormalization(t *testing.T) {
	// Arrange
	viper.Reset()
	viper.Set("rpc_timeout", "0s")
	viper.Set("list_timeout", "0s")
	viper.Set("remote_bin", "")

	// Act
	InitConfig()

	// Assert
	if AppConfig.RPCTimeout != 30*time.Second {
		t.Errorf("Expected zero rpc_timeout to be normalized to 30s, got %v", AppConfig.RPCTimeout)
	}

	if AppConfig.ListTimeout != 10*time.Second {
		t.Errorf("Expected zero list_timeout to be normalized to 10s, got %v", AppConfig.ListTimeout)
	}

	if AppConfig.RemoteBin != "transmission-remote" {
		t.Errorf("Expected empty remote_bin to be normalized to 'transmission-remote', got '%s'", AppConfig.RemoteBin)
	}
}

// TestEndpoint tests host:port formatting
func TestEndpoint(t *testing.T) {
	// Arrange
	config := Config{Host: "127.0.0.1", Port: 9091}

	// Act & Assert
	if endpoint := config.Endpoint(); endpoint != "127.0.0.1:9091" {
		t.Errorf("Expected endpoint to be '127.0.0.1:9091', got '%s'", endpoint)
	}

	// IPv6 hosts must be bracketed
	config = Config{Host: "::1", Port: 9091}
	if endpoint := config.Endpoint(); endpoint != "[::1]:9091" {
		t.Errorf("Expected endpoint to be '[::1]:9091', got '%s'", endpoint)
	}
}

// TestRedacted tests password masking for display output
func TestRedacted(t *testing.T) {
	// Arrange
	config := Config{User: "admin", Pass: "hunter2"}

	// Act
	redacted := config.Redacted()

	// Assert
	if redacted.Pass != "********" {
		t.Errorf("Expected redacted pass to be masked, got '%s'", redacted.Pass)
	}

	if redacted.User != "admin" {
		t.Errorf("Expected user to be unchanged, got '%s'", redacted.User)
	}

	if config.Pass != "hunter2" {
		t.Error("Expected original config to be unchanged after Redacted")
	}

	// Empty passwords stay empty so output does not suggest one is set
	empty := Config{}.Redacted()
	if empty.Pass != "" {
		t.Errorf("Expected empty pass to stay empty, got '%s'", empty.Pass)
	}
}
