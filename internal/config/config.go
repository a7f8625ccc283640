// file: internal/config/config.go
// version: 1.3.0
// guid: 78a73f84-1f5d-4027-944f-31bffd2f8c7d

package config

import (
	"net"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config holds daemon and service configuration.
type Config struct {
	Host        string        `yaml:"host"`
	Port        int           `yaml:"port"`
	User        string        `yaml:"user"`
	Pass        string        `yaml:"pass"`
	DownloadDir string        `yaml:"download_dir"`
	RPCEnabled  bool          `yaml:"rpc_enabled"`
	RPCTimeout  time.Duration `yaml:"rpc_timeout"`
	ListTimeout time.Duration `yaml:"list_timeout"`
	RemoteBin   string        `yaml:"remote_bin"`

	EnableCORS      bool  `yaml:"enable_cors"`
	RateLimitPerMin int   `yaml:"rate_limit_per_min"`
	RateLimitBurst  int   `yaml:"rate_limit_burst"`
	MaxBodyBytes    int64 `yaml:"max_body_bytes"`
}

var AppConfig Config

// InitConfig initializes the application configuration from viper.
func InitConfig() {
	// Defaults match the original deployment: local daemon, fixed system
	// download directory, RPC preferred over the CLI fallback.
	viper.SetDefault("host", "127.0.0.1")
	viper.SetDefault("port", 9091)
	viper.SetDefault("download_dir", "/var/lib/transmission-daemon/downloads")
	viper.SetDefault("rpc_enabled", true)
	viper.SetDefault("rpc_timeout", "30s")
	viper.SetDefault("list_timeout", "10s")
	viper.SetDefault("remote_bin", "transmission-remote")
	viper.SetDefault("enable_cors", false)
	viper.SetDefault("rate_limit_per_min", 120)
	viper.SetDefault("rate_limit_burst", 30)
	viper.SetDefault("max_body_bytes", 1<<20)

	// Daemon settings keep the env names existing deployments already use.
	viper.BindEnv("host", "TRANSMISSION_HOST")
	viper.BindEnv("port", "TRANSMISSION_PORT")
	viper.BindEnv("user", "TRANSMISSION_USER")
	viper.BindEnv("pass", "TRANSMISSION_PASS")
	viper.BindEnv("download_dir", "TRANSMISSION_DOWNLOAD_DIR")
	viper.BindEnv("rpc_enabled", "TRANSMISSION_RPC_ENABLED")
	viper.BindEnv("rpc_timeout", "TRANSMISSION_RPC_TIMEOUT")
	viper.BindEnv("list_timeout", "TRANSMISSION_LIST_TIMEOUT")
	viper.BindEnv("remote_bin", "TRANSMISSION_REMOTE_BIN")
	viper.BindEnv("enable_cors", "ENABLE_CORS")

	AppConfig = Config{
		Host:        viper.GetString("host"),
		Port:        viper.GetInt("port"),
		User:        viper.GetString("user"),
		Pass:        viper.GetString("pass"),
		DownloadDir: viper.GetString("download_dir"),
		RPCEnabled:  viper.GetBool("rpc_enabled"),
		RPCTimeout:  viper.GetDuration("rpc_timeout"),
		ListTimeout: viper.GetDuration("list_timeout"),
		RemoteBin:   viper.GetString("remote_bin"),

		EnableCORS:      viper.GetBool("enable_cors"),
		RateLimitPerMin: viper.GetInt("rate_limit_per_min"),
		RateLimitBurst:  viper.GetInt("rate_limit_burst"),
		MaxBodyBytes:    viper.GetInt64("max_body_bytes"),
	}

	// Normalize values that would otherwise disable a channel by accident.
	if AppConfig.RemoteBin == "" {
		AppConfig.RemoteBin = "transmission-remote"
	}
	if AppConfig.RPCTimeout <= 0 {
		AppConfig.RPCTimeout = 30 * time.Second
	}
	if AppConfig.ListTimeout <= 0 {
		AppConfig.ListTimeout = 10 * time.Second
	}
}

// Endpoint returns the daemon address as host:port.
func (c *Config) Endpoint() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Redacted returns a copy safe for printing: the password is masked.
func (c Config) Redacted() Config {
	if c.Pass != "" {
		c.Pass = "********"
	}
	return c
}
