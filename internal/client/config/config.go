package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the CommPro auth CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the auth service gRPC endpoint.
//   - OnlineCheckInterval: how often the client checks server reachability.
//   - DeviceID, DeviceName: identify this client's sessions on the server.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
	DeviceID            string
	DeviceName          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	if host, err := os.Hostname(); err == nil {
		c.DeviceName = host
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
