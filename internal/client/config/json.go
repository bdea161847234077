package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/commpro-auth/internal/flagx"
	"github.com/dmitrijs2005/commpro-auth/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals
// may be strings like "3s" or integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	DeviceID            string         `json:"device_id"`
	DeviceName          string         `json:"device_name"`
}

// parseJson overlays Config with values from the JSON file named by -c or
// -config. Nothing happens without the flag. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	if jc.DeviceID != "" {
		cfg.DeviceID = jc.DeviceID
	}
	if jc.DeviceName != "" {
		cfg.DeviceName = jc.DeviceName
	}
}
