package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/commpro-auth/internal/flagx"
	"github.com/dmitrijs2005/commpro-auth/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON config file. Every field is a
// pointer so keys absent from the file leave the lower layers intact.
// Durations accept Go duration strings, lifetime strings ("7d") and
// integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC       *string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP       *string         `json:"endpoint_addr_http"`
	DatabaseDSN            *string         `json:"database_dsn"`
	AccessTokenSecret      *string         `json:"access_token_secret"`
	RefreshTokenSecret     *string         `json:"refresh_token_secret"`
	AccessTokenLifetime    *string         `json:"access_token_lifetime"`
	RefreshTokenLifetime   *string         `json:"refresh_token_lifetime"`
	ResetTokenLifetime     *string         `json:"reset_token_lifetime"`
	BcryptCost             *int            `json:"bcrypt_cost"`
	TOTPIssuer             *string         `json:"totp_issuer"`
	TOTPWindow             *int            `json:"totp_window"`
	ResetURLBase           *string         `json:"reset_url_base"`
	Environment            *string         `json:"environment"`
	LogFormat              *string         `json:"log_format"`
	Debug                  *bool           `json:"debug"`
	RedisAddr              *string         `json:"redis_addr"`
	RedisPassword          *string         `json:"redis_password"`
	RedisDB                *int            `json:"redis_db"`
	LimiterMaxAttempts     *int            `json:"limiter_max_attempts"`
	LimiterCooldown        *timex.Duration `json:"limiter_cooldown"`
	HTTPRateLimitRPM       *int            `json:"http_rate_limit_rpm"`
	TelemetryEndpoint      *string         `json:"telemetry_endpoint"`
	StoreTimeout           *timex.Duration `json:"store_timeout"`
	CleanupInterval        *timex.Duration `json:"cleanup_interval"`
	SingleSessionPerDevice *bool           `json:"single_session_per_device"`
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setDuration(dst *time.Duration, src *timex.Duration) {
	if src != nil {
		*dst = src.Duration
	}
}

// parseJson loads the file named by -c / -config, if any, and overlays the
// keys it defines. An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	set(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	set(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	set(&config.DatabaseDSN, c.DatabaseDSN)
	set(&config.AccessTokenSecret, c.AccessTokenSecret)
	set(&config.RefreshTokenSecret, c.RefreshTokenSecret)
	set(&config.AccessTokenLifetime, c.AccessTokenLifetime)
	set(&config.RefreshTokenLifetime, c.RefreshTokenLifetime)
	set(&config.ResetTokenLifetime, c.ResetTokenLifetime)
	set(&config.BcryptCost, c.BcryptCost)
	set(&config.TOTPIssuer, c.TOTPIssuer)
	set(&config.TOTPWindow, c.TOTPWindow)
	set(&config.ResetURLBase, c.ResetURLBase)
	set(&config.Environment, c.Environment)
	set(&config.LogFormat, c.LogFormat)
	set(&config.Debug, c.Debug)
	set(&config.RedisAddr, c.RedisAddr)
	set(&config.RedisPassword, c.RedisPassword)
	set(&config.RedisDB, c.RedisDB)
	set(&config.LimiterMaxAttempts, c.LimiterMaxAttempts)
	setDuration(&config.LimiterCooldown, c.LimiterCooldown)
	set(&config.HTTPRateLimitRPM, c.HTTPRateLimitRPM)
	set(&config.TelemetryEndpoint, c.TelemetryEndpoint)
	setDuration(&config.StoreTimeout, c.StoreTimeout)
	setDuration(&config.CleanupInterval, c.CleanupInterval)
	set(&config.SingleSessionPerDevice, c.SingleSessionPerDevice)
}
