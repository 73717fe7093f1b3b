package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (timeouts, delays), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	House     HouseConfig
	Inventory InventoryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// HouseConfig drives the auction house timers. Delays are expressed in ticks
// so tests can shrink the tick interval without touching the delays.
type HouseConfig struct {
	TickInterval    time.Duration `envconfig:"HOUSE_TICK_INTERVAL" default:"1s"`
	AuctionTicks    uint          `envconfig:"HOUSE_AUCTION_TICKS" default:"10"`
	ExpiryTicks     uint          `envconfig:"HOUSE_EXPIRY_TICKS" default:"30"`
	AutoExpireTypes []string      `envconfig:"HOUSE_AUTO_EXPIRE_TYPES" default:"Fast"`
	StartingFunds   int64         `envconfig:"HOUSE_STARTING_FUNDS" default:"100"`
}

type InventoryConfig struct {
	Slow uint `envconfig:"INVENTORY_SLOW" default:"2"`
	Fast uint `envconfig:"INVENTORY_FAST" default:"2"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		House: HouseConfig{
			TickInterval:    time.Millisecond,
			AuctionTicks:    10,
			ExpiryTicks:     30,
			AutoExpireTypes: []string{"Fast"},
			StartingFunds:   100,
		},
		Inventory: InventoryConfig{
			Slow: 2,
			Fast: 2,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
