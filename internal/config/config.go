package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "RESOURCE_API"

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Store  StoreConfig  `mapstructure:"store"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StoreConfig struct {
	Driver   string `mapstructure:"driver"`
	SeedFile string `mapstructure:"seed_file"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"host":       "server.host",
	"port":       "server.port",
	"store":      "store.driver",
	"seed":       "store.seed_file",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// New returns a viper instance with defaults and RESOURCE_API_* env lookup.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3020)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.seed_file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// AddFlags registers the command line overrides on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (yaml, json or toml)")
	fs.String("host", "0.0.0.0", "interface to bind")
	fs.Int("port", 3020, "port to listen on")
	fs.String("store", "memory", "store backend (memory|sqlite)")
	fs.String("seed", "", "YAML file of resources to create at startup")
	fs.String("log-level", "info", "log level (debug|info|warn|error)")
	fs.String("log-format", "json", "log format (json|console)")
}

// BindFlags maps the flags registered by AddFlags onto their config keys.
// Only flags set explicitly override env and file values.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
		v.SetConfigFile(f.Value.String())
	}
	return nil
}

// Load reads the optional config file and decodes v into a validated Config.
func Load(v *viper.Viper) (Config, error) {
	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	switch c.Store.Driver {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("store.driver %q: must be memory or sqlite", c.Store.Driver)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q: must be debug, info, warn or error", c.Log.Level)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "json", "console", "text":
	default:
		return fmt.Errorf("log.format %q: must be json or console", c.Log.Format)
	}
	return nil
}

// Addr is the listen address, host:port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}
