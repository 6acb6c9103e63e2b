package config

import (
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/currency"
)

const (
	DefaultConfigFile = "storefront.yaml"
	EnvPrefix         = "STOREFRONT"

	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

type Config struct {
	Server  Server  `mapstructure:"server"`
	Log     Log     `mapstructure:"log"`
	Storage Storage `mapstructure:"storage"`
	Catalog Catalog `mapstructure:"catalog"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	BasePath        string        `mapstructure:"base_path"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Swagger         Swagger       `mapstructure:"swagger"`
}

type Swagger struct {
	Enabled  bool   `mapstructure:"enabled"`
	FilePath string `mapstructure:"file_path"`
}

type Log struct {
	Mode  string `mapstructure:"mode"` // development or production
	Level string `mapstructure:"level"`
}

type Storage struct {
	Driver   string   `mapstructure:"driver"`
	Postgres Postgres `mapstructure:"postgres"`
}

type Postgres struct {
	DSN      string `mapstructure:"dsn"`
	MaxConns int32  `mapstructure:"max_conns"`
}

type Catalog struct {
	Currency string `mapstructure:"currency"`
	SeedFile string `mapstructure:"seed_file"`
}

// Address returns the host:port the server listens on
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Unit parses the configured ISO 4217 currency code
func (c Catalog) Unit() (currency.Unit, error) {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("catalog.currency %q is not a valid ISO 4217 code: %w", c.Currency, err)
	}
	return unit, nil
}

// ProvideConfig loads storefront.yaml from path (or the working directory when
// path is empty), applying defaults and STOREFRONT_* environment overrides
func ProvideConfig(path string) (*Config, error) {
	v := viper.New()

	if path == "" {
		path = DefaultConfigFile
	}
	v.AddConfigPath(filepath.Dir(path))
	v.SetConfigName(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	v.SetConfigType(strings.TrimPrefix(filepath.Ext(path), "."))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Default returns the configuration used when no file or environment is present
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	// defaults are all plain scalars; decoding them cannot fail
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default values using Viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_path", "/api")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("server.swagger.enabled", true)
	v.SetDefault("server.swagger.file_path", "./docs/swagger.json")
	v.SetDefault("log.mode", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("storage.postgres.dsn", "")
	v.SetDefault("storage.postgres.max_conns", 10)
	v.SetDefault("catalog.currency", "USD")
	v.SetDefault("catalog.seed_file", "")
}

// Validate checks the config for values the server cannot start with
func (c *Config) Validate() error {
	var errs []error

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Storage.Postgres.DSN == "" {
			errs = append(errs, errors.New("storage.postgres.dsn is required when storage.driver is postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.driver %q is not supported (use %s or %s)",
			c.Storage.Driver, DriverMemory, DriverPostgres))
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d is out of range", c.Server.Port))
	}

	if c.Server.BasePath != "" && !strings.HasPrefix(c.Server.BasePath, "/") {
		errs = append(errs, fmt.Errorf("server.base_path %q must start with /", c.Server.BasePath))
	}

	switch c.Log.Mode {
	case "development", "production":
	default:
		errs = append(errs, fmt.Errorf("log.mode %q is not supported (use development or production)", c.Log.Mode))
	}

	if _, err := c.Catalog.Unit(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Save writes the config to a YAML file
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultConfigFile
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("server.host", c.Server.Host)
	v.Set("server.port", c.Server.Port)
	v.Set("server.base_path", c.Server.BasePath)
	v.Set("server.read_timeout", c.Server.ReadTimeout.String())
	v.Set("server.write_timeout", c.Server.WriteTimeout.String())
	v.Set("server.shutdown_timeout", c.Server.ShutdownTimeout.String())
	v.Set("server.swagger.enabled", c.Server.Swagger.Enabled)
	v.Set("server.swagger.file_path", c.Server.Swagger.FilePath)
	v.Set("log.mode", c.Log.Mode)
	v.Set("log.level", c.Log.Level)
	v.Set("storage.driver", c.Storage.Driver)
	v.Set("storage.postgres.dsn", c.Storage.Postgres.DSN)
	v.Set("storage.postgres.max_conns", c.Storage.Postgres.MaxConns)
	v.Set("catalog.currency", c.Catalog.Currency)
	v.Set("catalog.seed_file", c.Catalog.SeedFile)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
