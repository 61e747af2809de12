package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment override, e.g. JEOPARDY_LIBRARY_PATH.
	EnvPrefix = "JEOPARDY"

	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

type Config struct {
	// File is the absolute path of the config file read, if any.
	File       string           `mapstructure:"-"`
	Logger     LoggerConfig     `mapstructure:"logger"`
	Library    LibraryConfig    `mapstructure:"library"`
	Validation ValidationConfig `mapstructure:"validation"`
}

type LoggerConfig struct {
	Level string `mapstructure:"level"`
	Env   string `mapstructure:"env"`
}

// LibraryConfig says where games are stored. Path is a directory for the
// file driver and a database file for the sqlite driver.
type LibraryConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"`
}

type ValidationConfig struct {
	Strict      bool   `mapstructure:"strict"`
	CheckAssets bool   `mapstructure:"check_assets"`
	AssetRoot   string `mapstructure:"asset_root"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("library.driver", DriverFile)
	v.SetDefault("library.path", "./games")
	v.SetDefault("library.format", "yaml")
	v.SetDefault("validation.strict", false)
	v.SetDefault("validation.check_assets", false)
	v.SetDefault("validation.asset_root", "")
}

// LoadConfig reads configFile, or searches for config.yaml when it is empty.
// A missing config.yaml is not an error; defaults and JEOPARDY_* variables apply.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if os.Getenv("ENV") == "test" {
			v.AddConfigPath("../../configs")
		} else {
			v.AddConfigPath(".")
			v.AddConfigPath("./configs")
			if home, err := os.UserHomeDir(); err == nil {
				v.AddConfigPath(filepath.Join(home, ".jeopardytool"))
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.File = configFileUsed(v)
	cfg.Library.Driver = strings.ToLower(cfg.Library.Driver)
	cfg.Library.Format = strings.ToLower(cfg.Library.Format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.Library.Driver {
	case DriverFile, DriverSQLite:
	default:
		return fmt.Errorf("unsupported library driver %q (want %q or %q)", c.Library.Driver, DriverFile, DriverSQLite)
	}
	if c.Library.Path == "" {
		return errors.New("library.path must not be empty")
	}
	switch c.Library.Format {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("unsupported library format %q", c.Library.Format)
	}
	return nil
}

func configFileUsed(v *viper.Viper) string {
	file := v.ConfigFileUsed()
	if file == "" {
		return ""
	}
	abs, err := filepath.Abs(file)
	if err != nil {
		return file
	}
	return abs
}
