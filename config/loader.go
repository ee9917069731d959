package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderOptions controls where Load looks for files.
type LoaderOptions struct {
	// ConfigFile is an explicit config file path. When empty, standard
	// locations are searched.
	ConfigFile string
	// EnvFile is an explicit .env path. When empty, ./.env is used if present.
	EnvFile string
	// EnvPrefix is the environment variable prefix (default "WEBCORE").
	EnvPrefix string
}

// Load reads configuration from the config file, .env file and environment,
// applies defaults and validates the result.
func Load(opts LoaderOptions) (*Config, error) {
	if opts.EnvPrefix == "" {
		opts.EnvPrefix = "WEBCORE"
	}

	loadEnvFile(opts.EnvFile)

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(opts.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file := resolveConfigFile(opts.ConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func loadEnvFile(path string) {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err == nil {
		_ = godotenv.Load(path)
	}
}

func resolveConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, path := range []string{"./config.yml", "./config/config.yml"} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
