package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderConfig controls where configuration is read from.
type LoaderConfig struct {
	// ConfigFile is an explicit YAML config file path. Empty skips file
	// loading.
	ConfigFile string
	// EnvFile is an explicit .env file path. Empty tries ./.env and
	// continues silently when absent.
	EnvFile string
	// EnvPrefix namespaces environment variable overrides
	// (PREFIX_BASE_URL overrides base_url). Empty disables env overrides.
	EnvPrefix string
}

// Load reads configuration into a struct of type T. Precedence, lowest to
// highest: config file, then environment variables. Struct fields use
// mapstructure tags; time.Duration fields accept Go duration strings.
func Load[T any](opts LoaderConfig) (*T, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return nil, fmt.Errorf("config: load env file %s: %w", opts.EnvFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	v := viper.New()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", opts.ConfigFile, err)
		}
	}

	if opts.EnvPrefix != "" {
		v.SetEnvPrefix(opts.EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
		bindKeys[T](v)
	}

	var cfg T
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}
