package config

import (
	"encoding/json"
	"strings"
	"time"

	// Packages
	errors "github.com/djthorpe/go-errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Config holds the settings loaded from a file, a .env file and ELEVENLABS_
// environment variables, in increasing order of precedence
type Config struct {
	ApiKey   string        `mapstructure:"api_key" json:"-"`
	Endpoint string        `mapstructure:"endpoint" json:"endpoint"`
	Output   string        `mapstructure:"output" json:"output"`
	Timeout  time.Duration `mapstructure:"timeout" json:"timeout"`
	LogLevel string        `mapstructure:"log_level" json:"log_level"`
	Debug    bool          `mapstructure:"debug" json:"debug"`
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	EnvPrefix       = "elevenlabs"
	DefaultEndpoint = "https://api.elevenlabs.io/v1"
	DefaultOutput   = "output"
	DefaultTimeout  = 5 * time.Minute
	DefaultLogLevel = "info"
)

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Load returns the configuration. The file is optional; when empty only
// defaults, the .env file and the environment are used
func Load(file string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("api_key", "")
	v.SetDefault("endpoint", DefaultEndpoint)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("debug", false)

	// Read the config file
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	// Environment overrides the file
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	} else if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Return success
	return &cfg, nil
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Config) String() string {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate returns an error if a setting is out of range
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return errors.ErrBadParameter.With("endpoint is required")
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.ErrBadParameter.With("output is required")
	}
	if c.Timeout <= 0 {
		return errors.ErrBadParameter.Withf("invalid timeout %v (must be positive)", c.Timeout)
	}
	return nil
}
