/*
Config package
*/
package config

import (
	"errors"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Logger is our contract for the logger
type Logger interface {
	Warn(msg string, fields ...any)
}

// Config is a process-wide view over environment variables, an optional .env
// file and registered defaults.
type Config struct {
	v *viper.Viper
}

// New - read .env and ENV variables
func New(log Logger) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("dotenv")
	v.AddConfigPath(".") // look for config in the working directory
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, &ReadError{Err: err}
		}

		if log != nil {
			log.Warn("The .env file has not been found in the current directory")
		}
	}

	return &Config{v: v}, nil
}

// NewFromMap builds a Config without touching the filesystem. Values in
// overrides take precedence over both the environment and defaults.
func NewFromMap(overrides map[string]any) *Config {
	v := viper.New()
	v.AutomaticEnv()

	for key, value := range overrides {
		v.Set(key, value)
	}

	return &Config{v: v}
}

func (c *Config) SetDefault(key string, value any) {
	c.v.SetDefault(key, value)
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}

// BindFlag lets an explicitly set command-line flag override key.
func (c *Config) BindFlag(key string, flag *pflag.Flag) error {
	return c.v.BindPFlag(key, flag)
}
