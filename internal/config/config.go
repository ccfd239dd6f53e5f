// Package config turns Viper settings into the typed, validated configuration
// used by the StationViz server and CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HerbHall/stationviz/pkg/sld"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

// Settings is the full application configuration.
type Settings struct {
	Server    ServerSettings    `mapstructure:"server"`
	Logging   LoggingSettings   `mapstructure:"logging"`
	Icons     IconSettings      `mapstructure:"icons"`
	RateLimit RateLimitSettings `mapstructure:"ratelimit"`
}

// ServerSettings configures the HTTP listener.
type ServerSettings struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port" validate:"min=1,max=65535"`
	DevMode bool   `mapstructure:"dev_mode"`

	// AllowedOrigins are extra origin patterns accepted by the icon stream.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LoggingSettings configures the Zap logger.
type LoggingSettings struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// IconSettings selects where icon resources live.
type IconSettings struct {
	Prefix    string `mapstructure:"prefix" validate:"required"`
	Extension string `mapstructure:"extension" validate:"required,startswith=."`
}

// RateLimitSettings configures the per-IP limiter.
type RateLimitSettings struct {
	RPS   float64 `mapstructure:"rps" validate:"gt=0"`
	Burst int     `mapstructure:"burst" validate:"min=1"`
}

// Addr returns the listen address as host:port.
func (s ServerSettings) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Theme returns the icon theme described by the settings.
func (s IconSettings) Theme() sld.Theme {
	return sld.Theme{Prefix: s.Prefix, Extension: s.Extension}
}

// FromViper unmarshals and validates settings from v.
func FromViper(v *viper.Viper) (*Settings, error) {
	if v == nil {
		return nil, errors.New("config: nil viper instance")
	}
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, formatValidationError(err)
	}
	return &s, nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
