package server

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HerbHall/stationviz/pkg/sld"
	"github.com/spf13/viper"
)

// LoadConfig reads configuration from file and environment variables.
// An empty configPath searches the default locations; a missing file there
// is not an error.
func LoadConfig(configPath string) (*viper.Viper, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.dev_mode", false)
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("icons.prefix", sld.DefaultTheme.Prefix)
	v.SetDefault("icons.extension", sld.DefaultTheme.Extension)
	v.SetDefault("ratelimit.rps", 100)
	v.SetDefault("ratelimit.burst", 200)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("stationviz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/stationviz")
	}

	// Environment variable support: SV_SERVER_PORT=9090
	v.SetEnvPrefix("SV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return v, nil
}
