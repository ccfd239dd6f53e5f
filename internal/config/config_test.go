package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func validViper() *viper.Viper {
	v := viper.New()
	v.Set("server.host", "127.0.0.1")
	v.Set("server.port", 8080)
	v.Set("logging.level", "info")
	v.Set("logging.format", "json")
	v.Set("icons.prefix", "qrc:/icons/")
	v.Set("icons.extension", ".svg")
	v.Set("ratelimit.rps", 100)
	v.Set("ratelimit.burst", 200)
	return v
}

func TestFromViper_Valid(t *testing.T) {
	s, err := FromViper(validViper())
	if err != nil {
		t.Fatalf("FromViper: %v", err)
	}
	if got := s.Server.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q", got)
	}
	theme := s.Icons.Theme()
	if theme.Prefix != "qrc:/icons/" || theme.Extension != ".svg" {
		t.Errorf("Theme() = %+v", theme)
	}
	if s.RateLimit.Burst != 200 {
		t.Errorf("Burst = %d", s.RateLimit.Burst)
	}
}

func TestFromViper_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
		field string
	}{
		{"bad port", "server.port", 0, "Port"},
		{"bad level", "logging.level", "loud", "Level"},
		{"empty prefix", "icons.prefix", "", "Prefix"},
		{"extension without dot", "icons.extension", "svg", "Extension"},
		{"zero rps", "ratelimit.rps", 0, "RPS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validViper()
			v.Set(tt.key, tt.value)
			_, err := FromViper(v)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not mention %s", err, tt.field)
			}
		})
	}
}

func TestFromViper_Nil(t *testing.T) {
	if _, err := FromViper(nil); err == nil {
		t.Fatal("expected error for nil viper")
	}
}
