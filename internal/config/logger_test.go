package config

import "testing"

func TestNewLogger_Defaults(t *testing.T) {
	logger, err := NewLogger(LoggingSettings{})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNewLogger_ConsoleDebug(t *testing.T) {
	logger, err := NewLogger(LoggingSettings{Level: "debug", Format: "console"})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if !logger.Core().Enabled(-1) {
		t.Error("expected debug level to be enabled")
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := NewLogger(LoggingSettings{Level: "banana", Format: "json"}); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	if _, err := NewLogger(LoggingSettings{Level: "info", Format: "xml"}); err == nil {
		t.Fatal("expected error for invalid format")
	}
}
