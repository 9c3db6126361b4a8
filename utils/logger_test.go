package utils

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLoggerLevelAndFormat(t *testing.T) {
	log := NewLogger(LoggerOptions{Level: "debug", Format: "json"})
	if log.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level: got %v", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Fatalf("formatter: got %T", log.Formatter)
	}

	log = NewLogger(LoggerOptions{Level: "nonsense"})
	if log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("fallback level: got %v", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("fallback formatter: got %T", log.Formatter)
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")
	log := NewLogger(LoggerOptions{Level: "info", File: path})
	log.Info("hello")

	if log.Out == nil {
		t.Fatal("expected an output writer")
	}
	if matches, _ := filepath.Glob(path); len(matches) != 1 {
		t.Fatalf("log file %s was not created", path)
	}
}
