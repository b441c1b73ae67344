package logger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aliskhannn/imtihan/internal/config"
	"github.com/aliskhannn/imtihan/internal/logger"
)

func TestNew_WritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "imtihan.log")
	cfg := &config.Config{
		Env: "production",
		Log: config.Log{Level: "error", File: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1},
	}

	log, err := logger.New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	log.Info("attempt started")
	log.Debug("hidden in production")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"attempt started"`) {
		t.Errorf("log file misses the entry: %s", data)
	}
	if strings.Contains(string(data), "hidden in production") {
		t.Errorf("debug entry must be filtered: %s", data)
	}
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{Env: "local", Log: config.Log{Level: "loud"}}
	if _, err := logger.New(cfg); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}
