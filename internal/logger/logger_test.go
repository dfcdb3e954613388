package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cinder.log")
	closeLog, err := Init(Options{Level: "debug", Format: "json", File: path})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() {
		Log.SetOutput(os.Stderr)
		Log.SetLevel(logrus.InfoLevel)
	})

	Log.WithField("component", "test").Debug("hello")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"component":"test"`) {
		t.Errorf("log file = %q; want a JSON record with the component field", data)
	}
}

func TestInitBadLevelFallsBackToInfo(t *testing.T) {
	if _, err := Init(Options{Level: "nonsense"}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v; want info", Log.GetLevel())
	}
}
