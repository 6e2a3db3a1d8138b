package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestCreateLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := createLogger(&buf, "farmstead", "debug", "json")
	if l.Logger.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %v", l.Logger.GetLevel())
	}

	l.WithField("day", 3).Debug("Day advanced.")
	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if line["service"] != "farmstead" || line["msg"] != "Day advanced." {
		t.Fatalf("unexpected fields %+v", line)
	}
}

func TestCreateLoggerBadLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	l := createLogger(&buf, "farmstead", "loud", "text")
	if l.Logger.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info fallback, got %v", l.Logger.GetLevel())
	}
	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug line should be filtered: %q", buf.String())
	}
}
