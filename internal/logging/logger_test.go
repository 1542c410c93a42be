package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"catalyzer-release/internal/logging"
)

func TestNew_DefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(&buf, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.GetLevel() != logrus.WarnLevel {
		t.Fatalf("expected warn level, got %s", l.GetLevel())
	}

	l.Info("hidden")
	l.WithField("target", "core").Warn("publish.failed")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered:\n%s", out)
	}
	if !strings.Contains(out, "publish.failed") || !strings.Contains(out, "target=core") {
		t.Fatalf("expected warn line with fields:\n%s", out)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := logging.New(&bytes.Buffer{}, "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
