package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCriticalLevelLabel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, parseLevel("info", ""), "json")

	log.Critical("db: unreachable", "host", "localhost")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["level"] != "CRITICAL" || entry["host"] != "localhost" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestBusinessErrorSkipsNil(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, parseLevel("debug", ""), "text")

	log.BusinessError("products.create: rejected", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nothing logged, got %q", buf.String())
	}

	log.With("op", "orders.get").InternalError("orders.get: failed", errors.New("boom"))
	out := buf.String()
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "err=boom") || !strings.Contains(out, "op=orders.get") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestParseLevelDefaults(t *testing.T) {
	if got := parseLevel("", "development"); got.String() != "DEBUG" {
		t.Fatalf("expected debug in development, got %v", got)
	}
	if got := parseLevel("", "production"); got.String() != "INFO" {
		t.Fatalf("expected info, got %v", got)
	}
	if got := parseLevel("fatal", ""); got != LevelCritical {
		t.Fatalf("expected critical, got %v", got)
	}
}

func TestOpenWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	log, closeFn, err := Open(Options{Level: "info", Format: "json", FilePath: path})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	log.Info("app: starting")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"app: starting"`) {
		t.Fatalf("unexpected file contents %q", string(data))
	}
}
