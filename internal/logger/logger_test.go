package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndWrite(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "test.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Info("hello %s", "world")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "hello world") {
		t.Errorf("log file missing message: %s", data)
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "test.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	SetLevel(LevelInfo)
	Debug("should not appear")
	Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "should not appear") {
		t.Error("debug message written at info level")
	}
}

func TestDebugEnabledViaSetDebug(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "test.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	SetDebug(true)
	Debug("visible now")
	Close()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "visible now") {
		t.Error("debug message missing with debug enabled")
	}
}

func TestComponentLogger(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "test.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	ComponentLogger("dealroom").Info("catalog fetched", "deals", 3)
	Close()

	data, _ := os.ReadFile(path)
	out := string(data)
	if !strings.Contains(out, "component=dealroom") {
		t.Errorf("component attribute missing: %s", out)
	}
	if !strings.Contains(out, "deals=3") {
		t.Errorf("structured attribute missing: %s", out)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "test.log")
	if err := Init(path); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	if err := Init(filepath.Join(t.TempDir(), "other.log")); err != nil {
		t.Fatalf("second Init should be a no-op, got: %v", err)
	}
}
