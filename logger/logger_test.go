package logger

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"
)

func jsonLogger(buf *bytes.Buffer, level string) *Logger {
	return New(&Config{Level: level, Format: "json", Writer: buf}, "test-svc")
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &m); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	return m
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.Service() != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.Service())
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	jsonLogger(&buf, "debug").Info("hello", Fields("k", "v"))

	m := decodeLine(t, &buf)
	if m["message"] != "hello" || m["level"] != "info" || m["k"] != "v" {
		t.Errorf("unexpected log line %v", m)
	}
	if m["service"] != "test-svc" {
		t.Errorf("expected service field, got %v", m["service"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf, "warn")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected info to be filtered, got %q", buf.String())
	}
	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warn to be written, got %q", buf.String())
	}
}

func TestNewInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf, "invalid-level")
	l.Debug("hidden")
	l.Info("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected info level fallback, got %q", buf.String())
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_FORMAT")

	l := NewFromEnv("env-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	cl := jsonLogger(&buf, "info").WithComponent("handler")
	if cl.Service() != "test-svc" {
		t.Errorf("service should be preserved, got %q", cl.Service())
	}
	cl.Info("x")
	if m := decodeLine(t, &buf); m[FieldComponent] != "handler" {
		t.Errorf("expected component field, got %v", m)
	}
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf, "info")

	if l.WithContext(context.Background()) != l {
		t.Error("expected the same logger when the context carries nothing")
	}

	ctx := ContextWithRequestID(context.Background(), "req-1")
	if RequestIDFromContext(ctx) != "req-1" {
		t.Fatal("expected request id round trip")
	}
	l.WithContext(ctx).Info("x")
	if m := decodeLine(t, &buf); m[FieldRequestID] != "req-1" {
		t.Errorf("expected request_id field, got %v", m)
	}
}

func TestWithFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	jsonLogger(&buf, "info").
		WithFields(map[string]interface{}{"key": "value"}).
		WithError(fmt.Errorf("boom")).
		Error("failed")

	m := decodeLine(t, &buf)
	if m["key"] != "value" || m["error"] != "boom" {
		t.Errorf("unexpected log line %v", m)
	}
}

func TestNewNop(t *testing.T) {
	NewNop().Error("nothing")
}

func TestInit(t *testing.T) {
	cfg := Config{
		Level:  "debug",
		Format: "console",
		Output: "stdout",
	}
	Init(&cfg)
	if GetGlobalLogger() == nil {
		t.Fatal("expected global logger to be set after Init")
	}
	if cfg.Format != "console" {
		t.Errorf("expected defaults to keep explicit format, got %q", cfg.Format)
	}
}

func TestGetGlobalLoggerDefault(t *testing.T) {
	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger to be created")
	}
}

func TestSetGlobalLogger(t *testing.T) {
	l := NewDefault("custom")
	SetGlobalLogger(l)
	if GetGlobalLogger() != l {
		t.Error("expected SetGlobalLogger to set the global logger")
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	SetGlobalLogger(jsonLogger(&buf, "debug"))
	defer SetGlobalLogger(nil)

	Debug("debug msg")
	Info("info msg")
	Warn("warn msg")
	Error("error msg")
	WithComponent("c").Info("component msg")

	if got := strings.Count(buf.String(), "\n"); got != 5 {
		t.Errorf("expected 5 lines, got %d: %q", got, buf.String())
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output 'stdout', got %q", cfg.Output)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json", Output: "stdout"}, false},
		{"bad level", Config{Level: "loud", Format: "json", Output: "stdout"}, true},
		{"bad format", Config{Level: "info", Format: "xml", Output: "stdout"}, true},
		{"bad output", Config{Level: "info", Format: "json", Output: "file"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConsoleLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: "info", Format: "console", NoColor: true, Writer: &buf}, "api")
	l.Warn("careful", Fields("k", "v"))

	out := buf.String()
	if !strings.Contains(out, "[API][WRN]") {
		t.Errorf("expected service and level tags, got %q", out)
	}
	if !strings.Contains(out, "k:v") {
		t.Errorf("expected field, got %q", out)
	}
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, "b", "two", 3, "ignored", "dangling")
	if len(m) != 2 {
		t.Fatalf("expected 2 fields, got %v", m)
	}
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected fields %v", m)
	}
}

type codedErr struct{ cause error }

func (e *codedErr) Error() string { return "ERR_X: outer" }
func (e *codedErr) Unwrap() error { return e.cause }

func TestErrorChainFields(t *testing.T) {
	root := stderrors.New("connection refused")
	err := &codedErr{cause: fmt.Errorf("query users: %w", root)}

	f := ErrorChainFields(err)
	if f[FieldError] != "ERR_X: outer" {
		t.Errorf("unexpected error field %v", f[FieldError])
	}
	chain, ok := f[FieldCauseChain].([]string)
	if !ok {
		t.Fatalf("expected cause chain, got %v", f[FieldCauseChain])
	}
	want := []string{"query users: connection refused", "connection refused"}
	if len(chain) != len(want) || chain[0] != want[0] || chain[1] != want[1] {
		t.Errorf("expected %v, got %v", want, chain)
	}
}

func TestErrorChainFields_NoCause(t *testing.T) {
	f := ErrorChainFields(stderrors.New("plain"))
	if _, ok := f[FieldCauseChain]; ok {
		t.Error("expected no cause chain")
	}
	if len(ErrorChainFields(nil)) != 0 {
		t.Error("expected no fields for nil")
	}
}

func TestErrorChainFields_Joined(t *testing.T) {
	err := fmt.Errorf("wrap: %w", stderrors.Join(stderrors.New("a"), stderrors.New("b")))
	chain := ErrorChainFields(err)[FieldCauseChain].([]string)
	if len(chain) != 2 || chain[1] != "a" {
		t.Errorf("expected first joined branch to be followed, got %v", chain)
	}
}

func TestDurationFields(t *testing.T) {
	f := DurationFields(1500 * time.Millisecond)
	if f[FieldDuration] != int64(1500) {
		t.Errorf("expected 1500, got %v", f[FieldDuration])
	}
}

func TestMerge(t *testing.T) {
	m := Merge(Fields("a", 1, "b", 2), nil, Fields("b", 3))
	if m["a"] != 1 || m["b"] != 3 {
		t.Errorf("unexpected merge result %v", m)
	}
}
