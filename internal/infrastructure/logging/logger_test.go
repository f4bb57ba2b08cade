package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	cblog "github.com/charmbracelet/log"

	"github.com/xala-technologies/xala-cli/internal/ports"
)

func TestLoggerIncludesCorrelationIDAndLayer(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{
		Writer:     &buf,
		Level:      "debug",
		Formatter:  cblog.JSONFormatter,
		Layer:      "infrastructure",
		Component:  "theme_loader",
		TimeFormat: "2006-01-02T15:04:05Z07:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := ports.WithCorrelationID(context.Background(), "abc123")
	logger.Info(ctx, "loaded theme", "path", "/tmp/acme.yaml")

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected log output, got empty string")
	}

	payload := make(map[string]interface{})
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("failed to parse log line %q: %v", line, err)
	}

	if payload["layer"] != "infrastructure" {
		t.Fatalf("expected layer to be infrastructure, got %v", payload["layer"])
	}
	if payload["component"] != "theme_loader" {
		t.Fatalf("expected component field, got %v", payload["component"])
	}
	if payload["correlation_id"] != "abc123" {
		t.Fatalf("expected correlation_id to be abc123, got %v", payload["correlation_id"])
	}
	if payload["path"] != "/tmp/acme.yaml" {
		t.Fatalf("expected path to be recorded, got %v", payload["path"])
	}
	if payload["msg"] != "loaded theme" {
		t.Fatalf("expected message to be recorded, got %v", payload["msg"])
	}
}

func TestLoggerWithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{
		Writer:    &buf,
		Formatter: cblog.JSONFormatter,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	child := logger.With("component", "generator").(*Logger)
	child.Warn(context.Background(), "format skipped", "format", "css")

	line := strings.TrimSpace(buf.String())
	payload := make(map[string]interface{})
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("failed to parse log line: %v", err)
	}

	if payload["component"] != "generator" {
		t.Fatalf("expected component=generator, got %v", payload["component"])
	}
	if payload["format"] != "css" {
		t.Fatalf("expected format css, got %v", payload["step_id"])
	}
	if payload["layer"] != "infrastructure" {
		t.Fatalf("expected default layer infrastructure, got %v", payload["layer"])
	}
}

func TestNoOpLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{
		Writer:    &buf,
		Formatter: cblog.JSONFormatter,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noOp := NewNoOpLogger()
	noOp.Info(context.Background(), "hello world")

	if buf.Len() != 0 {
		t.Fatalf("expected no output from noop logger, got %s", buf.String())
	}

	// ensure With on noop doesn't panic and returns the same instance
	if noOp.With("key", "value") != noOp {
		t.Fatalf("expected With to return same no-op logger instance")
	}

	// Base logger still writes.
	logger.Info(context.Background(), "emitted")
	if buf.Len() == 0 {
		t.Fatal("expected base logger to write output")
	}
}

func TestBufferedLoggerStoresAndFlushes(t *testing.T) {
	buffer := NewEventBuffer(10)
	bufLogger := NewBufferedLogger(buffer)

	ctx := ports.WithCorrelationID(context.Background(), "buffered")
	bufLogger.Info(ctx, "booting", "component", "cli")
	bufLogger.With("component", "config_store").Error(ctx, "failed", "attempt", 1)

	var output bytes.Buffer
	delegate, err := New(Options{Writer: &output, Formatter: cblog.JSONFormatter})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	buffer.Flush(delegate)

	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(lines))
	}

	var first map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("failed to parse first log line: %v", err)
	}
	if first["msg"] != "booting" || first["component"] != "cli" {
		t.Fatalf("unexpected first event payload: %+v", first)
	}

	var second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("failed to parse second log line: %v", err)
	}
	if second["msg"] != "failed" || second["component"] != "config_store" {
		t.Fatalf("unexpected second event payload: %+v", second)
	}
	if second["correlation_id"] != "buffered" {
		t.Fatalf("expected correlation id to be preserved, got %v", second["correlation_id"])
	}
}

func TestLoggerSuccessTagsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{
		Writer:    &buf,
		Formatter: cblog.JSONFormatter,
		Component: "generator",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Success(context.Background(), "theme generated", "theme", "acme")

	payload := make(map[string]interface{})
	if err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &payload); err != nil {
		t.Fatalf("failed to parse log line: %v", err)
	}
	if payload["status"] != "success" {
		t.Fatalf("expected status=success, got %v", payload["status"])
	}
	if payload["level"] != "info" {
		t.Fatalf("expected info level, got %v", payload["level"])
	}
	if payload["theme"] != "acme" {
		t.Fatalf("expected theme field, got %v", payload["theme"])
	}
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestBufferedLoggerReplaysSuccess(t *testing.T) {
	buffer := NewEventBuffer(2)
	bufLogger := NewBufferedLogger(buffer)
	bufLogger.Info(context.Background(), "dropped")
	bufLogger.Info(context.Background(), "kept")
	bufLogger.Success(context.Background(), "done")

	var output bytes.Buffer
	delegate, err := New(Options{Writer: &output, Formatter: cblog.JSONFormatter})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	buffer.Flush(delegate)

	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected the oldest entry to be evicted, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], `"status":"success"`) {
		t.Fatalf("expected success status in %s", lines[1])
	}
}
