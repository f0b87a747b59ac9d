package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_TextIncludesComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelInfo, Output: &buf}).WithComponent(ComponentDataset)
	l.Info("dataset loaded", FieldItems, 12)
	l.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "component=dataset") || !strings.Contains(out, "items=12") {
		t.Fatalf("unexpected output: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record should be filtered at info level: %q", out)
	}
	if l.Component() != ComponentDataset {
		t.Fatalf("Component() = %q", l.Component())
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelDebug, Format: "json", Output: &buf})
	l.Warn("net mismatch", NewFields().WithOperation(OpValidate).WithError(errors.New("boom")).ToSlice()...)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected a JSON record, got %q: %v", buf.String(), err)
	}
	if rec["component"] != ComponentApp || rec["operation"] != OpValidate || rec["error"] != "boom" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestFields_WithErrorNil(t *testing.T) {
	f := NewFields().WithError(nil).WithFilter("design", "planned").WithDataset(3, 4)
	if _, ok := f[FieldError]; ok {
		t.Fatal("nil error should not be recorded")
	}
	if len(f.ToSlice()) != 8 {
		t.Fatalf("expected 4 fields, got %v", f)
	}
}
