package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() {
		os.Stdout = orig
	}()

	fn()

	_ = w.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("read output: %v", err)
	}
	return buf.String()
}

func TestWriteEmitsJSONLine(t *testing.T) {
	out := captureStdout(t, func() {
		Warn("resume.missing", map[string]any{
			"path":  "/data/media/resumes/your_resume.pdf",
			"error": errors.New("boom"),
			"level": "shadowed",
		})
	})

	line := strings.TrimSpace(out)
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("decode log line %q: %v", line, err)
	}
	if payload["level"] != "warn" {
		t.Fatalf("expected level warn, got %v", payload["level"])
	}
	if payload["msg"] != "resume.missing" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["error"] != "boom" {
		t.Fatalf("expected error string, got %v", payload["error"])
	}
	if payload["path"] != "/data/media/resumes/your_resume.pdf" {
		t.Fatalf("unexpected path: %v", payload["path"])
	}
	if _, ok := payload["ts"].(string); !ok {
		t.Fatalf("expected ts field")
	}
}
