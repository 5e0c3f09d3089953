package web

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoadTemplatesRendersHome(t *testing.T) {
	tmpl, err := LoadTemplates()
	if err != nil {
		t.Fatalf("load templates: %v", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, HomeTemplate, nil); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(strings.TrimSpace(out), "<!DOCTYPE html>") {
		t.Fatalf("expected html document, got %q", out[:min(len(out), 40)])
	}
	if !strings.Contains(out, `href="/download-resume"`) {
		t.Fatalf("expected resume download link in homepage")
	}
}
