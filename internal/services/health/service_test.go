package health

import (
	"context"
	"testing"
)

type stubChecker bool

func (s stubChecker) Available(context.Context) bool { return bool(s) }

func TestStatusReportsResumeAvailability(t *testing.T) {
	got := NewService(stubChecker(false)).Status(context.Background())
	if !got["ok"] {
		t.Fatalf("expected ok=true")
	}
	if avail, ok := got["resumeAvailable"]; !ok || avail {
		t.Fatalf("expected resumeAvailable=false, got %v", got)
	}
}

func TestStatusWithoutChecker(t *testing.T) {
	got := NewService(nil).Status(context.Background())
	if _, ok := got["resumeAvailable"]; ok {
		t.Fatalf("expected no resume field, got %v", got)
	}
}
