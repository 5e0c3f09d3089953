package portfolio_test

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"testing"

	"portfolio-web/internal/portfolio"
	"portfolio-web/internal/shared/storage/object/local"
)

func TestServiceResumePath(t *testing.T) {
	svc := portfolio.NewService(local.New("/data/media"), "")
	if got := svc.ResumePath(); got != "/data/media/resumes/your_resume.pdf" {
		t.Fatalf("unexpected resume path: %s", got)
	}
	if svc.DownloadName != portfolio.DefaultDownloadName {
		t.Fatalf("expected default download name, got %q", svc.DownloadName)
	}
}

func TestServiceOpenResume(t *testing.T) {
	mediaRoot := t.TempDir()
	seedResume(t, mediaRoot, []byte("%PDF-1.4 body"))
	svc := portfolio.NewService(local.New(mediaRoot), "CV.pdf")

	if !svc.Available(context.Background()) {
		t.Fatalf("expected resume to be available")
	}
	obj, err := svc.OpenResume(context.Background())
	if err != nil {
		t.Fatalf("open resume: %v", err)
	}
	defer obj.Body.Close()
	data, err := io.ReadAll(obj.Body)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "%PDF-1.4 body" {
		t.Fatalf("unexpected data: %q", data)
	}
	if obj.Path != filepath.Join(mediaRoot, "resumes", "your_resume.pdf") {
		t.Fatalf("unexpected object path: %s", obj.Path)
	}
}

func TestServiceOpenResumeMissing(t *testing.T) {
	svc := portfolio.NewService(local.New(t.TempDir()), "")

	if svc.Available(context.Background()) {
		t.Fatalf("expected resume to be unavailable")
	}
	if _, err := svc.OpenResume(context.Background()); !errors.Is(err, portfolio.ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}
	if _, err := svc.Info(context.Background()); !errors.Is(err, portfolio.ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound from info, got %v", err)
	}
}

func TestServiceOpenResumeOtherErrorsAreNotNotFound(t *testing.T) {
	svc := portfolio.NewService(&fakeStore{openErr: fs.ErrPermission}, "")

	_, err := svc.OpenResume(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, portfolio.ErrResumeNotFound) {
		t.Fatalf("permission error must not map to not found: %v", err)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("expected wrapped permission error, got %v", err)
	}
}
