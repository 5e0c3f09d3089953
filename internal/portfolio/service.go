package portfolio

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio-web/internal/extract"
	"portfolio-web/internal/shared/storage/object"
	"portfolio-web/internal/shared/telemetry"
)

// Service resolves the resume inside the media root.
type Service struct {
	Store        object.ObjectStore
	DownloadName string
}

// NewService constructs a Service. An empty downloadName falls back to DefaultDownloadName.
func NewService(store object.ObjectStore, downloadName string) *Service {
	if strings.TrimSpace(downloadName) == "" {
		downloadName = DefaultDownloadName
	}
	return &Service{Store: store, DownloadName: downloadName}
}

// ResumePath returns the filesystem path the resume is expected at.
func (s *Service) ResumePath() string {
	return s.Store.Path(resumeKey)
}

// OpenResume checks the resume exists and opens it. The caller must close Body.
func (s *Service) OpenResume(ctx context.Context) (*object.Object, error) {
	if _, err := s.Store.Stat(ctx, resumeKey); err != nil {
		return nil, mapStoreError("stat resume", err)
	}

	obj, err := s.Store.Open(ctx, resumeKey)
	if err != nil {
		return nil, mapStoreError("open resume", err)
	}
	return obj, nil
}

// Available reports whether the resume can currently be served.
func (s *Service) Available(ctx context.Context) bool {
	_, err := s.Store.Stat(ctx, resumeKey)
	return err == nil
}

// Info describes the resume. A file that does not parse as PDF is reported
// with Valid=false rather than as an error.
func (s *Service) Info(ctx context.Context) (ResumeInfo, error) {
	stat, err := s.Store.Stat(ctx, resumeKey)
	if err != nil {
		return ResumeInfo{}, mapStoreError("stat resume", err)
	}

	info := ResumeInfo{
		FileName:     ResumeFileName,
		DownloadName: s.DownloadName,
		DownloadURL:  DownloadPath,
		SizeBytes:    stat.SizeBytes,
		ModifiedAt:   stat.ModTime,
	}

	summary, err := extract.Inspect(ctx, s.Store, resumeKey)
	switch {
	case err == nil:
		info.Valid = true
		info.Pages = summary.Pages
		info.Title = summary.Title
	case errors.Is(err, object.ErrNotFound):
		return ResumeInfo{}, mapStoreError("inspect resume", err)
	case ctx.Err() != nil:
		return ResumeInfo{}, ctx.Err()
	default:
		telemetry.Warn("resume.inspect_failed", map[string]any{
			"path":  stat.Path,
			"error": err,
		})
	}
	return info, nil
}

func mapStoreError(op string, err error) error {
	if errors.Is(err, object.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, ErrResumeNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
