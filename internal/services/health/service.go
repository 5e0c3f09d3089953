package health

import "context"

// ResumeChecker reports whether the resume can be served.
type ResumeChecker interface {
	Available(ctx context.Context) bool
}

// Service encapsulates health-related checks.
type Service struct {
	resume ResumeChecker
}

// NewService constructs a new health service. A nil checker skips the resume check.
func NewService(resume ResumeChecker) *Service {
	return &Service{resume: resume}
}

// Status returns the health payload. The process is healthy even when the
// resume is missing; that state is reported separately.
func (s *Service) Status(ctx context.Context) map[string]bool {
	out := map[string]bool{"ok": true}
	if s != nil && s.resume != nil {
		out["resumeAvailable"] = s.resume.Available(ctx)
	}
	return out
}
