package portfolio

import "errors"

// ErrResumeNotFound is returned when no resume exists under the media root.
var ErrResumeNotFound = errors.New("resume not found")
