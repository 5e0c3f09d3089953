package portfolio

import (
	"path/filepath"
	"time"
)

const (
	// ResumeDir is the media subdirectory holding the resume.
	ResumeDir = "resumes"
	// ResumeFileName is the on-disk name of the resume.
	ResumeFileName = "your_resume.pdf"
	// DefaultDownloadName is the filename advertised to browsers.
	DefaultDownloadName = "My_Portfolio_Resume.pdf"

	HomePath     = "/"
	DownloadPath = "/download-resume"
	InfoPath     = "/resume"

	resumeContentType = "application/pdf"
)

// resumeKey is the storage key of the resume relative to the media root.
var resumeKey = filepath.Join(ResumeDir, ResumeFileName)

// ResumeInfo is the JSON view of the resume served by the info endpoint.
type ResumeInfo struct {
	FileName     string    `json:"fileName"`
	DownloadName string    `json:"downloadName"`
	DownloadURL  string    `json:"downloadUrl"`
	SizeBytes    int64     `json:"sizeBytes"`
	ModifiedAt   time.Time `json:"modifiedAt"`
	Valid        bool      `json:"valid"`
	Pages        int       `json:"pages,omitempty"`
	Title        string    `json:"title,omitempty"`
}
