package pipeline

import "time"

// FileStatus is the outcome of processing one source file.
type FileStatus string

const (
	StatusRendered FileStatus = "rendered"
	StatusSkipped  FileStatus = "skipped" // no docstring records
)

// FileResult records what happened to a single source file.
type FileResult struct {
	Source  string     `json:"source"`         // Path relative to the project root
	Page    string     `json:"page,omitempty"` // Path relative to the output dir
	Status  FileStatus `json:"status"`
	Records int        `json:"records"`
}

// Summary aggregates one build run.
type Summary struct {
	FilesScanned int           `json:"files_scanned"`
	PagesWritten int           `json:"pages_written"`
	FilesSkipped int           `json:"files_skipped"`
	Records      int           `json:"records"`
	Duration     time.Duration `json:"duration"`
	Files        []FileResult  `json:"files"`
}

func (s *Summary) add(r FileResult) {
	s.FilesScanned++
	s.Records += r.Records
	switch r.Status {
	case StatusRendered:
		s.PagesWritten++
	case StatusSkipped:
		s.FilesSkipped++
	}
	s.Files = append(s.Files, r)
}
