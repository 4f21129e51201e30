package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that appends to a file
func NewFileLogger(path string, level log.Level) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		f.Close()
	}

	return NewWithLevel(f, level), cleanup, nil
}

// NewMultiLogger creates a logger that writes to multiple outputs
func NewMultiLogger(level log.Level, writers ...io.Writer) *Logger {
	return NewWithLevel(io.MultiWriter(writers...), level)
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// BuildStarted logs the start of a site build
func (l *Logger) BuildStarted(buildID, contentDir, outputDir string) {
	l.Info("build started",
		"build_id", buildID,
		"content_dir", contentDir,
		"output_dir", outputDir)
}

// BuildCompleted logs the end of a site build
func (l *Logger) BuildCompleted(buildID string, pages int, errors int, duration time.Duration) {
	l.Info("build completed",
		"build_id", buildID,
		"pages", pages,
		"errors", errors,
		"duration", duration.Round(time.Millisecond))
}

// PageGenerated logs a page written to disk
func (l *Logger) PageGenerated(source, dest, title string) {
	l.Info("page generated",
		"source", source,
		"dest", dest,
		"title", title)
}

// PageError logs a page that could not be generated
func (l *Logger) PageError(source string, err error) {
	l.Error("page failed",
		"source", source,
		"error", err)
}

// StaticCopied logs the static asset copy
func (l *Logger) StaticCopied(src, dest string, files int) {
	l.Info("static copied",
		"source", src,
		"dest", dest,
		"files", files)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(path, contentDir, outputDir, basePath string) {
	l.Debug("config loaded",
		"path", path,
		"content_dir", contentDir,
		"output_dir", outputDir,
		"base_path", basePath)
}

// Skipped logs when a file is skipped
func (l *Logger) Skipped(file, reason string) {
	l.Debug("file skipped",
		"file", file,
		"reason", reason)
}
