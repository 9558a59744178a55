package llogs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/tunepath-askeva/eram/metal/env"
)

// FilesLogs writes JSON records to one file per day. The console keeps
// stdout for the operator, so nothing is echoed there.
type FilesLogs struct {
	path   string
	file   *os.File
	logger *slog.Logger
}

// MakeFilesLogs opens today's file and installs its logger as the slog
// default, tagged with the app name and environment type.
func MakeFilesLogs(environment *env.Environment) (Driver, error) {
	path := LogPath(environment.Logs, time.Now())

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logs: create directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logs: open %s: %w", path, err)
	}

	logger := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level: ParseLevel(environment.Logs.Level),
	})).With("app", environment.App.Name, "env", environment.App.Type)

	slog.SetDefault(logger)

	return &FilesLogs{path: path, file: file, logger: logger}, nil
}

// LogPath fills the directory pattern's %s with the UTC date of now.
func LogPath(logs env.LogsEnvironment, now time.Time) string {
	return fmt.Sprintf(logs.Dir, now.UTC().Format(logs.DateFormat))
}

func (f *FilesLogs) Path() string {
	return f.path
}

func (f *FilesLogs) Logger() *slog.Logger {
	return f.logger
}

// Close reports whether the file was open and closed cleanly.
func (f *FilesLogs) Close() bool {
	if f == nil || f.file == nil {
		return false
	}

	err := f.file.Close()
	f.file = nil

	if err != nil {
		fmt.Fprintln(os.Stderr, "logs: close:", err)

		return false
	}

	return true
}
