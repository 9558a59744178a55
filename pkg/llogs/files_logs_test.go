package llogs

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tunepath-askeva/eram/metal/env"
)

func TestFilesLogs(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	dir := t.TempDir()
	e := &env.Environment{
		App:  env.AppEnvironment{Name: "eram", Type: "local"},
		Logs: env.LogsEnvironment{Level: "warn", Dir: filepath.Join(dir, "nested", "log-%s.txt"), DateFormat: "2006"},
	}

	d, err := MakeFilesLogs(e)
	if err != nil {
		t.Fatalf("make logs: %v", err)
	}

	fl := d.(*FilesLogs)
	if !strings.HasPrefix(fl.Path(), dir) {
		t.Fatalf("path not in dir")
	}

	d.Logger().Info("dropped")
	slog.Warn("kept", "endpoint", "getClients")

	if !d.Close() {
		t.Fatalf("close")
	}

	if d.Close() {
		t.Fatalf("second close should report false")
	}

	raw, err := os.ReadFile(fl.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	log := string(raw)
	if strings.Contains(log, "dropped") || !strings.Contains(log, `"endpoint":"getClients"`) || !strings.Contains(log, `"app":"eram"`) {
		t.Fatalf("unexpected log %s", raw)
	}
}

func TestLogPath(t *testing.T) {
	logs := env.LogsEnvironment{Dir: "logs/eram-%s.log", DateFormat: "2006_01_02"}
	now := time.Date(2026, 3, 9, 23, 30, 0, 0, time.FixedZone("GST", -4*3600))

	if got := LogPath(logs, now); got != "logs/eram-2026_03_10.log" {
		t.Fatalf("path %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %s", in, got)
		}
	}
}
