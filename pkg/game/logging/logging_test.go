package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"islandnav/pkg/game/config"
)

func TestNew_Levels(t *testing.T) {
	cases := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"nonsense", zapcore.InfoLevel},
	}
	for _, tc := range cases {
		for _, format := range []string{"json", "console"} {
			log, err := New(config.LoggingConfig{Level: tc.level, Format: format})
			if err != nil {
				t.Fatalf("New(%s, %s) error: %v", tc.level, format, err)
			}
			if !log.Core().Enabled(tc.want) {
				t.Errorf("New(%s, %s) does not log at %s", tc.level, format, tc.want)
			}
			if tc.want > zapcore.DebugLevel && log.Core().Enabled(tc.want-1) {
				t.Errorf("New(%s, %s) logs below %s", tc.level, format, tc.want)
			}
		}
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "islandnav.log")
	log, err := New(config.LoggingConfig{Level: "info", Format: "json", File: path})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	log.Info("hello")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Errorf("log file = %q, want a hello entry", data)
	}
}
