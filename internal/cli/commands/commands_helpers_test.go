package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"arsipku/internal/config"
)

// withTempConfig redirects the session slot and the database into a temp
// dir so test artifacts never touch the real user config.
func withTempConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ARSIPKU_CONFIG_PATH", dir)
	return &config.Config{
		DatabasePath: filepath.Join(dir, "arsip.db"),
		DownloadDir:  dir,
	}
}

// withStdoutCapture swaps the command output writer for the duration of fn.
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
