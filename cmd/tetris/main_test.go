package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// execute runs the root command with fresh flag values and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	flagFPS, flagSeed = 0, 0
	flagConfig, flagDifficulty, flagLogFile = "", "", ""
	flagDebug, flagDefaults = false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigDefaults(t *testing.T) {
	out, err := execute(t, "config", "--defaults")
	require.NoError(t, err)
	assert.Equal(t, string(config.DefaultYAML()), out)
}

func TestConfigEffective(t *testing.T) {
	out, err := execute(t, "config", "--difficulty", "hard", "--fps", "30")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# source: embedded\n"), out)

	var cfg config.TetrisConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.InDelta(t, 0.3, cfg.Timing.BaseInterval, 1e-9)
	assert.Equal(t, 30, cfg.Display.TickRate)
	assert.Equal(t, 10, cfg.Board.Width)
}

func TestConfigCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  width: 14\n"), 0o600))

	out, err := execute(t, "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "# source: "+path)
	assert.Contains(t, out, "width: 14")
}

func TestConfigErrors(t *testing.T) {
	_, err := execute(t, "config", "--difficulty", "insane")
	assert.ErrorContains(t, err, "unknown difficulty")

	_, err = execute(t, "config", "--fps", "1000")
	assert.ErrorContains(t, err, "tick_rate")

	_, err = execute(t, "config", "--config", "/does/not/exist.yaml")
	assert.ErrorContains(t, err, "failed to read")
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tetris.log")

	logger, closer, err := newLogger(path, true)
	require.NoError(t, err)
	logger.Debug("lines cleared", "count", 2)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tetris")
	assert.Contains(t, string(data), "lines cleared")
	assert.Contains(t, string(data), "count=2")
}

func TestNewLoggerDiscardsByDefault(t *testing.T) {
	logger, closer, err := newLogger("", false)
	require.NoError(t, err)
	logger.Info("nowhere")
	assert.NoError(t, closer.Close())
}
