package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scram-ng/scram-core/report"
)

func TestLoadSettings_DefaultsWithNoConfig(t *testing.T) {
	settings, err := loadSettings("")
	require.NoError(t, err)
	assert.Equal(t, 1.0, settings.MissionTime)
}

func TestLoadSettings_ConfigFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mission_time: 5\nnum_trials: 50\n"), 0o644))

	settings, err := loadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 5.0, settings.MissionTime)
	assert.Equal(t, 50, settings.NumTrials)
}

func TestWriteReport_ToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yaml")
	r := report.New("demo", time.Now())
	require.NoError(t, writeReport(r, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "demo")
}

func TestPrintError_WritesToStderr(t *testing.T) {
	var buf bytes.Buffer
	old := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	printError(assert.AnError)
	w.Close()
	os.Stderr = old
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "error:")
}
