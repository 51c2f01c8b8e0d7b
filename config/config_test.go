package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/meghashyamc/fingerblaster/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_LocalFile(t *testing.T) {
	cfg, err := Load("local")
	require.NoError(t, err)

	assert.Equal(t, 900, cfg.GetScreenWidth())
	assert.Equal(t, 700, cfg.GetScreenHeight())
	assert.Equal(t, 40, cfg.GetPlayerHeight())
	assert.InDelta(t, 0.04, cfg.GetPinchThreshold(), 1e-12)
	assert.Equal(t, "debug", cfg.GetLogLevel())

	calibration := cfg.GetFingerCalibration()
	assert.Equal(t, geometry.Bounds{Min: 0.12, Max: 0.88}, calibration.InputX)
	assert.Equal(t, geometry.Bounds{Min: 0.2, Max: 0.8}, calibration.InputY)
	assert.Equal(t, geometry.Bounds{Min: 0, Max: 900}, calibration.OutputX)
	assert.Equal(t, geometry.Bounds{Min: 233, Max: 680}, calibration.OutputY)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SCREEN_WIDTH", "1280")
	t.Setenv("PINCH_THRESHOLD", "0.025")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("local")
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.GetScreenWidth())
	assert.InDelta(t, 0.025, cfg.GetPinchThreshold(), 1e-12)
	assert.Equal(t, "warn", cfg.GetLogLevel())
	assert.Equal(t, 1280.0, cfg.GetFingerCalibration().OutputX.Max)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("does-not-exist")
	require.NoError(t, err)

	assert.Equal(t, 900, cfg.GetScreenWidth())
	assert.Equal(t, "info", cfg.GetLogLevel())
	assert.InDelta(t, 0.04, cfg.GetPinchThreshold(), 1e-12)
}

func TestLoad_DegenerateCalibration(t *testing.T) {
	t.Setenv("GESTURE_INPUT_X_MAX", "0.12")

	_, err := Load("local")
	require.ErrorIs(t, err, geometry.ErrDegenerateRange)
}

func TestFindConfigFile(t *testing.T) {
	path, err := findConfigFile("local")
	require.NoError(t, err)
	assert.Equal(t, "config.local.yaml", filepath.Base(path))
	assert.Equal(t, configDirName, filepath.Base(filepath.Dir(path)))

	_, err = findConfigFile("does-not-exist")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad_ConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.arcade.yaml"), []byte("screen:\n  width: 1024\n  height: 768\n"), 0o644))
	t.Setenv(keyConfigDir, dir)

	cfg, err := Load("arcade")
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.GetScreenWidth())
	assert.Equal(t, 768, cfg.GetScreenHeight())
	assert.Equal(t, "info", cfg.GetLogLevel(), "keys missing from the file keep their defaults")
}

func TestLoad_UnreadableConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.broken.yaml"), []byte("screen: [unclosed\n"), 0o644))
	t.Setenv(keyConfigDir, dir)

	_, err := Load("broken")
	require.Error(t, err)
}
