package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/meghashyamc/fingerblaster/geometry"
	"github.com/meghashyamc/fingerblaster/gesture"
	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"
const keyConfigDir = "CONFIG_DIR"
const configDirName = "config"

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	viperConfig := viper.New()
	setDefaults(viperConfig)

	configPath, err := findConfigFile(env)
	if err != nil {
		slog.Warn("no config file found, using defaults and environment variables", "env", env, "err", err.Error())
	} else {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Values match the original game window and hand-tracking tuning.
func setDefaults(v *viper.Viper) {
	v.SetDefault("screen.width", 900)
	v.SetDefault("screen.height", 700)
	v.SetDefault("player.height", 40)
	v.SetDefault("gesture.pinch_threshold", gesture.DefaultPinchThreshold)
	v.SetDefault("gesture.input_x_min", 0.12)
	v.SetDefault("gesture.input_x_max", 0.88)
	v.SetDefault("gesture.input_y_min", 0.2)
	v.SetDefault("gesture.input_y_max", 0.8)
	v.SetDefault("log.level", "info")
}

func (c *Config) validate() error {
	if c.GetScreenWidth() <= 0 || c.GetScreenHeight() <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.GetScreenWidth(), c.GetScreenHeight())
	}
	if _, err := gesture.NewFingerMapper(c.GetFingerCalibration()); err != nil {
		return err
	}

	return nil
}

func (c *Config) GetScreenWidth() int {
	screenWidth := c.config.GetInt("SCREEN_WIDTH")
	if screenWidth == 0 {
		screenWidth = c.config.GetInt("screen.width")
	}

	return screenWidth
}

func (c *Config) GetScreenHeight() int {
	screenHeight := c.config.GetInt("SCREEN_HEIGHT")
	if screenHeight == 0 {
		screenHeight = c.config.GetInt("screen.height")
	}

	return screenHeight
}

func (c *Config) GetPlayerHeight() int {
	playerHeight := c.config.GetInt("PLAYER_HEIGHT")
	if playerHeight == 0 {
		playerHeight = c.config.GetInt("player.height")
	}

	return playerHeight
}

func (c *Config) GetPinchThreshold() float64 {
	return c.getFloat("PINCH_THRESHOLD", "gesture.pinch_threshold")
}

// GetFingerCalibration maps the configured camera region onto the playable
// screen area: full width, and from a third of the way down to half a player
// height above the bottom.
func (c *Config) GetFingerCalibration() gesture.Calibration {
	screenWidth := float64(c.GetScreenWidth())
	screenHeight := float64(c.GetScreenHeight())

	return gesture.Calibration{
		InputX: geometry.Bounds{
			Min: c.getFloat("GESTURE_INPUT_X_MIN", "gesture.input_x_min"),
			Max: c.getFloat("GESTURE_INPUT_X_MAX", "gesture.input_x_max"),
		},
		InputY: geometry.Bounds{
			Min: c.getFloat("GESTURE_INPUT_Y_MIN", "gesture.input_y_min"),
			Max: c.getFloat("GESTURE_INPUT_Y_MAX", "gesture.input_y_max"),
		},
		OutputX: geometry.Bounds{Min: 0, Max: screenWidth},
		OutputY: geometry.Bounds{
			Min: float64(int(screenHeight) / 3),
			Max: screenHeight - float64(c.GetPlayerHeight()/2),
		},
	}
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}

	return logLevel
}

// getFloat prefers the environment key when it is set, so an explicit 0 still wins.
func (c *Config) getFloat(envKey, fileKey string) float64 {
	if c.config.IsSet(envKey) {
		return c.config.GetFloat64(envKey)
	}

	return c.config.GetFloat64(fileKey)
}

// findConfigFile returns config.<env>.yaml from CONFIG_DIR when that is set,
// otherwise from the nearest "config" directory at or above the working directory.
func findConfigFile(env string) (string, error) {
	fileName := fmt.Sprintf("config.%s.yaml", env)

	dir := os.Getenv(keyConfigDir)
	if len(dir) == 0 {
		var err error
		if dir, err = nearestConfigDir(); err != nil {
			return "", err
		}
	}

	configPath := filepath.Join(dir, fileName)
	if _, err := os.Stat(configPath); err != nil {
		return "", fmt.Errorf("config file %s: %w", configPath, err)
	}

	return configPath, nil
}

func nearestConfigDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %q directory at or above the working directory", configDirName)
		}
		dir = parent
	}
}
