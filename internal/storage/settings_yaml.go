package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"pomodoro/internal/core/model"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkMinutes           int  `yaml:"work_minutes"`
	ShortBreakMinutes     int  `yaml:"short_break_minutes"`
	LongBreakMinutes      int  `yaml:"long_break_minutes"`
	CyclesBeforeLongBreak int  `yaml:"cycles_before_long_break"`
	AutoStartBreaks       bool `yaml:"auto_start_breaks"`
	AutoStartWork         bool `yaml:"auto_start_work"`
}

// LoadSettings reads the timer configuration from YAML.
// If the config file does not exist, defaults are returned.
func LoadSettings(appName string) (model.Config, error) {
	configPath, err := resolveSettingsPath(appName)
	if err != nil {
		return model.DefaultConfig(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads the timer configuration from the given path.
func LoadSettingsFile(path string) (model.Config, error) {
	config := model.DefaultConfig()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&config, fileData)
	return config, nil
}

// SaveSettings writes the timer configuration to YAML.
func SaveSettings(appName string, config model.Config) error {
	configPath, err := resolveSettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, config)
}

// SaveSettingsFile writes the timer configuration to the given path.
func SaveSettingsFile(path string, config model.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		WorkMinutes:           int(config.WorkDuration / time.Minute),
		ShortBreakMinutes:     int(config.ShortBreakDuration / time.Minute),
		LongBreakMinutes:      int(config.LongBreakDuration / time.Minute),
		CyclesBeforeLongBreak: config.CyclesBeforeLongBreak,
		AutoStartBreaks:       config.AutoStartBreaks,
		AutoStartWork:         config.AutoStartWork,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func resolveSettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// applyYamlSettings copies only usable values over the defaults, so a
// partial or damaged file degrades field by field.
func applyYamlSettings(config *model.Config, fileData yamlSettings) {
	if fileData.WorkMinutes > 0 {
		config.WorkDuration = time.Duration(fileData.WorkMinutes) * time.Minute
	}
	if fileData.ShortBreakMinutes > 0 {
		config.ShortBreakDuration = time.Duration(fileData.ShortBreakMinutes) * time.Minute
	}
	if fileData.LongBreakMinutes > 0 {
		config.LongBreakDuration = time.Duration(fileData.LongBreakMinutes) * time.Minute
	}
	if fileData.CyclesBeforeLongBreak >= 1 {
		config.CyclesBeforeLongBreak = fileData.CyclesBeforeLongBreak
	}
	config.AutoStartBreaks = fileData.AutoStartBreaks
	config.AutoStartWork = fileData.AutoStartWork
}
