package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "lcdnav"
	configFile = "config.yaml"
)

// GetConfigDir returns the OS-appropriate configuration directory for the
// application, e.g. ~/.config/lcdnav on Linux.
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user config directory: %w", err)
	}
	return filepath.Join(base, appName), nil
}

// GetConfigPath returns the full path to the default profile file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads and validates a profile from the given path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return &profile, nil
}

// LoadDefault loads the profile from the default location, falling back to
// the built-in demo profile when no file exists.
func LoadDefault() (*Profile, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultProfile(), nil
	}
	return Load(path)
}

// Save writes the profile to the given path, creating parent directories
// as needed. Writes go through a temp file so a crash cannot leave a
// half-written profile behind.
func Save(profile *Profile, path string) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid profile: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace profile: %w", err)
	}
	return nil
}
