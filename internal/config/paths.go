package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "c2f"

// Paths holds the directories c2f reads from and writes to
type Paths struct {
	ConfigDir  string // Directory holding config.yaml
	ConfigFile string // Default config file
	DataDir    string // Directory for the history database
	DBFile     string // Default history database
}

// GetPaths resolves the platform directories. Nothing is created on disk.
func GetPaths() (*Paths, error) {
	configDir, err := configDir()
	if err != nil {
		return nil, err
	}
	dataDir, err := dataDir()
	if err != nil {
		return nil, err
	}

	return &Paths{
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, "config.yaml"),
		DataDir:    dataDir,
		DBFile:     filepath.Join(dataDir, "history.db"),
	}, nil
}

func configDir() (string, error) {
	if dir := os.Getenv("C2F_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, appName), nil
}

func dataDir() (string, error) {
	if dir := os.Getenv("C2F_DATA_DIR"); dir != "" {
		return dir, nil
	}

	switch runtime.GOOS {
	case "windows", "darwin":
		// UserConfigDir is %AppData% and ~/Library/Application Support here
		base, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, appName, "data"), nil
	default: // Linux and others
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", appName), nil
	}
}
