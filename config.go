package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is read from ~/.mapterm.toml. Missing file or bad fields fall back
// to defaults; the editor never refuses to start over configuration.
type Config struct {
	SaveDirectory string `toml:"save_directory"`
	RootLabel     string `toml:"root_label"`
	Confirmations bool   `toml:"confirmations"`
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory: "",
		RootLabel:     "Root",
		Confirmations: true,
	}
}

func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}
	return loadConfigFile(filepath.Join(homeDir, ".mapterm.toml"), homeDir)
}

func loadConfigFile(path, homeDir string) *Config {
	config := defaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return defaultConfig()
	}
	if config.RootLabel == "" {
		config.RootLabel = "Root"
	}
	if dir := config.SaveDirectory; dir != "" {
		if strings.HasPrefix(dir, "~") {
			dir = filepath.Join(homeDir, strings.TrimPrefix(dir, "~"))
		}
		if !filepath.IsAbs(dir) {
			if abs, err := filepath.Abs(dir); err == nil {
				dir = abs
			}
		}
		config.SaveDirectory = dir
	}
	return config
}

// GetSavePath resolves a filename against the configured save directory,
// creating the directory if needed.
func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
