package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfigPath names the environment variable that overrides discovery.
const EnvConfigPath = "CPEXPORT_CONFIG"

const fileName = "config.toml"

// ErrNotFound is returned by Discover when no config file exists.
var ErrNotFound = errors.New("config not found")

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./" + fileName
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "cpexport", fileName)
}

// SearchPaths lists the locations Discover tries when CPEXPORT_CONFIG is
// unset, in order.
func SearchPaths() []string {
	return []string{
		"./" + fileName,
		DefaultPath(),
		filepath.Join("/etc", "cpexport", fileName),
	}
}

// Discover finds the config file.
// Search order:
//  1. CPEXPORT_CONFIG (a file, or a directory holding config.toml)
//  2. ./config.toml (current directory)
//  3. $XDG_CONFIG_HOME/cpexport/config.toml
//  4. /etc/cpexport/config.toml
func Discover() (string, error) {
	// An explicit override must exist; no fallback to the search paths.
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		return resolveOverride(envPath)
	}

	paths := SearchPaths()
	for _, p := range paths {
		if isFile(p) {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}

func resolveOverride(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%s=%s: %w", EnvConfigPath, path, err)
	}
	if !info.IsDir() {
		return path, nil
	}

	candidate := filepath.Join(path, fileName)
	if !isFile(candidate) {
		return "", fmt.Errorf("%s=%s: no %s in directory: %w", EnvConfigPath, path, fileName, ErrNotFound)
	}
	return candidate, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
