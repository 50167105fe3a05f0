package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileNames are the per-directory config files FindConfig looks for, in order.
var ConfigFileNames = []string{".notes.yaml", ".notes.yml"}

// ErrConfigNotFound is returned by FindConfig when no config file exists
// between startDir and the filesystem root.
var ErrConfigNotFound = errors.New("config file not found")

// ResolveBaseDir turns the configured base directory into an absolute path.
// An empty value means the current working directory.
func ResolveBaseDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(os.ExpandEnv(dir))
	if err != nil {
		return "", fmt.Errorf("failed to resolve base directory %q: %w", dir, err)
	}
	return abs, nil
}

// FindConfig recursively looks upwards from startDir for a config file.
// If found, returns its absolute path.
func FindConfig(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		for _, name := range ConfigFileNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", ErrConfigNotFound
}
