// ABOUTME: Menu file discovery: flag, $PRIORITYNAV_CONFIG, project-local file, then user config dir
// ABOUTME: An empty result means the built-in sample menu is used

package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfig names the environment variable holding a menu file path.
	EnvConfig = "PRIORITYNAV_CONFIG"

	projectFileName = ".prioritynav.yaml"
	appDirName      = "prioritynav"
	userFileName    = "menu.yaml"
)

// UserConfigFile returns the per-user menu file path (it may not exist).
func UserConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appDirName, userFileName)
}

// ProjectConfigFile returns the project-local menu file path under root.
func ProjectConfigFile(root string) string {
	return filepath.Join(root, projectFileName)
}

// Resolve picks the menu file to load. An explicit path always wins, even
// when it does not exist, so that a typo is reported instead of ignored.
func Resolve(explicit, projectRoot string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env
	}
	for _, p := range []string{ProjectConfigFile(projectRoot), UserConfigFile()} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadOrDefault loads path, or returns Default when path is empty.
func LoadOrDefault(path string) (*MenuFile, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
