package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Paths are the XDG base directories for exiled.
type Paths struct {
	Data   string // ~/.local/share/exiled
	Config string // ~/.config/exiled
	Cache  string // ~/.cache/exiled
	State  string // ~/.local/state/exiled
}

// GetPaths resolves Paths from the XDG_* variables, falling back to the
// usual locations under $HOME (%APPDATA% on Windows).
func GetPaths() *Paths {
	return &Paths{
		Data:   xdgDir("XDG_DATA_HOME", ".local", "share"),
		Config: xdgDir("XDG_CONFIG_HOME", ".config"),
		Cache:  xdgDir("XDG_CACHE_HOME", ".cache"),
		State:  xdgDir("XDG_STATE_HOME", ".local", "state"),
	}
}

func xdgDir(env string, home ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return filepath.Join(dir, "exiled")
	}
	if runtime.GOOS == "windows" {
		base := os.Getenv("APPDATA")
		if env == "XDG_CACHE_HOME" {
			base = filepath.Join(base, "cache")
		}
		return filepath.Join(base, "exiled")
	}
	return filepath.Join(append(append([]string{os.Getenv("HOME")}, home...), "exiled")...)
}

// EnsurePaths creates every directory.
func (p *Paths) EnsurePaths() error {
	for _, dir := range []string{p.Data, p.Config, p.Cache, p.State} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// LogPath is where log files are written.
func (p *Paths) LogPath() string {
	return filepath.Join(p.State, "log")
}

// ScenarioPath is searched for scenario files given by bare name.
func (p *Paths) ScenarioPath() string {
	return filepath.Join(p.Data, "scenarios")
}

// GlobalConfigPath returns the path of the global config file.
func GlobalConfigPath() string {
	return filepath.Join(GetConfigDir(), "exiled.jsonc")
}

// ProjectConfigPath returns the path of a project's config file.
func ProjectConfigPath(directory string) string {
	return filepath.Join(directory, ".exiled", "exiled.jsonc")
}
