package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
)

// Environment variables read by Load.
const (
	EnvConfig        = "EXILED_CONFIG"
	EnvConfigContent = "EXILED_CONFIG_CONTENT"
	EnvConfigDir     = "EXILED_CONFIG_DIR"
	EnvLogLevel      = "EXILED_LOG_LEVEL"
	EnvPolicyFile    = "EXILED_POLICY_FILE"
)

var (
	envPattern  = regexp.MustCompile(`\{env:([^}]+)\}`)
	filePattern = regexp.MustCompile(`\{file:([^}]+)\}`)
)

// Load loads configuration from multiple sources (priority order):
// 1. Global config (~/.config/exiled/)
// 2. Project config (<dir>/exiled.jsonc, <dir>/.exiled/)
// 3. EXILED_CONFIG file
// 4. EXILED_CONFIG_CONTENT inline JSON
// 5. Environment variables
//
// Missing files are skipped; a file that exists but does not parse is an
// error.
func Load(directory string) (*Config, error) {
	config := &Config{
		Plugins: make(map[string]bool),
	}

	// Track loaded files to avoid duplicates
	loaded := make(map[string]bool)

	loadOnce := func(path string, baseDir string) error {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil
		}
		if loaded[absPath] {
			return nil
		}
		err = loadConfigFile(path, config, baseDir)
		if os.IsNotExist(err) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		loaded[absPath] = true
		return nil
	}

	var candidates [][2]string

	// 1. Global config
	globalPath := GetConfigDir()
	candidates = append(candidates,
		[2]string{filepath.Join(globalPath, "exiled.json"), globalPath},
		[2]string{filepath.Join(globalPath, "exiled.jsonc"), globalPath},
	)

	// 2. Project config
	if directory != "" {
		projectConfigDir := filepath.Join(directory, ".exiled")
		candidates = append(candidates,
			[2]string{filepath.Join(directory, "exiled.json"), directory},
			[2]string{filepath.Join(directory, "exiled.jsonc"), directory},
			[2]string{filepath.Join(projectConfigDir, "exiled.json"), projectConfigDir},
			[2]string{filepath.Join(projectConfigDir, "exiled.jsonc"), projectConfigDir},
		)
	}

	// 3. EXILED_CONFIG file override
	if configPath := os.Getenv(EnvConfig); configPath != "" {
		candidates = append(candidates, [2]string{configPath, filepath.Dir(configPath)})
	}

	for _, c := range candidates {
		if err := loadOnce(c[0], c[1]); err != nil {
			return nil, err
		}
	}

	// 4. EXILED_CONFIG_CONTENT inline JSON
	if configContent := os.Getenv(EnvConfigContent); configContent != "" {
		var inlineConfig Config
		if err := json.Unmarshal(jsonc.ToJSON([]byte(configContent)), &inlineConfig); err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvConfigContent, err)
		}
		mergeConfig(config, &inlineConfig)
	}

	// 5. Environment variables (highest priority)
	applyEnvOverrides(config)

	return config, nil
}

// loadConfigFile loads a single config file with interpolation support.
func loadConfigFile(path string, config *Config, baseDir string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Strip JSONC comments using tidwall/jsonc
	data = jsonc.ToJSON(data)

	// Apply interpolation
	data = interpolate(data, baseDir)

	var fileConfig Config
	if err := json.Unmarshal(data, &fileConfig); err != nil {
		return err
	}

	// A relative policy file is relative to the config that names it.
	if fileConfig.Policy != nil && fileConfig.Policy.File != "" {
		fileConfig.Policy.File = resolvePath(fileConfig.Policy.File, baseDir)
	}

	mergeConfig(config, &fileConfig)
	return nil
}

// interpolate processes {env:VAR} and {file:path} placeholders.
func interpolate(data []byte, baseDir string) []byte {
	str := string(data)

	// Handle {env:VAR_NAME} placeholders
	str = envPattern.ReplaceAllStringFunc(str, func(match string) string {
		varName := envPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})

	// Handle {file:path} placeholders
	str = filePattern.ReplaceAllStringFunc(str, func(match string) string {
		filePath := resolvePath(filePattern.FindStringSubmatch(match)[1], baseDir)

		content, err := os.ReadFile(filePath)
		if err != nil {
			return match // Keep original if file not found
		}

		// The placeholder sits inside a JSON string.
		quoted, _ := json.Marshal(strings.TrimSpace(string(content)))
		return string(quoted[1 : len(quoted)-1])
	})

	return []byte(str)
}

func resolvePath(path, baseDir string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(os.Getenv("HOME"), path[2:])
	}
	if !filepath.IsAbs(path) {
		return filepath.Join(baseDir, path)
	}
	return path
}

// mergeConfig merges source config into target.
func mergeConfig(target, source *Config) {
	if source.Schema != "" {
		target.Schema = source.Schema
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
	}
	if source.PrettyLogs != nil {
		target.PrettyLogs = source.PrettyLogs
	}

	// Merge plugin switches
	if source.Plugins != nil {
		if target.Plugins == nil {
			target.Plugins = make(map[string]bool)
		}
		for k, v := range source.Plugins {
			target.Plugins[k] = v
		}
	}

	// Merge policy; rules combine by pattern
	if source.Policy != nil {
		if target.Policy == nil {
			target.Policy = &PolicyConfig{}
		}
		if source.Policy.File != "" {
			target.Policy.File = source.Policy.File
		}
		if source.Policy.Watch {
			target.Policy.Watch = true
		}
		if source.Policy.Rules != nil {
			if target.Policy.Rules == nil {
				target.Policy.Rules = make(map[string]string)
			}
			for k, v := range source.Policy.Rules {
				target.Policy.Rules[k] = v
			}
		}
	}

	if source.Faults != nil {
		target.Faults = source.Faults
	}
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(config *Config) {
	if level := os.Getenv(EnvLogLevel); level != "" {
		config.LogLevel = level
	}

	if policyFile := os.Getenv(EnvPolicyFile); policyFile != "" {
		if config.Policy == nil {
			config.Policy = &PolicyConfig{}
		}
		config.Policy.File = policyFile
	}
}

// Save saves the configuration to a file.
func Save(config *Config, path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetConfigDir returns the config directory to use.
// Prefers EXILED_CONFIG_DIR, then ~/.config/exiled.
func GetConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return GetPaths().Config
}
