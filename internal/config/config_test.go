package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and XDG_CONFIG_HOME at a temp dir and clears every
// EXILED_ variable for the duration of the test.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, ".config"))
	for _, key := range []string{EnvConfig, EnvConfigContent, EnvConfigDir, EnvLogLevel, EnvPolicyFile} {
		t.Setenv(key, "")
	}
	return tmpDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	tmpDir := isolate(t)

	cfg, err := Load(tmpDir)
	require.NoError(t, err)

	assert.Empty(t, cfg.LogLevel)
	assert.True(t, cfg.Pretty())
	assert.True(t, cfg.PluginEnabled("audit"))
	assert.Nil(t, cfg.Policy)
	assert.Empty(t, cfg.FaultTopic())
}

func TestLoadProjectConfig(t *testing.T) {
	tmpDir := isolate(t)

	writeFile(t, filepath.Join(tmpDir, ".exiled", "exiled.jsonc"), `{
		"logLevel": "debug",
		"prettyLogs": false,
		"plugins": {"audit": false},
		"policy": {
			"rules": {
				"map.door_interact": "deny",
				"scp079.*": "allow"
			}
		},
		"faults": {"topic": "custom.faults"}
	}`)

	cfg, err := Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Pretty())
	assert.False(t, cfg.PluginEnabled("audit"))
	assert.True(t, cfg.PluginEnabled("policy"))
	require.NotNil(t, cfg.Policy)
	assert.Equal(t, "deny", cfg.Policy.Rules["map.door_interact"])
	assert.Equal(t, "allow", cfg.Policy.Rules["scp079.*"])
	assert.Equal(t, "custom.faults", cfg.FaultTopic())
}

func TestJSONCComments(t *testing.T) {
	tmpDir := isolate(t)

	writeFile(t, filepath.Join(tmpDir, "exiled.jsonc"), `{
		// line comment
		"logLevel": "warn", /* block comment */
		"plugins": {
			"policy": true, // trailing comma below
		},
	}`)

	cfg, err := Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Plugins["policy"])
}

func TestEnvInterpolation(t *testing.T) {
	tmpDir := isolate(t)
	t.Setenv("TEST_EXILED_LEVEL", "error")

	writeFile(t, filepath.Join(tmpDir, "exiled.json"), `{"logLevel": "{env:TEST_EXILED_LEVEL}"}`)

	cfg, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestFileInterpolation(t *testing.T) {
	tmpDir := isolate(t)

	writeFile(t, filepath.Join(tmpDir, "topic.txt"), "from.file\n")
	writeFile(t, filepath.Join(tmpDir, ".exiled", "exiled.json"), `{"faults": {"topic": "{file:../topic.txt}"}}`)

	cfg, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "from.file", cfg.FaultTopic())
}

func TestPolicyFileResolvedRelativeToConfig(t *testing.T) {
	tmpDir := isolate(t)

	writeFile(t, filepath.Join(tmpDir, ".exiled", "exiled.json"), `{"policy": {"file": "policy.jsonc", "watch": true}}`)

	cfg, err := Load(tmpDir)
	require.NoError(t, err)
	require.NotNil(t, cfg.Policy)
	assert.Equal(t, filepath.Join(tmpDir, ".exiled", "policy.jsonc"), cfg.Policy.File)
	assert.True(t, cfg.Policy.Watch)
}

func TestConfigMerge(t *testing.T) {
	tmpHome := isolate(t)
	tmpProject := t.TempDir()

	// Global config
	writeFile(t, filepath.Join(tmpHome, ".config", "exiled", "exiled.jsonc"), `{
		"logLevel": "info",
		"plugins": {"audit": true},
		"policy": {"rules": {"map.*": "deny", "player.hurting": "allow"}}
	}`)

	// Project config overrides scalars and adds rules
	writeFile(t, filepath.Join(tmpProject, "exiled.jsonc"), `{
		"logLevel": "debug",
		"plugins": {"policy": false},
		"policy": {"rules": {"map.*": "allow"}}
	}`)

	cfg, err := Load(tmpProject)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Plugins["audit"])
	assert.False(t, cfg.Plugins["policy"])
	assert.Equal(t, "allow", cfg.Policy.Rules["map.*"])
	assert.Equal(t, "allow", cfg.Policy.Rules["player.hurting"])
}

func TestEnvVarOverride(t *testing.T) {
	tmpDir := isolate(t)
	t.Setenv(EnvLogLevel, "fatal")
	t.Setenv(EnvPolicyFile, "/etc/exiled/policy.jsonc")

	writeFile(t, filepath.Join(tmpDir, "exiled.json"), `{"logLevel": "info"}`)

	cfg, err := Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "fatal", cfg.LogLevel)
	require.NotNil(t, cfg.Policy)
	assert.Equal(t, "/etc/exiled/policy.jsonc", cfg.Policy.File)
}

func TestEXILED_CONFIG(t *testing.T) {
	tmpDir := isolate(t)

	customPath := filepath.Join(tmpDir, "custom", "my.jsonc")
	writeFile(t, customPath, `{"logLevel": "warn"}`)
	t.Setenv(EnvConfig, customPath)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestEXILED_CONFIG_CONTENT(t *testing.T) {
	tmpDir := isolate(t)

	writeFile(t, filepath.Join(tmpDir, "exiled.json"), `{"logLevel": "info"}`)
	t.Setenv(EnvConfigContent, `{"logLevel": "debug", "plugins": {"audit": false}}`)

	cfg, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.PluginEnabled("audit"))
}

func TestEXILED_CONFIG_CONTENTInvalid(t *testing.T) {
	isolate(t)
	t.Setenv(EnvConfigContent, `{"logLevel": `)

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadInvalidFile(t *testing.T) {
	tmpDir := isolate(t)

	writeFile(t, filepath.Join(tmpDir, "exiled.json"), `{"logLevel": 42}`)

	_, err := Load(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exiled.json")
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := isolate(t)
	t.Setenv(EnvConfigDir, filepath.Join(tmpDir, "cfg"))

	pretty := false
	original := &Config{
		LogLevel:   "warn",
		PrettyLogs: &pretty,
		Plugins:    map[string]bool{"audit": false},
		Policy:     &PolicyConfig{Rules: map[string]string{"player.*": "deny"}},
	}

	require.NoError(t, Save(original, GlobalConfigPath()))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Pretty())
	assert.Equal(t, "deny", cfg.Policy.Rules["player.*"])
}

func TestGetPaths(t *testing.T) {
	tmpDir := isolate(t)
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmpDir, "state"))

	paths := GetPaths()
	assert.Equal(t, filepath.Join(tmpDir, ".config", "exiled"), paths.Config)
	assert.Equal(t, filepath.Join(tmpDir, "data", "exiled"), paths.Data)
	assert.Equal(t, filepath.Join(tmpDir, "state", "exiled", "log"), paths.LogPath())
	assert.Equal(t, filepath.Join(tmpDir, "data", "exiled", "scenarios"), paths.ScenarioPath())

	require.NoError(t, paths.EnsurePaths())
	assert.DirExists(t, paths.State)
}
