// Package config provides configuration loading, merging, and path management for exiled.
//
// # Configuration Loading
//
// Load searches for and merges configuration from multiple sources in
// priority order:
//
//  1. Global config ($XDG_CONFIG_HOME/exiled/exiled.json[c], or EXILED_CONFIG_DIR)
//  2. Project config (exiled.json[c] and .exiled/exiled.json[c] in the directory)
//  3. EXILED_CONFIG file
//  4. EXILED_CONFIG_CONTENT inline JSON
//  5. Environment variables (EXILED_LOG_LEVEL, EXILED_POLICY_FILE)
//
// Files are JSONC; comments and trailing commas are stripped with
// tidwall/jsonc. Missing files are skipped, malformed files are an error.
//
// # Variable Interpolation
//
//   - {env:VAR_NAME} expands to the environment variable value
//   - {file:path} expands to the trimmed file contents, escaped for JSON
//
// Relative paths, in {file:} placeholders and in policy.file, resolve against
// the directory of the config file that names them.
//
// Example:
//
//	{
//	  "logLevel": "{env:EXILED_LEVEL}",
//	  "plugins": { "audit": true, "policy": true },
//	  "policy": {
//	    "file": "policy.jsonc",
//	    "watch": true,
//	    "rules": { "map.door_interact": "deny", "scp079.*": "allow" }
//	  },
//	  "faults": { "topic": "exiled.faults" }
//	}
//
// # Configuration Merging
//
// Scalars are overwritten by later sources, plugin switches and policy rules
// are merged key by key.
//
// # Path Management
//
// Paths follows the XDG Base Directory layout:
//   - Data: ~/.local/share/exiled (XDG_DATA_HOME)
//   - Config: ~/.config/exiled (XDG_CONFIG_HOME)
//   - Cache: ~/.cache/exiled (XDG_CACHE_HOME)
//   - State: ~/.local/state/exiled (XDG_STATE_HOME)
package config
