package config

// Config is the exiled configuration file.
type Config struct {
	Schema     string          `json:"$schema,omitempty"`
	LogLevel   string          `json:"logLevel,omitempty"`
	PrettyLogs *bool           `json:"prettyLogs,omitempty"`
	Plugins    map[string]bool `json:"plugins,omitempty"`
	Policy     *PolicyConfig   `json:"policy,omitempty"`
	Faults     *FaultsConfig   `json:"faults,omitempty"`
}

// PolicyConfig configures the policy plugin.
type PolicyConfig struct {
	// File is a JSONC rules file loaded on top of Rules.
	File string `json:"file,omitempty"`
	// Watch reloads File whenever it changes.
	Watch bool `json:"watch,omitempty"`
	// Rules maps kind names or globs to "allow" or "deny".
	Rules map[string]string `json:"rules,omitempty"`
}

// FaultsConfig configures subscriber fault reporting.
type FaultsConfig struct {
	// Topic is the watermill topic fault reports are published to.
	Topic string `json:"topic,omitempty"`
}

// PluginEnabled reports whether the named plugin is enabled. Plugins not
// mentioned in the config are enabled.
func (c *Config) PluginEnabled(name string) bool {
	enabled, ok := c.Plugins[name]
	return !ok || enabled
}

// Pretty reports whether console logs should be human-readable.
func (c *Config) Pretty() bool {
	return c.PrettyLogs == nil || *c.PrettyLogs
}

// FaultTopic returns the configured fault topic, or "" for the default.
func (c *Config) FaultTopic() string {
	if c.Faults == nil {
		return ""
	}
	return c.Faults.Topic
}
