package policy

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// fileFormat is the on-disk shape of a policy file:
//
//	{
//	  // comments and trailing commas are allowed
//	  "rules": { "map.door_interact": "deny", "scp079.*": "allow" }
//	}
type fileFormat struct {
	Rules map[string]string `json:"rules"`
}

// LoadFile reads and validates a JSONC policy file.
func LoadFile(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f fileFormat
	if err := json.Unmarshal(jsonc.ToJSON(data), &f); err != nil {
		return nil, fmt.Errorf("parse policy file %s: %w", path, err)
	}

	rules := FromStrings(f.Rules)
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("policy file %s: %w", path, err)
	}
	return rules, nil
}
