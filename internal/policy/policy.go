// Package policy vetoes or forces events by kind according to a rule set.
package policy

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/exiled-team/exiled/pkg/event"
)

// Action is the decision a rule applies.
type Action string

const (
	ActionAllow Action = "allow"
	ActionDeny  Action = "deny"
)

// Rules maps kind names or glob patterns ("scp079.*", "map.generator_*") to
// an action.
type Rules map[string]Action

// RuleError describes an invalid rule.
type RuleError struct {
	Pattern string
	Reason  string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("policy rule %q: %s", e.Pattern, e.Reason)
}

// IsRuleError checks if an error is an invalid rule.
func IsRuleError(err error) bool {
	_, ok := err.(*RuleError)
	return ok
}

// FromStrings converts a config rule map into Rules.
func FromStrings(m map[string]string) Rules {
	rules := make(Rules, len(m))
	for pattern, action := range m {
		rules[pattern] = Action(strings.ToLower(strings.TrimSpace(action)))
	}
	return rules
}

// Merge returns a new rule set with overlay applied on top of base.
func Merge(base, overlay Rules) Rules {
	out := make(Rules, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

// Validate checks every rule. Plain names must be known kinds; globs must be
// well-formed.
func (r Rules) Validate() error {
	for _, pattern := range r.patterns() {
		action := r[pattern]
		if action != ActionAllow && action != ActionDeny {
			return &RuleError{Pattern: pattern, Reason: fmt.Sprintf("unknown action %q", action)}
		}
		if !isGlob(pattern) {
			if _, err := event.ParseKind(pattern); err != nil {
				return &RuleError{Pattern: pattern, Reason: err.Error()}
			}
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			return &RuleError{Pattern: pattern, Reason: "malformed pattern"}
		}
	}
	return nil
}

// patterns returns the rule patterns in a stable order.
func (r Rules) patterns() []string {
	out := make([]string, 0, len(r))
	for p := range r {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// decision is the resolved rule for one kind.
type decision struct {
	action  Action
	pattern string
}

// table is an immutable compiled rule set.
type table struct {
	rules     Rules
	decisions map[event.Kind]decision
}

// compile resolves rules against every kind. Exact names win over globs;
// among globs the longer pattern wins, so a bare "*" applies last.
func compile(rules Rules) (*table, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	var globs []string
	exact := make(map[event.Kind]decision)
	for _, pattern := range rules.patterns() {
		if isGlob(pattern) {
			globs = append(globs, pattern)
			continue
		}
		kind, _ := event.ParseKind(pattern)
		exact[kind] = decision{action: rules[pattern], pattern: pattern}
	}
	sort.SliceStable(globs, func(i, j int) bool {
		return len(globs[i]) > len(globs[j])
	})

	t := &table{rules: Merge(nil, rules), decisions: make(map[event.Kind]decision)}
	for _, kind := range event.Kinds() {
		if d, ok := exact[kind]; ok {
			t.decisions[kind] = d
			continue
		}
		for _, pattern := range globs {
			if matched, _ := doublestar.Match(pattern, kind.String()); matched {
				t.decisions[kind] = decision{action: rules[pattern], pattern: pattern}
				break
			}
		}
	}
	return t, nil
}

// Policy is a rule set that can be swapped atomically while events are being
// dispatched.
type Policy struct {
	current atomic.Pointer[table]
}

// New compiles rules into a Policy.
func New(rules Rules) (*Policy, error) {
	t, err := compile(rules)
	if err != nil {
		return nil, err
	}
	p := &Policy{}
	p.current.Store(t)
	return p, nil
}

// Set replaces the rule set. On error the previous rules stay in effect.
func (p *Policy) Set(rules Rules) error {
	t, err := compile(rules)
	if err != nil {
		return err
	}
	p.current.Store(t)
	return nil
}

// Rules returns a copy of the active rule set.
func (p *Policy) Rules() Rules {
	return Merge(nil, p.current.Load().rules)
}

// Decide returns the action for kind and whether any rule applies.
func (p *Policy) Decide(kind event.Kind) (Action, bool) {
	d, ok := p.current.Load().decisions[kind]
	return d.action, ok
}

// Match returns the action for kind along with the pattern that produced it.
func (p *Policy) Match(kind event.Kind) (action Action, pattern string, ok bool) {
	d, ok := p.current.Load().decisions[kind]
	return d.action, d.pattern, ok
}

// Apply sets the decision on ev if a rule covers kind.
func (p *Policy) Apply(kind event.Kind, ev event.Cancellable) {
	if action, ok := p.Decide(kind); ok {
		ev.SetAllowed(action == ActionAllow)
	}
}
