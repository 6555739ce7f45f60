package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/exiled-team/exiled/internal/config"
	"github.com/exiled-team/exiled/internal/engine"
	"github.com/exiled-team/exiled/internal/logging"
	"github.com/exiled-team/exiled/internal/plugin"
	"github.com/exiled-team/exiled/internal/policy"
	"github.com/exiled-team/exiled/pkg/event"
	"github.com/spf13/cobra"
)

var (
	simulateFaults  bool
	simulateJSON    bool
	simulateNoColor bool
	simulateRules   []string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <scenario.yaml>",
	Short: "Run a scenario through the in-memory world",
	Long: `Run a YAML scenario through the in-memory world with the configured
plugins enabled, printing the outcome of every action.

Scenario names without a path are also looked up in the scenarios data
directory (see 'exiled debug paths').

Examples:
  exiled simulate round.yaml
  exiled simulate round.yaml --rule 'map.door_interact=deny'
  exiled simulate round.yaml --faults --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().BoolVar(&simulateFaults, "faults", false, "Print fault reports from the fault topic")
	simulateCmd.Flags().BoolVar(&simulateJSON, "json", false, "Output as JSON lines")
	simulateCmd.Flags().BoolVar(&simulateNoColor, "no-color", false, "Disable colors")
	simulateCmd.Flags().StringArrayVar(&simulateRules, "rule", nil, "Extra policy rule as pattern=allow|deny (repeatable)")
}

// faultReport is the JSON body of a fault message.
type faultReport struct {
	ID             string `json:"id"`
	Kind           string `json:"kind"`
	SubscriptionID uint64 `json:"subscriptionID"`
	Owner          string `json:"owner,omitempty"`
	Panic          string `json:"panic"`
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	scenario, err := engine.LoadScenario(resolveScenario(args[0]))
	if err != nil {
		return err
	}

	rules, err := ruleFlags(simulateRules)
	if err != nil {
		return err
	}

	pubsub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		watermill.NopLogger{},
	)
	published := event.NewWatermillReporter(pubsub, appConfig.FaultTopic(), logging.Component("faults"))
	var faults <-chan *message.Message
	if simulateFaults {
		if faults, err = pubsub.Subscribe(ctx, published.Topic()); err != nil {
			return fmt.Errorf("subscribe to fault topic: %w", err)
		}
	}

	bus := event.NewBus(
		event.WithReporter(event.MultiReporter{
			event.NewLogReporter(logging.Component("faults")),
			published,
		}),
		event.WithLogger(logging.Component("bus")),
	)
	defer bus.Close()

	manager, err := newManager(bus, appConfig, rules)
	if err != nil {
		return err
	}
	if err := manager.EnableAll(ctx, appConfig.PluginEnabled); err != nil {
		return err
	}
	defer manager.DisableAll()

	renderer := NewRenderer(cmd.OutOrStdout(), simulateJSON, simulateNoColor)
	var enabled []string
	for _, info := range manager.List() {
		if info.Enabled {
			enabled = append(enabled, info.Name)
		}
	}
	renderer.Banner(scenario.Name, enabled)

	world := engine.NewWorld(bus, engine.WithLogger(logging.Component("engine")))
	outcomes, runErr := engine.RunScenario(ctx, world, scenario)
	for _, o := range outcomes {
		renderer.Outcome(o)
	}
	if runErr != nil {
		renderer.Error(runErr)
	}

	stats := bus.Stats()
	if simulateFaults {
		for _, f := range drainFaults(faults, int(stats.Faults), time.Second) {
			renderer.Fault(f)
		}
	}
	renderer.Summary(stats)
	return runErr
}

// newManager registers the built-in plugins.
func newManager(bus *event.Bus, cfg *config.Config, extra policy.Rules) (*plugin.Manager, error) {
	base := policy.Rules{}
	var opts []policy.PluginOption
	if cfg.Policy != nil {
		base = policy.FromStrings(cfg.Policy.Rules)
		if cfg.Policy.File != "" {
			opts = append(opts, policy.WithFile(cfg.Policy.File, cfg.Policy.Watch))
		}
	}
	opts = append(opts, policy.WithLogger(logging.Component(policy.PluginName)))

	policyPlugin, err := policy.NewPlugin(policy.Merge(base, extra), opts...)
	if err != nil {
		return nil, fmt.Errorf("policy: %w", err)
	}

	manager := plugin.NewManager(bus)
	for _, p := range []plugin.Plugin{
		plugin.NewAudit(logging.Component(plugin.AuditName)),
		policyPlugin,
	} {
		if err := manager.Register(p); err != nil {
			return nil, err
		}
	}
	return manager, nil
}

// ruleFlags parses --rule pattern=action flags.
func ruleFlags(flags []string) (policy.Rules, error) {
	m := make(map[string]string, len(flags))
	for _, f := range flags {
		pattern, action, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --rule %q: want pattern=allow|deny", f)
		}
		m[pattern] = action
	}
	rules := policy.FromStrings(m)
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

// drainFaults reads up to n fault messages, giving up after timeout.
func drainFaults(messages <-chan *message.Message, n int, timeout time.Duration) []faultReport {
	var out []faultReport
	deadline := time.After(timeout)
	for len(out) < n {
		select {
		case msg, ok := <-messages:
			if !ok {
				return out
			}
			var f faultReport
			if err := json.Unmarshal(msg.Payload, &f); err != nil {
				logging.Warn().Err(err).Str("uuid", msg.UUID).Msg("undecodable fault report")
			} else {
				out = append(out, f)
			}
			msg.Ack()
		case <-deadline:
			return out
		}
	}
	return out
}

// resolveScenario falls back to the scenarios data directory for bare names.
func resolveScenario(name string) string {
	if _, err := os.Stat(name); err == nil || filepath.IsAbs(name) || strings.ContainsRune(name, os.PathSeparator) {
		return name
	}
	candidate := filepath.Join(config.GetPaths().ScenarioPath(), name)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return name
}
