package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/exiled-team/exiled/internal/engine"
	"github.com/exiled-team/exiled/pkg/event"
	"github.com/fatih/color"
)

// Renderer prints simulation progress.
type Renderer struct {
	out  io.Writer
	json bool
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer, asJSON, noColor bool) *Renderer {
	color.NoColor = color.NoColor || noColor
	return &Renderer{out: out, json: asJSON}
}

// Banner announces the scenario.
func (r *Renderer) Banner(name string, plugins []string) {
	if r.json {
		return
	}
	fmt.Fprintln(r.out, color.New(color.FgCyan, color.Bold).Sprintf("scenario %s", name))
	fmt.Fprintln(r.out, color.New(color.FgHiBlack).Sprintf("plugins: %v", plugins))
}

// Outcome prints one world action.
func (r *Renderer) Outcome(o engine.Outcome) {
	if r.json {
		r.emit(map[string]any{
			"type":    "outcome",
			"step":    o.Step,
			"action":  o.Action,
			"kind":    o.Kind.String(),
			"allowed": o.Allowed,
			"detail":  o.Detail,
		})
		return
	}

	var mark string
	switch {
	case !o.Kind.Vetoable():
		mark = color.New(color.FgYellow).Sprint("→")
	case o.Allowed:
		mark = color.New(color.FgGreen).Sprint("✓")
	default:
		mark = color.New(color.FgRed).Sprint("✗")
	}
	step := color.New(color.FgHiBlack).Sprintf("%3d", o.Step)
	fmt.Fprintf(r.out, "%s %s %-22s %s\n", step, mark, o.Action, color.New(color.FgHiBlack).Sprint(o.Detail))
}

// Fault prints a fault report drained from the fault topic.
func (r *Renderer) Fault(f faultReport) {
	if r.json {
		r.emit(map[string]any{"type": "fault", "fault": f})
		return
	}
	owner := f.Owner
	if owner == "" {
		owner = "-"
	}
	fmt.Fprintln(r.out, color.New(color.FgRed).Sprintf("fault %s kind=%s owner=%s: %s", f.ID, f.Kind, owner, f.Panic))
}

// Error prints the error that stopped the scenario.
func (r *Renderer) Error(err error) {
	if r.json {
		r.emit(map[string]any{"type": "error", "error": err.Error()})
		return
	}
	fmt.Fprintln(r.out, color.New(color.FgRed, color.Bold).Sprintf("error: %v", err))
}

// Summary prints the bus counters.
func (r *Renderer) Summary(stats event.Stats) {
	if r.json {
		r.emit(map[string]any{"type": "summary", "stats": stats})
		return
	}
	fmt.Fprintln(r.out, color.New(color.FgHiBlack).Sprintf(
		"%d dispatches, %d handler calls, %d faults", stats.Dispatches, stats.Invocations, stats.Faults))
}

func (r *Renderer) emit(v any) {
	b, _ := json.Marshal(v)
	fmt.Fprintln(r.out, string(b))
}
