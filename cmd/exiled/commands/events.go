package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/exiled-team/exiled/pkg/event"
	"github.com/spf13/cobra"
)

var (
	eventsJSON  bool
	eventsGroup string
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List event kinds",
	Long: `List every event kind with its payload type and whether plugins can
veto it.

Examples:
  exiled events               # List all kinds
  exiled events --group map   # Only map events
  exiled events --json`,
	RunE: runEvents,
}

func init() {
	eventsCmd.Flags().BoolVar(&eventsJSON, "json", false, "Output as JSON")
	eventsCmd.Flags().StringVar(&eventsGroup, "group", "", "Only list kinds of this group (map|scp079|player)")
}

type kindRow struct {
	Kind     string `json:"kind"`
	Group    string `json:"group"`
	Payload  string `json:"payload"`
	Vetoable bool   `json:"vetoable"`
}

func listKinds(group string) []kindRow {
	var rows []kindRow
	for _, k := range event.Kinds() {
		if group != "" && k.Group() != group {
			continue
		}
		rows = append(rows, kindRow{
			Kind:     k.String(),
			Group:    k.Group(),
			Payload:  k.PayloadType(),
			Vetoable: k.Vetoable(),
		})
	}
	return rows
}

func runEvents(cmd *cobra.Command, args []string) error {
	rows := listKinds(eventsGroup)
	if len(rows) == 0 {
		return fmt.Errorf("no event kinds in group %q", eventsGroup)
	}

	if eventsJSON {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tPAYLOAD\tVETOABLE\t")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%t\t\n", r.Kind, r.Payload, r.Vetoable)
	}
	return w.Flush()
}
