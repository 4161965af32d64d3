package main

import (
	"encoding/json"
	"fmt"

	"github.com/compound-finance/gateway/internal/patch"
	"github.com/compound-finance/gateway/internal/ui"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workspace members of each fork and how they would be patched",
		RunE:  runList,
	}
	cmd.Flags().String("source", "", "List a single fork checkout at this path (bypasses patchgen.yaml)")
	cmd.Flags().String("upstream", "", "Upstream URL for --source")
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type memberEntry struct {
	Upstream string `json:"upstream"`
	Member   string `json:"member"`
	State    string `json:"state"`
	Package  string `json:"package,omitempty"`
	Path     string `json:"path,omitempty"`
	Error    string `json:"error,omitempty"`
}

func runList(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	source, _ := cmd.Flags().GetString("source")
	upstream, _ := cmd.Flags().GetString("upstream")
	asJSON, _ := cmd.Flags().GetBool("json")

	targets, err := patchTargets(root, source, upstream)
	if err != nil {
		return err
	}

	var entries []memberEntry
	for _, p := range targets {
		members, err := patch.Inspect(root, p.Source)
		if err != nil {
			return fmt.Errorf("inspecting %s: %w", p.Upstream, err)
		}
		for _, m := range members {
			e := memberEntry{
				Upstream: p.Upstream,
				Member:   m.Path,
				State:    m.State.String(),
			}
			switch m.State {
			case patch.StateValid:
				e.Package = m.Name
				e.Path = m.Dir
			case patch.StateInvalid:
				e.Error = m.Err.Error()
			}
			entries = append(entries, e)
		}
	}

	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	tbl := ui.NewTable(out, "MEMBER", "STATE", "PACKAGE", "PATH")
	for _, e := range entries {
		detail := e.Path
		if e.Error != "" {
			detail = e.Error
		}
		tbl.Row(e.Member, e.State, e.Package, detail)
	}
	return tbl.Flush()
}
