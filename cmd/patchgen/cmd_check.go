package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/compound-finance/gateway/internal/cargo"
	"github.com/compound-finance/gateway/internal/config"
	"github.com/compound-finance/gateway/internal/patch"
	"github.com/compound-finance/gateway/internal/ui"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Diagnose the fork checkouts before generating patches",
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	out := cmd.OutOrStdout()
	ok := true

	fmt.Fprintf(out, "Checking %s... ", config.FileName)
	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		fmt.Fprintln(out, ui.Bad("FAILED"))
		fmt.Fprintf(out, "  %v\n", err)
		return fmt.Errorf("check failed")
	}
	fmt.Fprintf(out, "%s (%d fork(s))\n", ui.OK("OK"), len(cfg.Patches))

	for _, p := range cfg.Patches {
		if !checkFork(out, root, p) {
			ok = false
		}
	}

	if ok {
		fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("check failed")
}

// checkFork verifies one fork checkout: the directory exists, its workspace
// manifest parses, and every member that carries a Cargo.toml is valid.
// Members without a manifest are reported so a misconfigured crate does not
// vanish silently from generated output.
func checkFork(out io.Writer, root string, p config.Patch) bool {
	fmt.Fprintf(out, "Checking %s (%s)... ", p.Source, p.Upstream)

	if _, err := os.Stat(filepath.Join(root, p.Source)); err != nil {
		fmt.Fprintln(out, ui.Bad("NOT FOUND"))
		fmt.Fprintf(out, "  expected a checkout at %s\n", filepath.Join(root, p.Source))
		return false
	}

	members, err := patch.Inspect(root, p.Source)
	if err != nil {
		fmt.Fprintln(out, ui.Bad("FAILED"))
		fmt.Fprintf(out, "  %v\n", err)
		return false
	}

	valid, absent := 0, 0
	ok := true
	for _, m := range members {
		switch m.State {
		case patch.StateValid:
			valid++
		case patch.StateAbsent:
			absent++
		case patch.StateInvalid:
			if ok {
				fmt.Fprintln(out, ui.Bad("FAILED"))
				ok = false
			}
			fmt.Fprintf(out, "  member %s: %v\n", m.Path, m.Err)
		}
	}
	if !ok {
		return false
	}

	fmt.Fprintf(out, "%s (%d crate(s))\n", ui.OK("OK"), valid)
	if absent > 0 {
		fmt.Fprintf(out, "  %s\n", ui.Warn(fmt.Sprintf("%d member(s) without %s will be skipped", absent, cargo.ManifestFile)))
	}
	return true
}
