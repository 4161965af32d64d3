package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/compound-finance/gateway/internal/config"
	"github.com/compound-finance/gateway/internal/patch"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Cargo [patch] blocks for the configured forks",
		Long: `Generate resolves each configured fork checkout to a [patch] override
block and writes all blocks at once. Paste the output into the parent
Cargo.toml to build against the local forks instead of upstream.

Nothing is written if any fork fails to resolve.`,
		RunE: runGenerate,
	}
	cmd.Flags().String("source", "", "Patch a single fork checkout at this path (bypasses patchgen.yaml)")
	cmd.Flags().String("upstream", "", "Upstream URL for --source")
	cmd.Flags().StringP("output", "o", "", "Write output to a file instead of stdout")
	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	source, _ := cmd.Flags().GetString("source")
	upstream, _ := cmd.Flags().GetString("upstream")
	output, _ := cmd.Flags().GetString("output")

	targets, err := patchTargets(root, source, upstream)
	if err != nil {
		return err
	}

	// Resolve everything before emitting anything, so a failure never
	// leaves a truncated patch block behind.
	blocks := make([]string, 0, len(targets))
	for _, p := range targets {
		entries, err := patch.Resolve(root, p.Source)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", p.Upstream, err)
		}
		blocks = append(blocks, patch.Render(p.Upstream, entries))
	}
	text := strings.Join(blocks, "\n")

	if output != "" {
		if err := os.WriteFile(output, []byte(text), 0644); err != nil { //nolint:gosec // generated patch file needs to be readable
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), text)
	return err
}

// patchTargets returns the patch targets for a run: either the single
// --source/--upstream pair or the targets listed in patchgen.yaml.
func patchTargets(root, source, upstream string) ([]config.Patch, error) {
	if (source == "") != (upstream == "") {
		return nil, fmt.Errorf("--source and --upstream must be used together")
	}
	if source != "" {
		return []config.Patch{{Upstream: upstream, Source: source}}, nil
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, err
	}
	return cfg.Patches, nil
}
