package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/compound-finance/gateway/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create patchgen.yaml interactively or from flags",
		RunE:  runInit,
	}
	cmd.Flags().String("upstream", "", "Upstream URL being patched")
	cmd.Flags().String("source", "", "Path to the local fork checkout")
	cmd.Flags().Bool("force", false, "Overwrite an existing patchgen.yaml")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	upstream, _ := cmd.Flags().GetString("upstream")
	source, _ := cmd.Flags().GetString("source")
	force, _ := cmd.Flags().GetBool("force")

	cfgPath := filepath.Join(root, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	}

	switch {
	case upstream != "" && source != "":
		if err := validateUpstream(upstream); err != nil {
			return err
		}
		if err := validateSource(source); err != nil {
			return err
		}
	case upstream != "" || source != "":
		return fmt.Errorf("--upstream and --source must be used together")
	default:
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive init requires a TTY; use --upstream and --source")
		}
		var err error
		upstream, source, err = interactiveTarget()
		if err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
	}

	cfg := &config.Config{
		Version: 1,
		Patches: []config.Patch{{Upstream: upstream, Source: source}},
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfgPath)
	return nil
}

// interactiveTarget prompts for an upstream URL and fork checkout path.
func interactiveTarget() (upstream, source string, err error) {
	upstream, err = promptInput(
		"Upstream URL being patched",
		"https://github.com/compound-finance/substrate.git",
		validateUpstream,
	)
	if err != nil {
		return "", "", err
	}

	suggested := defaultSourceFromUpstream(upstream)
	source, err = promptInput(
		fmt.Sprintf("Path to the local fork checkout (empty for %s)", suggested),
		suggested,
		func(s string) error {
			if s == "" && suggested != "" {
				return nil
			}
			return validateSource(s)
		},
	)
	if err != nil {
		return "", "", err
	}
	if source == "" {
		source = suggested
	}

	ok, err := promptConfirm(fmt.Sprintf("Patch %s with %s?", upstream, source))
	if err != nil {
		return "", "", err
	}
	if !ok {
		return "", "", fmt.Errorf("user aborted")
	}
	return upstream, source, nil
}
