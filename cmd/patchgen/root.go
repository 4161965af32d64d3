package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "patchgen",
		Short:   "Generate Cargo [patch] overrides for local fork checkouts",
		Version: version,
	}

	cmd.PersistentFlags().String("root", ".", "Directory containing patchgen.yaml; fork paths are relative to it")

	cmd.AddCommand(
		newInitCmd(),
		newGenerateCmd(),
		newListCmd(),
		newCheckCmd(),
	)

	return cmd
}
