package main

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/compound-finance/gateway/internal/config"
	"github.com/compound-finance/gateway/internal/testutil"
)

const substrateURL = "https://github.com/compound-finance/substrate.git"

// setupFork creates a root directory holding a fake substrate checkout with
// two buildable crates and one manifest-less member, plus a patchgen.yaml
// pointing at it.
func setupFork(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	testutil.WriteWorkspace(t, root, "substrate",
		[]string{"core", "pallets/oracle", "docs"},
		map[string]string{
			"core":           "gateway-core",
			"pallets/oracle": "pallet-oracle",
		})
	writeConfig(t, root, config.Patch{Upstream: substrateURL, Source: "substrate"})
	return root
}

func writeConfig(t *testing.T, root string, patches ...config.Patch) {
	t.Helper()
	var b []byte
	b = append(b, "version: 1\npatches:\n"...)
	for _, p := range patches {
		b = append(b, fmt.Sprintf("  - upstream: %s\n    source: %s\n", p.Upstream, p.Source)...)
	}
	testutil.WriteFile(t, filepath.Join(root, config.FileName), string(b))
}
