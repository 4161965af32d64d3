package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteWorkspace creates a fake Cargo workspace checkout at dir/source with
// the given member declarations. crates maps member path → package name; a
// member missing from crates gets a directory but no Cargo.toml.
func WriteWorkspace(t *testing.T, dir, source string, members []string, crates map[string]string) {
	t.Helper()

	ws := filepath.Join(dir, source)
	var b strings.Builder
	b.WriteString("[workspace]\nmembers = [\n")
	for _, m := range members {
		fmt.Fprintf(&b, "    %q,\n", m)
	}
	b.WriteString("]\n")
	WriteFile(t, filepath.Join(ws, "Cargo.toml"), b.String())

	for _, m := range members {
		memberDir := filepath.Join(ws, m)
		if name, ok := crates[m]; ok {
			WriteCrate(t, memberDir, name)
		} else if err := os.MkdirAll(memberDir, 0755); err != nil {
			t.Fatal(err)
		}
	}
}

// WriteCrate writes a minimal crate Cargo.toml declaring the given package name.
func WriteCrate(t *testing.T, dir, name string) {
	t.Helper()
	content := fmt.Sprintf("[package]\nname = %q\nversion = \"0.1.0\"\nedition = \"2018\"\n", name)
	WriteFile(t, filepath.Join(dir, "Cargo.toml"), content)
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}
