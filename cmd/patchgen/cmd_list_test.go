package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/compound-finance/gateway/internal/testutil"
)

func TestRunList_table(t *testing.T) {
	root := setupFork(t)

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--root", root, "list"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"MEMBER", "gateway-core", "pallet-oracle", "docs", "absent"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunList_json(t *testing.T) {
	root := setupFork(t)

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--root", root, "list", "--json"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("list --json failed: %v", err)
	}

	var entries []memberEntry
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Member != "core" || entries[0].State != "package" || entries[0].Package != "gateway-core" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[2].Member != "docs" || entries[2].State != "absent" {
		t.Errorf("entries[2] = %+v", entries[2])
	}
}

func TestRunList_reportsInvalidMembers(t *testing.T) {
	root := setupFork(t)
	testutil.WriteFile(t, filepath.Join(root, "substrate", "docs", "Cargo.toml"),
		"[package]\n")

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--root", root, "list"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("list should not fail on invalid members: %v", err)
	}
	if !strings.Contains(buf.String(), "invalid") {
		t.Errorf("output missing invalid state:\n%s", buf.String())
	}
}
