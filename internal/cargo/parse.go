package cargo

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ManifestFile is the well-known manifest filename inside a crate or
// workspace directory.
const ManifestFile = "Cargo.toml"

// LoadWorkspace reads and validates a root workspace Cargo.toml.
func LoadWorkspace(path string) (*Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workspace manifest: %w", err)
	}
	ws, err := ParseWorkspace(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ws, nil
}

// ParseWorkspace parses workspace Cargo.toml content. The manifest must
// declare workspace.members; an empty member list is allowed.
func ParseWorkspace(data []byte) (*Workspace, error) {
	var ws Workspace
	if err := toml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("parsing workspace manifest TOML: %w", err)
	}
	if ws.Workspace == nil {
		return nil, fmt.Errorf("workspace manifest: missing [workspace] table")
	}
	if ws.Workspace.Members == nil {
		return nil, fmt.Errorf("workspace manifest: workspace.members is required")
	}
	return &ws, nil
}

// LoadManifest reads and validates a single crate's Cargo.toml.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading crate manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseManifest parses crate Cargo.toml content. package.name is required
// and must be non-empty.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing crate manifest TOML: %w", err)
	}
	if m.Package == nil {
		return nil, fmt.Errorf("crate manifest: missing [package] table")
	}
	if m.Package.Name == "" {
		return nil, fmt.Errorf("crate manifest: package.name is required")
	}
	return &m, nil
}
