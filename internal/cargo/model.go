package cargo

// Workspace represents the root Cargo.toml of a multi-crate workspace.
// The section is a pointer so a missing [workspace] table can be told
// apart from an empty one.
type Workspace struct {
	Workspace *WorkspaceSection `toml:"workspace"`
}

// WorkspaceSection holds the member list of a workspace manifest.
// Members is nil when the key is absent, empty when declared as [].
type WorkspaceSection struct {
	Members []string `toml:"members"`
}

// Manifest represents a single crate's Cargo.toml.
type Manifest struct {
	Package *Package `toml:"package"`
}

// Package is the [package] table of a crate manifest.
type Package struct {
	Name string `toml:"name"`
}
