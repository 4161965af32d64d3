package config

// FileName is the well-known config filename in the invocation root.
const FileName = "patchgen.yaml"

// Config represents the top-level patchgen.yaml file.
type Config struct {
	Version int     `yaml:"version"`
	Patches []Patch `yaml:"patches"`
}

// Patch describes one upstream dependency tree to override with a local
// checkout.
type Patch struct {
	// Upstream is the source URL being patched, exactly as it appears in
	// the parent Cargo.toml dependency declarations.
	Upstream string `yaml:"upstream"`
	// Source is the path of the local fork checkout, relative to the
	// invocation root. It is emitted verbatim into generated patch paths.
	Source string `yaml:"source"`
}
