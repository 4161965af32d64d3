// Package cargo handles reading the Cargo.toml manifests of a Rust
// workspace checkout: the root workspace manifest (for its member list)
// and individual crate manifests (for their package names).
package cargo
