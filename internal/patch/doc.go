// Package patch resolves the members of a forked Cargo workspace checkout
// into [patch] override entries, so a parent Cargo.toml can substitute the
// local fork for its upstream source.
package patch
