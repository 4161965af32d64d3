package patch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/compound-finance/gateway/internal/cargo"
)

// State classifies a workspace member's crate manifest.
type State int

const (
	// StateValid means the member's Cargo.toml exists and declares a
	// package name; the member yields a patch entry.
	StateValid State = iota
	// StateAbsent means the member directory has no Cargo.toml. Such
	// members are skipped: not every declared member is an independently
	// buildable crate.
	StateAbsent
	// StateInvalid means the member's Cargo.toml exists but is malformed
	// or lacks package.name. A member that claims to be a crate and is
	// broken fails the whole resolution.
	StateInvalid
)

// String returns the state label used in list/check output.
func (s State) String() string {
	switch s {
	case StateValid:
		return "package"
	case StateAbsent:
		return "absent"
	case StateInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Member is the classification of a single declared workspace member.
type Member struct {
	// Path is the member path exactly as declared in workspace.members.
	Path string
	// Dir is the literal join of the source path and Path, as it will
	// appear in rendered output. Not cleaned or normalized.
	Dir string
	// Name is the crate's package name when State is StateValid.
	Name string
	// Err holds the manifest error when State is StateInvalid.
	Err error

	State State
}

// Entry is one name → path override line of a patch block.
type Entry struct {
	Name string
	Path string
}

// Inspect loads the workspace manifest under root/source and classifies
// every declared member in declaration order. Only root-manifest problems
// are returned as errors; per-member problems are reported in the result.
func Inspect(root, source string) ([]Member, error) {
	manifestPath := filepath.Join(root, source, cargo.ManifestFile)
	ws, err := cargo.LoadWorkspace(manifestPath)
	if err != nil {
		return nil, err
	}

	members := make([]Member, 0, len(ws.Workspace.Members))
	for _, p := range ws.Workspace.Members {
		members = append(members, classify(root, source, p))
	}
	return members, nil
}

// Resolve inspects the workspace under root/source and maps its members to
// patch entries: valid members emit one entry each, absent ones are skipped,
// and the first invalid one fails the whole resolution. Entry order follows
// the declared member order; duplicate names are not collapsed.
func Resolve(root, source string) ([]Entry, error) {
	members, err := Inspect(root, source)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, m := range members {
		switch m.State {
		case StateAbsent:
			continue
		case StateInvalid:
			return nil, fmt.Errorf("member %s: %w", m.Path, m.Err)
		}
		entries = append(entries, Entry{Name: m.Name, Path: m.Dir})
	}
	return entries, nil
}

func classify(root, source, memberPath string) Member {
	m := Member{Path: memberPath, Dir: joinLiteral(source, memberPath)}

	manifestPath := filepath.Join(root, source, memberPath, cargo.ManifestFile)
	if _, err := os.Stat(manifestPath); err != nil {
		m.State = StateAbsent
		return m
	}

	crate, err := cargo.LoadManifest(manifestPath)
	if err != nil {
		m.State = StateInvalid
		m.Err = err
		return m
	}

	m.State = StateValid
	m.Name = crate.Package.Name
	return m
}

// joinLiteral joins a source path and a member path without cleaning the
// result: relative segments like ".." are kept as declared, and an absolute
// member path replaces the source prefix entirely. The joined string goes
// verbatim into rendered patch output.
func joinLiteral(source, member string) string {
	if member == "" {
		return source
	}
	if filepath.IsAbs(member) {
		return member
	}
	if source == "" || strings.HasSuffix(source, "/") {
		return source + member
	}
	return source + "/" + member
}
