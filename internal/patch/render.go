package patch

import (
	"fmt"
	"strings"
)

// Render formats a patch block: one [patch."<upstream>"] header followed by
// one override line per entry, in entry order. Paths are placed between the
// quotes as-is; a path containing a quote character will produce a broken
// line, which matches Cargo's own inability to express such a path.
func Render(upstream string, entries []Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[patch.\"%s\"]\n", upstream)
	for _, e := range entries {
		fmt.Fprintf(&b, "%s = { path = \"%s\" }\n", e.Name, e.Path)
	}
	return b.String()
}
