package workspace

import (
	"fmt"
	"strings"
)

// Encode serializes a live snapshot back into the declarative config format:
// groups in creation order, items in display order, paths collapsed with the
// "~" home marker. Parse(Encode(live, home)) is structurally equal to live
// for any snapshot with unique names per group.
func Encode(live Live, home string) string {
	var b strings.Builder
	for i, g := range live.Groups {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s:\n", g.Name)
		for _, item := range g.Items {
			path := CollapseHome(item.Path, home)
			if path == "" {
				fmt.Fprintf(&b, "  %s:\n", item.Name)
			} else {
				fmt.Fprintf(&b, "  %s: %s\n", item.Name, path)
			}
		}
	}
	return b.String()
}
