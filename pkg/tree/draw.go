package tree

import (
	"fmt"
	"strings"

	"github.com/lintel-tools/lintel/pkg/types"
)

// Draw renders the document hierarchy as indented ASCII text, roots first,
// children in load order under their parent. Documents whose parent is not
// loaded are drawn as roots so a broken hierarchy still prints.
func (t *Tree) Draw() string {
	var b strings.Builder
	for _, d := range t.docs {
		if d.IsRoot() || t.byPrefix[d.Parent] == nil {
			t.drawDocument(&b, d, 0, map[string]bool{})
		}
	}
	return b.String()
}

func (t *Tree) drawDocument(b *strings.Builder, d *types.Document, depth int, seen map[string]bool) {
	if seen[d.Prefix] {
		return
	}
	seen[d.Prefix] = true

	indent := strings.Repeat("    ", depth)
	label := d.Prefix
	if d.Name != "" {
		label = fmt.Sprintf("%s (%s)", d.Prefix, d.Name)
	}
	fmt.Fprintf(b, "%s%s [%d items]\n", indent, label, d.Len())

	for _, child := range t.docs {
		if child.Parent == d.Prefix {
			t.drawDocument(b, child, depth+1, seen)
		}
	}
}
