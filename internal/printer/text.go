package printer

import (
	"fmt"
	"strings"

	"github.com/mvane/scenekit/pkg/typereg"
)

// printTreeText prints the hierarchy as an indented text tree.
func (p *Printer) printTreeText() error {
	return p.reg.Walk(func(h typereg.TypeHandle, depth int) error {
		if p.pruned(depth) {
			return typereg.ErrSkipSubtree
		}
		name, err := p.reg.Name(h)
		if err != nil {
			return err
		}
		indent := strings.Repeat(" ", depth*p.opts.IndentSize)
		if p.opts.ShowIDs {
			_, err = fmt.Fprintf(p.writer, "%s%s (#%d)\n", indent, name, uint32(h))
		} else {
			_, err = fmt.Fprintf(p.writer, "%s%s\n", indent, name)
		}
		return err
	})
}
