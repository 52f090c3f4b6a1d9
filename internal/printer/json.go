package printer

import (
	"encoding/json"

	"github.com/mvane/scenekit/pkg/typereg"
)

// jsonType represents one registered type in JSON format.
type jsonType struct {
	Name     string     `json:"name"`
	ID       uint32     `json:"id,omitempty"`
	Children []jsonType `json:"children,omitempty"`
}

// printTreeJSON prints the hierarchy as a nested JSON array of roots.
func (p *Printer) printTreeJSON() error {
	roots := p.reg.Roots()
	out := make([]jsonType, 0, len(roots))
	for _, root := range roots {
		jt, err := p.buildJSON(root, 0)
		if err != nil {
			return err
		}
		out = append(out, jt)
	}

	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// buildJSON assembles the subtree rooted at h.
func (p *Printer) buildJSON(h typereg.TypeHandle, depth int) (jsonType, error) {
	name, err := p.reg.Name(h)
	if err != nil {
		return jsonType{}, err
	}
	jt := jsonType{Name: name}
	if p.opts.ShowIDs {
		jt.ID = uint32(h)
	}
	if p.pruned(depth + 1) {
		return jt, nil
	}

	children, err := p.reg.Children(h)
	if err != nil {
		return jsonType{}, err
	}
	for _, c := range children {
		child, err := p.buildJSON(c, depth+1)
		if err != nil {
			return jsonType{}, err
		}
		jt.Children = append(jt.Children, child)
	}
	return jt, nil
}
