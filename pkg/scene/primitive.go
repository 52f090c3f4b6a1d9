package scene

import "github.com/mvane/scenekit/pkg/typereg"

// Primitive is the base class for geometry-bearing leaf nodes. It adds no
// data of its own here; it anchors the is-a relationship that lets tooling
// select every primitive in a model regardless of concrete kind.
type Primitive struct {
	BaseNode
}

// NewPrimitive creates a primitive node with the given name.
func NewPrimitive(name string) *Primitive {
	return &Primitive{BaseNode: BaseNode{name: name}}
}

// PrimitiveType returns the Primitive class handle.
func PrimitiveType() typereg.TypeHandle { return primitiveType }

// Type returns the Primitive class handle.
func (p *Primitive) Type() typereg.TypeHandle { return primitiveType }
