package scene

import "github.com/mvane/scenekit/pkg/typereg"

// Class handles, assigned once at package initialization. Registration is
// idempotent, so a second init path re-registering these names would
// observe the same handles.
var (
	nodeType      = typereg.MustRegister("Node")
	primitiveType = typereg.MustRegister("Primitive", nodeType)
)

// Node is one entry in the scene-description hierarchy.
//
// Type returns the handle of the node's concrete runtime class, even when
// the node is held through a base-typed reference; each concrete class
// overrides it with its own class handle. Generic tooling combines Type
// with typereg.IsDerivedFrom to branch on node kind.
type Node interface {
	Type() typereg.TypeHandle
	Name() string
	SetName(name string)
}

// NodeType returns the class handle for the hierarchy's root node class.
func NodeType() typereg.TypeHandle { return nodeType }

// BaseNode is the named root of the node hierarchy. Concrete classes embed
// it (directly or through Primitive) and override Type.
//
// Nodes are value-like: copying one copies its fields, and copies are
// independent. They carry no synchronization; concurrent-access discipline
// belongs to whatever container holds them.
type BaseNode struct {
	name string
}

// NewBaseNode creates a node with the given name (empty is allowed).
func NewBaseNode(name string) *BaseNode {
	return &BaseNode{name: name}
}

// Type returns the Node class handle.
func (n *BaseNode) Type() typereg.TypeHandle { return nodeType }

// Name returns the node's name ("" for unnamed nodes).
func (n *BaseNode) Name() string { return n.name }

// SetName sets the node's name.
func (n *BaseNode) SetName(name string) { n.name = name }
