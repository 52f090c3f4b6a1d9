package typereg

import "fmt"

// TypeHandle is a small, copyable identifier for a registered node type.
// Handles are assigned monotonically at registration and stay stable for
// the process lifetime. Using handles (instead of reflected types) keeps
// dispatch allocation-free and works across independently compiled
// consumers of the format.
type TypeHandle uint32

// HandleNone is the zero TypeHandle. It never refers to a registered type.
const HandleNone TypeHandle = 0

// Valid reports whether h could refer to a registered type. It does not
// consult any registry; use Registry.Name for an existence check.
func (h TypeHandle) Valid() bool { return h != HandleNone }

// String renders the handle's display name from the default registry, or
// a numeric placeholder if the handle is not registered there.
func (h TypeHandle) String() string {
	if name, err := Name(h); err == nil {
		return name
	}
	return fmt.Sprintf("TypeHandle(%d)", uint32(h))
}
