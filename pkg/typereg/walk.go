package typereg

import "errors"

// Walk performs a pre-order traversal of the registered hierarchy, starting
// from the roots in registration order. fn receives each handle with its
// depth below the nearest root. Returning ErrSkipSubtree from fn prunes the
// handle's descendants; any other non-nil error aborts the walk and is
// returned to the caller.
//
// Types with multiple parents are visited once per parent path, matching
// how the hierarchy reads as a tree in tooling output.
func (r *Registry) Walk(fn func(h TypeHandle, depth int) error) error {
	for _, root := range r.Roots() {
		if err := r.walk(root, 0, fn); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) walk(h TypeHandle, depth int, fn func(TypeHandle, int) error) error {
	if err := fn(h, depth); err != nil {
		if errors.Is(err, ErrSkipSubtree) {
			return nil
		}
		return err
	}
	children, err := r.Children(h)
	if err != nil {
		return err
	}
	for _, c := range children {
		if err := r.walk(c, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Walk traverses the default registry. See Registry.Walk.
func Walk(fn func(h TypeHandle, depth int) error) error {
	return defaultRegistry.Walk(fn)
}
