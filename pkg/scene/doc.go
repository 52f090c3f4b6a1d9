// Package scene defines the typed node classes of the hierarchical
// scene-description interchange format.
//
// Every node class registers itself with pkg/typereg during package
// initialization and exposes its class handle through a XxxType function.
// The Node interface's Type method returns the handle of a node's concrete
// runtime class even through a base-typed reference, which is how generic
// format tooling recovers node kind and filters with
// typereg.IsDerivedFrom (e.g. "process every node that is-a Primitive").
//
// The parametric curve classes (Curve, NurbsCurve) are the leaf types
// here; they hold classification data only. Curve mathematics, the file
// grammar, and scene-graph traversal belong to their own components.
package scene
