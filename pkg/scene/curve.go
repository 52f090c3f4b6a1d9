package scene

import "github.com/mvane/scenekit/pkg/typereg"

var curveType = typereg.MustRegister("Curve", primitiveType)

// Curve is a parametric curve of some kind. See NurbsCurve for the
// concrete leaf. It holds classification data only: a subdivision hint
// and the curve's coordinate interpretation.
type Curve struct {
	Primitive
	subdiv int
	kind   CurveKind
}

// NewCurve creates a curve node with the given name. The subdivision hint
// defaults to 0 (no hint) and the kind to KindNone.
func NewCurve(name string) *Curve {
	return &Curve{Primitive: Primitive{BaseNode: BaseNode{name: name}}}
}

// CurveType returns the Curve class handle.
func CurveType() typereg.TypeHandle { return curveType }

// Type returns the Curve class handle.
func (c *Curve) Type() typereg.TypeHandle { return curveType }

// SetSubdiv stores the subdivision hint verbatim. No range is enforced:
// interpreting the count geometrically (and rejecting nonsense) is the
// downstream consumer's policy, not this layer's.
func (c *Curve) SetSubdiv(subdiv int) { c.subdiv = subdiv }

// Subdiv returns the subdivision hint. 0 means no hint.
func (c *Curve) Subdiv() int { return c.subdiv }

// SetKind sets the curve's coordinate interpretation.
func (c *Curve) SetKind(kind CurveKind) { c.kind = kind }

// Kind returns the curve's coordinate interpretation.
func (c *Curve) Kind() CurveKind { return c.kind }
