package scene

import "github.com/mvane/scenekit/pkg/typereg"

var nurbsCurveType = typereg.MustRegister("NurbsCurve", curveType)

// NurbsCurve is a parametric NURBS curve. It stores the curve's order and
// knot vector as plain data for the format tooling to carry; evaluating
// the curve is the geometry pipeline's job.
type NurbsCurve struct {
	Curve
	order int
	knots []float64
}

// NewNurbsCurve creates a NURBS curve node with the given name.
func NewNurbsCurve(name string) *NurbsCurve {
	return &NurbsCurve{Curve: Curve{Primitive: Primitive{BaseNode: BaseNode{name: name}}}}
}

// NurbsCurveType returns the NurbsCurve class handle.
func NurbsCurveType() typereg.TypeHandle { return nurbsCurveType }

// Type returns the NurbsCurve class handle.
func (c *NurbsCurve) Type() typereg.TypeHandle { return nurbsCurveType }

// SetOrder sets the curve's order (degree + 1). Stored verbatim.
func (c *NurbsCurve) SetOrder(order int) { c.order = order }

// Order returns the curve's order.
func (c *NurbsCurve) Order() int { return c.order }

// Degree returns the curve's degree, one less than its order.
func (c *NurbsCurve) Degree() int { return c.order - 1 }

// SetKnots replaces the knot vector. The slice is copied.
func (c *NurbsCurve) SetKnots(knots []float64) {
	if len(knots) == 0 {
		c.knots = nil
		return
	}
	c.knots = make([]float64, len(knots))
	copy(c.knots, knots)
}

// Knots returns a copy of the knot vector.
func (c *NurbsCurve) Knots() []float64 {
	if len(c.knots) == 0 {
		return nil
	}
	out := make([]float64, len(c.knots))
	copy(out, c.knots)
	return out
}

// NumKnots returns the knot vector's length.
func (c *NurbsCurve) NumKnots() int { return len(c.knots) }

// Clone returns an independent copy of the curve, including its knot
// vector. A plain struct copy would share the knot slice.
func (c *NurbsCurve) Clone() *NurbsCurve {
	dup := *c
	if len(c.knots) > 0 {
		dup.knots = make([]float64, len(c.knots))
		copy(dup.knots, c.knots)
	}
	return &dup
}
