package scene

import "fmt"

// CurveKind classifies how a parametric curve's coordinates are
// interpreted. It is a flat, closed enumeration with no transitions: a
// classification tag, not a state.
type CurveKind uint8

const (
	// KindNone means the curve's interpretation is unspecified.
	KindNone CurveKind = iota
	// KindXYZ marks a positional (translation) curve.
	KindXYZ
	// KindHPR marks a rotational (heading/pitch/roll) curve.
	KindHPR
	// KindT marks a parametric (timing) curve.
	KindT
)

// Keyword tokens as they appear in the interchange format. Matching is
// exact and case-sensitive.
const (
	tokenNone = "none"
	tokenXYZ  = "xyz"
	tokenHPR  = "hpr"
	tokenT    = "t"
)

// ParseCurveKind maps a curve-kind keyword from the interchange format to
// its CurveKind. Any unrecognized token maps to KindNone rather than
// failing, so a file written with a newer keyword set still loads; the
// curve degrades to "unspecified" instead of aborting the whole read.
// Callers that want to surface the skew should use LookupCurveKind.
func ParseCurveKind(token string) CurveKind {
	k, _ := LookupCurveKind(token)
	return k
}

// LookupCurveKind maps a curve-kind keyword to its CurveKind and reports
// whether the token was recognized. Unrecognized tokens yield
// (KindNone, false), letting tooling emit a diagnostic before falling back.
func LookupCurveKind(token string) (CurveKind, bool) {
	switch token {
	case tokenNone:
		return KindNone, true
	case tokenXYZ:
		return KindXYZ, true
	case tokenHPR:
		return KindHPR, true
	case tokenT:
		return KindT, true
	default:
		return KindNone, false
	}
}

// String renders the canonical keyword for k. KindNone renders "none",
// the unspecified token, which is distinct from the three real keywords.
func (k CurveKind) String() string {
	switch k {
	case KindNone:
		return tokenNone
	case KindXYZ:
		return tokenXYZ
	case KindHPR:
		return tokenHPR
	case KindT:
		return tokenT
	default:
		return fmt.Sprintf("CurveKind(%d)", uint8(k))
	}
}

// CurveKindTokens returns the closed keyword set in enumerator order.
func CurveKindTokens() []string {
	return []string{tokenNone, tokenXYZ, tokenHPR, tokenT}
}
