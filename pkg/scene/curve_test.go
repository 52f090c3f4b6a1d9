package scene

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCurve_Defaults(t *testing.T) {
	c := NewCurve("arc")
	require.Equal(t, "arc", c.Name())
	require.Equal(t, 0, c.Subdiv())
	require.Equal(t, KindNone, c.Kind())

	unnamed := NewCurve("")
	require.Equal(t, "", unnamed.Name())
}

func TestCurve_SubdivStoredVerbatim(t *testing.T) {
	c := NewCurve("arc")

	// No range validation at this layer: the geometric consumer decides
	// what a usable count is.
	for _, v := range []int{4, 0, -1, -100, 1 << 30} {
		c.SetSubdiv(v)
		require.Equal(t, v, c.Subdiv())
	}
}

func TestCurve_KindAccessors(t *testing.T) {
	c := NewCurve("arc")
	c.SetKind(KindHPR)
	require.Equal(t, KindHPR, c.Kind())

	c.SetKind(KindNone)
	require.Equal(t, KindNone, c.Kind())
}

func TestCurve_CopyIsIndependent(t *testing.T) {
	orig := NewCurve("arc")
	orig.SetSubdiv(4)
	orig.SetKind(KindHPR)

	dup := *orig
	require.Equal(t, 4, dup.Subdiv())
	require.Equal(t, KindHPR, dup.Kind())
	require.Equal(t, "arc", dup.Name())

	dup.SetSubdiv(99)
	dup.SetKind(KindXYZ)
	dup.SetName("copy")

	require.Equal(t, 4, orig.Subdiv())
	require.Equal(t, KindHPR, orig.Kind())
	require.Equal(t, "arc", orig.Name())
}

func TestCurve_SetName(t *testing.T) {
	c := NewCurve("before")
	c.SetName("after")
	require.Equal(t, "after", c.Name())
}
