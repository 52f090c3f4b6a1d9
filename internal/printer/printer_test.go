package printer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvane/scenekit/pkg/typereg"
)

// newTestRegistry assembles:
//
//	Node
//	  Primitive
//	    Curve
//	  Group
func newTestRegistry(t *testing.T) *typereg.Registry {
	t.Helper()
	r := typereg.New()
	node := r.MustRegister("Node")
	prim := r.MustRegister("Primitive", node)
	r.MustRegister("Curve", prim)
	r.MustRegister("Group", node)
	return r
}

func TestPrintTree_Text(t *testing.T) {
	var buf bytes.Buffer
	p := New(newTestRegistry(t), &buf, DefaultOptions())
	require.NoError(t, p.PrintTree())

	want := "Node\n" +
		"  Primitive\n" +
		"    Curve\n" +
		"  Group\n"
	require.Equal(t, want, buf.String())
}

func TestPrintTree_TextWithIDs(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.ShowIDs = true
	p := New(newTestRegistry(t), &buf, opts)
	require.NoError(t, p.PrintTree())

	want := "Node (#1)\n" +
		"  Primitive (#2)\n" +
		"    Curve (#3)\n" +
		"  Group (#4)\n"
	require.Equal(t, want, buf.String())
}

func TestPrintTree_MaxDepth(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.MaxDepth = 2
	p := New(newTestRegistry(t), &buf, opts)
	require.NoError(t, p.PrintTree())

	want := "Node\n" +
		"  Primitive\n" +
		"  Group\n"
	require.Equal(t, want, buf.String())
}

func TestPrintTree_JSON(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	opts.ShowIDs = true
	p := New(newTestRegistry(t), &buf, opts)
	require.NoError(t, p.PrintTree())

	var roots []jsonType
	require.NoError(t, json.Unmarshal(buf.Bytes(), &roots))
	require.Len(t, roots, 1)
	require.Equal(t, "Node", roots[0].Name)
	require.Equal(t, uint32(1), roots[0].ID)
	require.Len(t, roots[0].Children, 2)
	require.Equal(t, "Primitive", roots[0].Children[0].Name)
	require.Equal(t, "Curve", roots[0].Children[0].Children[0].Name)
	require.Equal(t, "Group", roots[0].Children[1].Name)
}

func TestPrintTree_EmptyRegistry(t *testing.T) {
	var buf bytes.Buffer
	p := New(typereg.New(), &buf, DefaultOptions())
	require.NoError(t, p.PrintTree())
	require.Empty(t, buf.String())

	buf.Reset()
	opts := DefaultOptions()
	opts.Format = FormatJSON
	p = New(typereg.New(), &buf, opts)
	require.NoError(t, p.PrintTree())
	require.JSONEq(t, "[]", buf.String())
}
