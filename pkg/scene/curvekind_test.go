package scene

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCurveKind(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  CurveKind
	}{
		// The closed keyword set
		{"none keyword", "none", KindNone},
		{"xyz keyword", "xyz", KindXYZ},
		{"hpr keyword", "hpr", KindHPR},
		{"t keyword", "t", KindT},
		// Matching is exact and case-sensitive
		{"uppercase XYZ", "XYZ", KindNone},
		{"mixed case Hpr", "Hpr", KindNone},
		{"uppercase T", "T", KindNone},
		// Unrecognized tokens degrade to none, not an error
		{"bogus token", "bogus", KindNone},
		{"empty token", "", KindNone},
		{"padded keyword", " xyz", KindNone},
		{"future keyword", "quat", KindNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseCurveKind(tt.token))
		})
	}
}

func TestLookupCurveKind_ReportsRecognition(t *testing.T) {
	for _, tok := range CurveKindTokens() {
		kind, ok := LookupCurveKind(tok)
		require.True(t, ok, "canonical keyword %q must be recognized", tok)
		require.Equal(t, tok, kind.String())
	}

	kind, ok := LookupCurveKind("bogus")
	require.False(t, ok)
	require.Equal(t, KindNone, kind)

	// Same fallback as ParseCurveKind, just visible to the caller.
	kind, ok = LookupCurveKind("XYZ")
	require.False(t, ok)
	require.Equal(t, KindNone, kind)
}

func TestCurveKind_String(t *testing.T) {
	tests := []struct {
		kind CurveKind
		want string
	}{
		{KindNone, "none"},
		{KindXYZ, "xyz"},
		{KindHPR, "hpr"},
		{KindT, "t"},
		{CurveKind(9), "CurveKind(9)"},
		{CurveKind(255), "CurveKind(255)"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.kind.String())
	}
}

func TestCurveKind_RoundTrip(t *testing.T) {
	// render(parse(k)) == k for every canonical keyword.
	for _, tok := range CurveKindTokens() {
		require.Equal(t, tok, ParseCurveKind(tok).String())
	}
}

func TestCurveKindTokens_Closed(t *testing.T) {
	require.Equal(t, []string{"none", "xyz", "hpr", "t"}, CurveKindTokens())
}
