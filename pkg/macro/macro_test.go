//go:build unit
// +build unit

package macro

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefine_ExpandsEarlierDefinitions(t *testing.T) {
	x := New()
	require.Equal(t, "/gem_sw/prod", x.Define("SUPPORT", "/gem_sw/prod"))
	require.Equal(t, "/gem_sw/prod/iocStats", x.Define("IOCSTATS", "$(SUPPORT)/iocStats"))

	value, ok := x.Lookup("IOCSTATS")
	require.True(t, ok)
	require.Equal(t, "/gem_sw/prod/iocStats", value)
}

func TestDefine_NoForwardReferences(t *testing.T) {
	x := New()
	// A references B before B is defined: the reference stays literal
	// and is not revisited once B appears.
	require.Equal(t, "$(B)", x.Define("A", "$(B)"))
	x.Define("B", "x")

	value, _ := x.Lookup("A")
	require.Equal(t, "$(B)", value)
}

func TestDefine_UndefinedReferencePassesThrough(t *testing.T) {
	x := New()
	require.Equal(t, "$(NOWHERE)/lib", x.Define("A", "$(NOWHERE)/lib"))
}

func TestDefine_LaterDefinitionOverwrites(t *testing.T) {
	x := New()
	x.Define("A", "one")
	x.Define("A", "two")
	x.Define("B", "$(A)")

	value, _ := x.Lookup("B")
	require.Equal(t, "two", value)
}

func TestExpand_MalformedReferencesNotMatched(t *testing.T) {
	x := New()
	x.Define("A", "x")
	// Unbalanced or oddly-spelled references are not references at all.
	require.Equal(t, "$(A", x.Expand("$(A"))
	require.Equal(t, "${A}", x.Expand("${A}"))
	require.Equal(t, "$(A-B)", x.Expand("$(A-B)"))
	require.Equal(t, "x and x", x.Expand("$(A) and $(A)"))
}

func TestExpander_Deterministic(t *testing.T) {
	lines := [][2]string{
		{"EPICS", "/gem_sw/prod/R3.14.12.6"},
		{"SUPPORT", "$(EPICS)/support"},
		{"IOCSTATS", "$(SUPPORT)/iocStats/3-1-14-3-BR314"},
	}
	run := func() []string {
		x := New()
		var out []string
		for _, line := range lines {
			out = append(out, x.Define(line[0], line[1]))
		}
		return out
	}
	require.Equal(t, run(), run())
}
