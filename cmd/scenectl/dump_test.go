package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// setDumpFlags sets the flag globals for one test and restores the
// defaults afterward.
func setDumpFlags(t *testing.T, format string, jsonFlag bool) {
	t.Helper()
	dumpFormat = format
	jsonOut = jsonFlag
	t.Cleanup(func() {
		dumpFormat = "json"
		jsonOut = false
	})
}

// entryByName finds a dumped type by display name.
func entryByName(entries []dumpEntry, name string) (dumpEntry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return dumpEntry{}, false
}

func TestRunDump_JSON(t *testing.T) {
	setDumpFlags(t, "json", false)

	var buf bytes.Buffer
	require.NoError(t, runDump(&buf))

	var entries []dumpEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))

	// The node classes register at package initialization, so the default
	// registry always carries the core hierarchy.
	node, ok := entryByName(entries, "Node")
	require.True(t, ok)
	require.Empty(t, node.Parents)

	nurbs, ok := entryByName(entries, "NurbsCurve")
	require.True(t, ok)
	curve, ok := entryByName(entries, "Curve")
	require.True(t, ok)
	require.Equal(t, []uint32{curve.ID}, nurbs.Parents)
}

func TestRunDump_YAML(t *testing.T) {
	setDumpFlags(t, "yaml", false)

	var buf bytes.Buffer
	require.NoError(t, runDump(&buf))

	var entries []dumpEntry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &entries))

	_, ok := entryByName(entries, "Primitive")
	require.True(t, ok)
}

func TestRunDump_JSONFlagWithDefaultFormat(t *testing.T) {
	setDumpFlags(t, "json", true)

	var buf bytes.Buffer
	require.NoError(t, runDump(&buf))

	var entries []dumpEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.NotEmpty(t, entries)
}

func TestRunDump_JSONFlagConflictsWithYAML(t *testing.T) {
	setDumpFlags(t, "yaml", true)

	var buf bytes.Buffer
	err := runDump(&buf)
	require.Error(t, err)
	require.Contains(t, err.Error(), "--json conflicts")
	require.Empty(t, buf.String())
}

func TestRunDump_UnknownFormat(t *testing.T) {
	setDumpFlags(t, "toml", false)

	var buf bytes.Buffer
	err := runDump(&buf)
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown dump format "toml"`)
}
