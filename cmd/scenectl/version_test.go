package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCmd_ReportsRootVersion(t *testing.T) {
	cmd := newVersionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, cmd.Execute())

	lines := strings.Split(buf.String(), "\n")
	require.Equal(t, "scenectl "+rootCmd.Version, lines[0])
}
