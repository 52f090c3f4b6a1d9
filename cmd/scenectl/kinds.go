package main

import (
	"github.com/spf13/cobra"

	"github.com/mvane/scenekit/pkg/scene"
)

func init() {
	rootCmd.AddCommand(newKindsCmd())
}

func newKindsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the curve-kind keyword set",
		Long: `The kinds command lists the closed set of curve-kind keywords the
format recognizes, with their enumerator values.

Example:
  scenectl kinds
  scenectl kinds --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKinds()
		},
	}
	return cmd
}

func runKinds() error {
	tokens := scene.CurveKindTokens()

	if jsonOut {
		type kindInfo struct {
			Token string `json:"token"`
			Value uint8  `json:"value"`
		}
		out := make([]kindInfo, 0, len(tokens))
		for _, tok := range tokens {
			k, _ := scene.LookupCurveKind(tok)
			out = append(out, kindInfo{Token: tok, Value: uint8(k)})
		}
		return printJSON(out)
	}

	for _, tok := range tokens {
		k, _ := scene.LookupCurveKind(tok)
		printInfo("%-6s %d\n", tok, uint8(k))
	}
	return nil
}
