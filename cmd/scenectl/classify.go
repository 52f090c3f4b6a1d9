package main

import (
	"github.com/spf13/cobra"

	"github.com/mvane/scenekit/cmd/scenectl/logger"
	"github.com/mvane/scenekit/pkg/scene"
)

func init() {
	rootCmd.AddCommand(newClassifyCmd())
}

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <token>...",
		Short: "Classify curve-kind tokens",
		Long: `The classify command maps curve-kind tokens to their enumerators the
way a format reader would. Unrecognized tokens degrade to "none" (the
reader-tolerance rule) and are reported on stderr.

Example:
  scenectl classify xyz
  scenectl classify hpr bogus t --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(args)
		},
	}
	return cmd
}

func runClassify(tokens []string) error {
	type result struct {
		Token      string `json:"token"`
		Kind       string `json:"kind"`
		Recognized bool   `json:"recognized"`
	}

	results := make([]result, 0, len(tokens))
	for _, tok := range tokens {
		kind, ok := scene.LookupCurveKind(tok)
		if !ok {
			logger.Warn("unrecognized curve-kind token, falling back", "token", tok, "kind", kind)
		}
		results = append(results, result{Token: tok, Kind: kind.String(), Recognized: ok})
	}

	if jsonOut {
		return printJSON(results)
	}
	for _, res := range results {
		if res.Recognized {
			printInfo("%s -> %s\n", res.Token, res.Kind)
		} else {
			printInfo("%s -> %s (unrecognized)\n", res.Token, res.Kind)
		}
	}
	return nil
}
