package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mvane/scenekit/internal/printer"
	"github.com/mvane/scenekit/pkg/typereg"
)

var (
	treeDepth int
	treeIDs   bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&treeIDs, "ids", false, "Show numeric handle ids")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Display the registered type hierarchy",
		Long: `The tree command displays the node type hierarchy known to the registry.

Example:
  scenectl tree
  scenectl tree --ids
  scenectl tree --depth 2 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree()
		},
	}
	return cmd
}

func runTree() error {
	opts := printer.DefaultOptions()
	opts.MaxDepth = treeDepth
	opts.ShowIDs = treeIDs
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	printVerbose("Printing %d registered types\n", typereg.Default().Len())

	p := printer.New(typereg.Default(), os.Stdout, opts)
	return p.PrintTree()
}
