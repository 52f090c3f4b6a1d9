package main

import (
	"fmt"
	rtdebug "runtime/debug"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "scenectl %s\n", rootCmd.Version)

			// Build metadata comes from the module system rather than
			// link-time variables; absent metadata is simply omitted.
			info, ok := rtdebug.ReadBuildInfo()
			if !ok {
				return
			}
			fmt.Fprintf(out, "  go: %s\n", info.GoVersion)
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					fmt.Fprintf(out, "  commit: %s\n", s.Value)
				case "vcs.time":
					fmt.Fprintf(out, "  built: %s\n", s.Value)
				}
			}
		},
	}
}
