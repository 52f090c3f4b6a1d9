package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvane/scenekit/pkg/typereg"
)

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the registry's structural invariants",
		Long: `The verify command scans the registry for structural problems: parent
cycles and types with no parents besides the hierarchy root. A clean
report means descendant queries can be trusted.

Example:
  scenectl verify
  scenectl verify --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify()
		},
	}
	return cmd
}

func runVerify() error {
	rep := typereg.Verify()

	if jsonOut {
		type jsonIssue struct {
			Kind   string `json:"kind"`
			Handle uint32 `json:"handle"`
			Name   string `json:"name"`
		}
		out := struct {
			Checked int         `json:"checked"`
			OK      bool        `json:"ok"`
			Issues  []jsonIssue `json:"issues,omitempty"`
		}{Checked: rep.Checked, OK: rep.OK()}
		for _, issue := range rep.Issues {
			out.Issues = append(out.Issues, jsonIssue{
				Kind:   issue.Kind.String(),
				Handle: uint32(issue.Handle),
				Name:   issue.Name,
			})
		}
		if err := printJSON(out); err != nil {
			return err
		}
	} else {
		printInfo("checked %d types\n", rep.Checked)
		for _, issue := range rep.Issues {
			printInfo("  %s\n", issue)
		}
	}

	if !rep.OK() {
		return fmt.Errorf("registry verification found %d issue(s)", len(rep.Issues))
	}
	printVerbose("registry is structurally sound\n")
	return nil
}
