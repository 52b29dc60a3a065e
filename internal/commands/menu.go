package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"mdnotes/internal/menu"
)

func addMenu(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the application menu and the signal each entry emits.",
		Example: `
mdnotes menu
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := menu.Build()
			if err := spec.Validate(); err != nil {
				return err
			}
			printMenu(cmd.OutOrStdout(), spec)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func printMenu(w io.Writer, spec menu.Spec) {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Group"), bold("Entry"), bold("Label"), bold("Accelerator"), bold("Signal"))

	for _, g := range spec.Groups {
		for _, e := range g.Entries {
			switch {
			case e.Kind == menu.KindSeparator:
				tbl.AddRow(g.Label, faint("(separator)"), "", "", "")
			case e.Kind.Predefined():
				tbl.AddRow(g.Label, faint("("+e.Kind.String()+")"), e.Label, faint("platform"), faint("native"))
			default:
				tbl.AddRow(g.Label, e.ID.String(), e.Label, e.Accelerator, string(e.ID.Signal()))
			}
		}
	}

	_, _ = fmt.Fprintln(w, tbl)
}
