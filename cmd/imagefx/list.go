package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/imagefx"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available effects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDISPLAY NAME\tALIAS")
			for _, e := range imagefx.Effects() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e, displayName(e), e.Alias())
			}
			return tw.Flush()
		},
	}
}

// displayName turns "oil-paint" into "Oil Paint".
func displayName(e imagefx.Effect) string {
	return cases.Title(language.English).String(strings.ReplaceAll(e.String(), "-", " "))
}
