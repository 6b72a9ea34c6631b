package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <document> <pattern>",
	Short: "Search a document with a regular expression",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		res, err := svc.Search(args[0], args[1], searchLimit)
		if err != nil {
			return err
		}
		if len(res.Matches) == 0 {
			fmt.Println(dimStyle.Render("no matches"))
			return nil
		}
		for _, m := range res.Matches {
			loc := fmt.Sprintf("%d", m.Line+1)
			if m.SectionID != "" {
				loc = fmt.Sprintf("%s (%s %s)", loc, m.SectionID, m.SectionTitle)
			}
			fmt.Printf("%s: %s\n", dimStyle.Render(loc), matchStyle.Render(m.Text))
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum matches (0 = configured default)")
	rootCmd.AddCommand(searchCmd)
}
