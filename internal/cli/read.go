package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var readHTML bool

var readCmd = &cobra.Command{
	Use:   "read <document> <section-id>...",
	Short: "Print the content of one or more sections",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		res, err := svc.ReadSections(args[0], args[1:], readHTML)
		if err != nil {
			return err
		}
		for i, sec := range res.Sections {
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(dimStyle.Render(fmt.Sprintf("-- %s %s", sec.ID, sec.Title)))
			if readHTML {
				fmt.Println(sec.HTML)
			} else {
				fmt.Println(sec.Text)
			}
		}
		return nil
	},
}

func init() {
	readCmd.Flags().BoolVar(&readHTML, "html", false, "render sections as HTML")
	rootCmd.AddCommand(readCmd)
}
