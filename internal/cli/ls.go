package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List discoverable documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		entries, err := svc.ListDocuments()
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s  %s  %s\n",
				dimStyle.Render(e.FileID),
				titleStyle.Render(e.RelPath),
				dimStyle.Render(fmt.Sprintf("%d bytes", e.SizeBytes)),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
