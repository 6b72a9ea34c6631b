package cli

import (
	"fmt"

	"github.com/dgallion1/docscope/internal/docs"
	"github.com/spf13/cobra"
)

var (
	tocDepth   int
	tocHeaders int
	tocExpand  []string
)

var tocCmd = &cobra.Command{
	Use:   "toc <document>",
	Short: "Print a bounded table of contents",
	Long: `Print the header outline of a document, capped by depth and header
budget. With --expand, show the deeper headings under the given section
ids instead of the top-level outline.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}

		var res *docs.TableOfContentsResult
		if len(tocExpand) > 0 {
			res, err = svc.ExpandSections(args[0], tocExpand)
		} else {
			res, err = svc.TableOfContents(args[0], docs.TOCOptions{
				MaxDepth:   tocDepth,
				MaxHeaders: tocHeaders,
			})
		}
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render(res.Filename))
		fmt.Println(res.Render())
		return nil
	},
}

func init() {
	tocCmd.Flags().IntVarP(&tocDepth, "depth", "d", 0, "maximum header depth (0 = configured default, negative = unlimited)")
	tocCmd.Flags().IntVarP(&tocHeaders, "max-headers", "n", 0, "header budget (0 = configured default, negative = unlimited)")
	tocCmd.Flags().StringSliceVarP(&tocExpand, "expand", "e", nil, "section ids to expand instead of the top-level outline")
	rootCmd.AddCommand(tocCmd)
}
