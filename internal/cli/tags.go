package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newTagsCmd creates the tags command, listing the most used tags from the
// backend analytics endpoint.
func newTagsCmd(flags *rootFlags) *cobra.Command {
	var (
		limit    int
		minCount int
	)

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the most used tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt, err := setup(ctx, flags)
			if err != nil {
				return err
			}
			defer rt.close()

			tags, err := rt.gw.TopTags(ctx, limit, minCount)
			if err != nil {
				return err
			}
			if len(tags) == 0 {
				printInfo("No tags found")
				return nil
			}
			for _, t := range tags {
				printKeyValue(t.Value, fmt.Sprintf("%d", t.Count))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of tags")
	cmd.Flags().IntVar(&minCount, "min-count", 0, "only tags used at least this often")

	return cmd
}
