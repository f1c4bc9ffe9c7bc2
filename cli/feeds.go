package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// feedsCmd represents the feeds command
var feedsCmd = &cobra.Command{
	Use:   "feeds [file]",
	Short: "List each feed toggle with its resolved output path",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, o := range cfg.Feeds.Outputs() {
			fmt.Fprintf(out, "%-18s %s\n", o.Name, o.Ref)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(feedsCmd)
}
