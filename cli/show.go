package cli

import (
	"fmt"

	"github.com/gregn610/siteconf/config"
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print the resolved configuration record",
	Long: `Show loads the configuration, applies the environment and any publish
overlay, and prints the resulting record followed by the resolved paths a
generator would actually use.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(args)
		if err != nil {
			return err
		}

		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		out.Write(data)

		sum, err := config.Checksum(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "# environment: %s\n", cfg.Env)
		fmt.Fprintf(out, "# content dir: %s\n", cfg.Content.ResolvedPath)
		fmt.Fprintf(out, "# theme dir:   %s\n", cfg.Theme.ResolvedPath)
		fmt.Fprintf(out, "# checksum:    %s\n", sum)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
