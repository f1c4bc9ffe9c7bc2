package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Load a configuration file and report every invalid value",
	Long: `Validate runs the full load lifecycle: strict YAML decoding, the
environment overlay, and validation of every key. All errors are collected
and reported together rather than stopping at the first one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(args)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s)\n", configPath(args), cfg.Env)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
