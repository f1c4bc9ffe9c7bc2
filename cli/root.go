package cli

import (
	"fmt"
	"os"

	"github.com/gregn610/siteconf/config"
	"github.com/gregn610/siteconf/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	overlay string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "siteconf",
	Short: "Manage static-site configuration records",
	Long: `Siteconf loads, validates and round-trips the YAML site configuration
a static-site generator consumes: site identity, content path and timezone,
feed toggles, link lists, pagination and theme selection.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup()
		if verbose {
			logging.SetVerbose()
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&overlay, "overlay", "", "Publish profile applied on top of the base file")
}

func configPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "siteconf.yaml"
}

func loadConfig(args []string) (*config.Config, error) {
	path := configPath(args)
	var (
		cfg *config.Config
		err error
	)
	if overlay != "" {
		cfg, err = config.LoadWithOverlay(path, overlay)
	} else {
		cfg, err = config.Load(path)
	}
	if err != nil {
		return nil, err
	}
	config.SetGlobal(cfg)
	return cfg, nil
}
