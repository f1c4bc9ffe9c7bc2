package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gregn610/siteconf/config"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Re-serialize a configuration record as YAML or JSON",
	Long: `Export loads and validates the configuration, then writes it back out.
YAML output reloads to a field-for-field equal record; JSON output is for
consumers that do not speak YAML.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(args)
		if err != nil {
			return err
		}

		var data []byte
		switch exportFormat {
		case "yaml":
			data, err = config.Marshal(cfg)
		case "json":
			data, err = json.MarshalIndent(cfg, "", "  ")
		default:
			return fmt.Errorf("unknown format %q (yaml or json)", exportFormat)
		}
		if err != nil {
			return err
		}
		if exportFormat == "json" {
			data = append(data, '\n')
		}

		if exportOut == "" {
			cmd.OutOrStdout().Write(data)
			return nil
		}
		return os.WriteFile(exportOut, data, 0o644)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "yaml", "Output format: yaml or json")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
