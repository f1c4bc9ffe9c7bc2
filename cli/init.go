package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/gregn610/siteconf/scaffold"
	"github.com/spf13/cobra"
)

// scaffoldData holds the template variables passed to every scaffold
// template.
type scaffoldData struct {
	Author   string
	SiteName string
	SiteURL  string
	Lang     string
	Timezone string
	Theme    string
}

var (
	initAuthor   string
	initName     string
	initSiteURL  string
	initLang     string
	initTimezone string
	initTheme    string
	initPublish  bool
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter siteconf.yaml",
	Long: `Init scaffolds a siteconf.yaml in the given directory (default ".").
With --publish it also writes publishconf.yaml, a profile that sets the
site URL and enables the stock feed outputs. Existing files are never
overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		data := scaffoldData{
			Author:   initAuthor,
			SiteName: initName,
			SiteURL:  initSiteURL,
			Lang:     initLang,
			Timezone: initTimezone,
			Theme:    initTheme,
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		root := "templates"
		return fs.WalkDir(scaffold.Templates, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}

			relPath, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			outPath := filepath.Join(dir, strings.TrimSuffix(relPath, ".tmpl"))

			if filepath.Base(outPath) == "publishconf.yaml" && !initPublish {
				return nil
			}

			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("%s already exists", outPath)
			}

			content, err := scaffold.Templates.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
			if err != nil {
				return fmt.Errorf("parse template %s: %w", path, err)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			if err := tmpl.Execute(f, data); err != nil {
				f.Close()
				return fmt.Errorf("render %s: %w", path, err)
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
			return nil
		})
	},
}

func init() {
	initCmd.Flags().StringVar(&initAuthor, "author", "anonymous", "Site author")
	initCmd.Flags().StringVar(&initName, "name", "A Pelican Blog", "Site name")
	initCmd.Flags().StringVar(&initSiteURL, "site-url", "https://example.com", "Published site URL (publish profile)")
	initCmd.Flags().StringVar(&initLang, "lang", "en", "Default language")
	initCmd.Flags().StringVar(&initTimezone, "timezone", "Europe/Paris", "IANA timezone")
	initCmd.Flags().StringVar(&initTheme, "theme", "themes/pelican-sober", "Theme path")
	initCmd.Flags().BoolVar(&initPublish, "publish", false, "Also write publishconf.yaml")
	rootCmd.AddCommand(initCmd)
}
