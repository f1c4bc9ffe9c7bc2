package cli

import (
	"context"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gregn610/siteconf/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Revalidate the configuration every time it is saved",
	Long: `Watch keeps the configuration file under observation and re-runs the
full load lifecycle on every save, logging the validation outcome. Useful
in a second terminal while editing. Stop with Ctrl-C.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath(args)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return watchLoop(ctx, path)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func watchLoop(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Editors typically replace the file, so watch the directory and
	// filter on the file name.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	base := filepath.Base(path)
	revalidate(path)

	// Debounce: write+rename bursts from editors collapse into one reload.
	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("watch stopped")
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(200*time.Millisecond, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			revalidate(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watcher error")
		}
	}
}

func revalidate(path string) {
	var err error
	if overlay != "" {
		_, err = config.LoadWithOverlay(path, overlay)
	} else {
		_, err = config.Load(path)
	}
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("configuration invalid")
		return
	}
	log.Info().Str("path", path).Msg("configuration valid")
}
