package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vanica/cppforge/internal/build"
	"github.com/vanica/cppforge/internal/execx"
	"github.com/vanica/cppforge/internal/log"
	"github.com/vanica/cppforge/internal/project"
	"github.com/vanica/cppforge/internal/ui"
	"github.com/vanica/cppforge/internal/watch"
)

var watchPreset string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the project whenever sources change",
	Long: `Watch observes src/, include/, modules/, and CMakeLists.txt and rebuilds
the named preset after each change. Build failures are reported and
watching continues. Interrupt to stop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !project.IsProjectDir(".") {
			return fmt.Errorf("%w: you must be in a project directory to run this command", project.ErrDescriptorNotFound)
		}

		driver := build.NewDriver(cfg.CMake.PresetsPath, execx.ExecRunner{})

		// Coalesce watcher callbacks into a channel so builds never overlap.
		changes := make(chan struct{}, 1)
		watcher, err := watch.New([]string{"src", "include", "modules", project.DescriptorFile}, func() {
			select {
			case changes <- struct{}{}:
			default:
			}
		})
		if err != nil {
			return err
		}
		defer watcher.Stop()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		go watcher.Start(ctx)

		log.Info(fmt.Sprintf("Watching for changes (preset '%s')...", watchPreset))
		for {
			select {
			case <-ctx.Done():
				log.Info("Stopped watching.")
				return nil
			case <-changes:
				if err := driver.Build(watchPreset); err != nil {
					fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
				}
				log.Info("Watching for changes...")
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchPreset, "preset", "", "CMake configure preset name")
	watchCmd.MarkFlagRequired("preset")
	rootCmd.AddCommand(watchCmd)
}
