package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vanica/cppforge/internal/build"
	"github.com/vanica/cppforge/internal/execx"
)

var (
	buildRunPreset     string
	buildRunExecutable string
)

var buildRunCmd = &cobra.Command{
	Use:   "build-run",
	Short: "Build the project, then run it",
	Long: `Build-run builds the named preset and, if the build succeeds, runs the
resulting executable. The run step is skipped entirely when the build
fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		driver := build.NewDriver(cfg.CMake.PresetsPath, execx.ExecRunner{})
		return driver.BuildAndRun(buildRunPreset, buildRunExecutable)
	},
}

func init() {
	buildRunCmd.Flags().StringVar(&buildRunPreset, "preset", "", "CMake configure preset name")
	buildRunCmd.Flags().StringVar(&buildRunExecutable, "executable", "", "path to the executable to run")
	buildRunCmd.MarkFlagRequired("preset")
	rootCmd.AddCommand(buildRunCmd)
}
