package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vanica/cppforge/internal/build"
	"github.com/vanica/cppforge/internal/execx"
)

var buildPreset string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the project for a CMake preset",
	Long: `Build compiles the project using the generator and build directory from
the named preset. The project must have been generated first; build never
creates the build directory itself.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		driver := build.NewDriver(cfg.CMake.PresetsPath, execx.ExecRunner{})
		return driver.Build(buildPreset)
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildPreset, "preset", "", "CMake configure preset name")
	buildCmd.MarkFlagRequired("preset")
	rootCmd.AddCommand(buildCmd)
}
