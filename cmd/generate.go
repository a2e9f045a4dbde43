package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vanica/cppforge/internal/build"
	"github.com/vanica/cppforge/internal/execx"
)

var (
	generatePreset  string
	exportCommands  bool
	noExportCommand bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Configure and build the project for a CMake preset",
	Long: `Generate runs the CMake configure step for the named preset, creating the
preset's build directory if necessary, then builds the project with the
generator the preset declares. Compile-command export is on by default so
clangd picks up the compilation database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		export := exportCommands && !noExportCommand
		driver := build.NewDriver(cfg.CMake.PresetsPath, execx.ExecRunner{})
		return driver.Configure(generatePreset, export)
	},
}

func init() {
	generateCmd.Flags().StringVar(&generatePreset, "preset", "", "CMake configure preset name")
	generateCmd.Flags().BoolVar(&exportCommands, "export-compile-commands", true, "export compile_commands.json during configure")
	generateCmd.Flags().BoolVar(&noExportCommand, "no-export-compile-commands", false, "disable compile command export")
	generateCmd.MarkFlagRequired("preset")
	rootCmd.AddCommand(generateCmd)
}
