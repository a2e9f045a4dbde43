package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vanica/cppforge/internal/build"
	"github.com/vanica/cppforge/internal/execx"
)

var (
	runPreset     string
	runExecutable string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the built executable for a CMake preset",
	Long: `Run executes the project's binary from the preset's build directory,
inheriting the console. Without --executable the binary name is inferred
from the project() line of CMakeLists.txt. The program's own exit status is
passed through, not treated as a cppforge failure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		driver := build.NewDriver(cfg.CMake.PresetsPath, execx.ExecRunner{})
		return driver.Run(runPreset, runExecutable)
	},
}

func init() {
	runCmd.Flags().StringVar(&runPreset, "preset", "", "CMake configure preset name")
	runCmd.Flags().StringVar(&runExecutable, "executable", "", "path to the executable to run")
	runCmd.MarkFlagRequired("preset")
	rootCmd.AddCommand(runCmd)
}
