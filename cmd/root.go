package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vanica/cppforge/internal/config"
	"github.com/vanica/cppforge/internal/exitcode"
	"github.com/vanica/cppforge/internal/log"
	"github.com/vanica/cppforge/internal/ui"
)

var (
	cfgFile  string
	logLevel string
	noColor  bool

	// cfg is the merged configuration, loaded once before any command runs
	// and passed to the packages that need it.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cppforge",
	Short: "C++ project builder, class and module creator, and Docker spinup",
	Long: `cppforge scaffolds C++23 projects, classes, and modules from templates,
and drives CMake-preset builds with ninja or make.

Class, module, and project names must be valid C++ identifiers. The class
and module commands must be run from a project directory (one containing a
CMakeLists.txt).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor || os.Getenv("NO_COLOR") != "" {
			ui.DisableColor()
		}

		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		if err := log.SetLevel(level); err != nil {
			return err
		}

		cfg, err = config.Load(cfgFile)
		return err
	},
}

// Execute runs the root command, printing any failure and exiting with a
// code that encodes the failure kind.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		os.Exit(exitcode.For(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/cppforge/cppforge.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (error, warn, info, debug)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}
