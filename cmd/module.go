package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanica/cppforge/internal/scaffold"
	"github.com/vanica/cppforge/internal/ui"
)

var moduleCmd = &cobra.Command{
	Use:   "module <name>",
	Short: "Generate a C++ module implementation file",
	Long: `Module generates src/<name>.ixx from a template. Must be run from a
project directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := checkScaffoldPreconditions(name); err != nil {
			return err
		}

		if err := scaffold.Module(".", name); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Module '%s' generated in 'src/%s.ixx'.", name, name)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moduleCmd)
}
