package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanica/cppforge/internal/project"
	"github.com/vanica/cppforge/internal/scaffold"
	"github.com/vanica/cppforge/internal/ui"
)

var classAsModule bool

var classCmd = &cobra.Command{
	Use:   "class <name>",
	Short: "Generate a C++ class header and implementation",
	Long: `Class generates include/<name>.hpp and src/<name>.cpp from templates, or a
single modules/<name>.ixx module class with --module. Must be run from a
project directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := checkScaffoldPreconditions(name); err != nil {
			return err
		}

		if classAsModule {
			if err := scaffold.ClassModule(".", name); err != nil {
				return err
			}
			fmt.Println(ui.Success(fmt.Sprintf("Class '%s' generated in 'modules/%s.ixx'.", name, name)))
			return nil
		}

		if err := scaffold.Class(".", name); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Class '%s' generated in 'include/%s.hpp' and 'src/%s.cpp'.", name, name, name)))
		return nil
	},
}

// checkScaffoldPreconditions enforces what class and module share: a project
// directory and a valid identifier.
func checkScaffoldPreconditions(name string) error {
	if !project.IsProjectDir(".") {
		return fmt.Errorf("%w: you must be in a project directory to run this command", project.ErrDescriptorNotFound)
	}
	if !project.ValidIdentifier(name) {
		return fmt.Errorf("%w: '%s'; names must start with a letter and contain only letters, numbers, and underscores", project.ErrInvalidIdentifier, name)
	}
	return nil
}

func init() {
	classCmd.Flags().BoolVarP(&classAsModule, "module", "m", false, "generate a module class instead of header/implementation")
	rootCmd.AddCommand(classCmd)
}
