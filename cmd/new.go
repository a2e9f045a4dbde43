package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanica/cppforge/internal/project"
	"github.com/vanica/cppforge/internal/scaffold"
	"github.com/vanica/cppforge/internal/ui"
)

var newProd bool

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new C++23 project",
	Long: `New scaffolds a complete C++23 project: CMakeLists.txt, a CMake preset,
vcpkg manifest, clangd and clang-format configuration, and a hello-world
main with a starter module. With --prod the preset is rendered in Release
mode instead of Debug.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !project.ValidIdentifier(name) {
			return fmt.Errorf("%w: '%s'; names must start with a letter and contain only letters, numbers, and underscores", project.ErrInvalidIdentifier, name)
		}

		projectDir, err := scaffold.NewProject(".", name, newProd)
		if err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Project %s successfully created in %s!", name, projectDir)))
		fmt.Println("Don't forget to run: vcpkg install to install dependencies.")
		return nil
	},
}

func init() {
	newCmd.Flags().BoolVar(&newProd, "prod", false, "create the project in Release mode")
	rootCmd.AddCommand(newCmd)
}
