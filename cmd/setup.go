package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanica/cppforge/internal/config"
	"github.com/vanica/cppforge/internal/ui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the default configuration file",
	Long:  `Setup writes ~/.config/cppforge/cppforge.yaml with default settings unless it already exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, created, err := config.Setup(cfgFile)
		if err != nil {
			return err
		}
		if created {
			fmt.Println(ui.Success("Default configuration created at: " + path))
		} else {
			fmt.Println(ui.Info("Configuration file already exists at: " + path))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
