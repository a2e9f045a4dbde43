package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vanica/cppforge/internal/docker"
	"github.com/vanica/cppforge/internal/execx"
)

var spinupCmd = &cobra.Command{
	Use:   "spinup",
	Short: "Spin up the development container",
	Long: `Spinup starts the dev service from the configured docker-compose file,
opens an interactive shell inside the container, and brings the service
down again when the shell exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return docker.Spinup(cfg.Docker, execx.ExecRunner{})
	},
}

func init() {
	rootCmd.AddCommand(spinupCmd)
}
