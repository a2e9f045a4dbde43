// Package docker wraps the docker compose lifecycle for the development
// container: compose up, an interactive shell inside the container, and a
// guaranteed compose down on the way out.
package docker

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/vanica/cppforge/internal/config"
	"github.com/vanica/cppforge/internal/execx"
	"github.com/vanica/cppforge/internal/log"
	"github.com/vanica/cppforge/internal/ui"
)

var (
	// ErrDockerNotFound reports that the docker binary is not on PATH.
	ErrDockerNotFound = errors.New("docker is not installed or not in PATH")

	// ErrComposeNotFound reports a docker without a working compose plugin.
	ErrComposeNotFound = errors.New("docker compose is not installed or not working")

	// ErrComposeFileMissing reports a missing compose file.
	ErrComposeFileMissing = errors.New("compose file does not exist")
)

// Spinup starts the dev service from the configured compose file, drops the
// user into an interactive shell in the container, and tears the service
// down when the shell exits or the user interrupts. The shell blocks for as
// long as the user stays inside; there is deliberately no timeout.
func Spinup(cfg config.DockerConfig, runner execx.Runner) error {
	if !execx.LookPath("docker") {
		return ErrDockerNotFound
	}
	if err := runner.Run(execx.Command{Name: "docker", Args: []string{"compose", "version"}, Quiet: true}); err != nil {
		return ErrComposeNotFound
	}

	info, err := os.Stat(cfg.ComposeFile)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: '%s'", ErrComposeFileMissing, cfg.ComposeFile)
	}

	projectDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	fmt.Println(ui.Success("Using project directory: " + projectDir))
	log.Info("Starting Docker Compose...")

	if err := runner.Run(execx.Command{
		Name: "docker",
		Args: []string{"compose", "-f", cfg.ComposeFile, "up", "-d", "dev"},
		Env:  []string{"PROJECT_DIR=" + projectDir},
	}); err != nil {
		teardown(cfg, runner)
		return fmt.Errorf("starting container: %w", err)
	}
	fmt.Println(ui.Success("Container started successfully."))

	// An interrupt should land in the container shell, not kill us before
	// the compose down below has run.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	log.Info("Entering the Docker container shell... Exit to stop the container.")
	shellErr := runner.Run(execx.Command{
		Name: "docker",
		Args: []string{"exec", "-it", cfg.ContainerName, "zsh"},
	})

	teardown(cfg, runner)

	if shellErr != nil && !execx.IsExit(shellErr) {
		return fmt.Errorf("container shell: %w", shellErr)
	}
	return nil
}

// teardown brings the compose service down. Failures are logged, not
// returned: the container may already be gone.
func teardown(cfg config.DockerConfig, runner execx.Runner) {
	log.Info("Bringing down Docker Compose...")
	if err := runner.Run(execx.Command{
		Name: "docker",
		Args: []string{"compose", "-f", cfg.ComposeFile, "down"},
	}); err != nil {
		log.Warn(fmt.Sprintf("compose down failed: %v", err))
	}
	fmt.Println(ui.Success("Cleanup complete."))
}
