// Package exitcode maps cppforge errors onto process exit codes so that
// scripts can distinguish failure kinds symbolically.
package exitcode

import (
	"errors"

	"github.com/vanica/cppforge/internal/build"
	"github.com/vanica/cppforge/internal/docker"
	"github.com/vanica/cppforge/internal/preset"
	"github.com/vanica/cppforge/internal/project"
)

const (
	// Success indicates the command completed successfully.
	Success = 0

	// Failure indicates a runtime failure (an external tool exited non-zero).
	Failure = 1

	// ConfigError indicates bad input: an unknown preset, a malformed
	// document, an unsupported generator, or an invalid identifier.
	ConfigError = 2

	// EnvError indicates a missing piece of the environment: document,
	// descriptor, build directory, executable, or docker.
	EnvError = 3
)

// For returns the exit code for err.
func For(err error) int {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, preset.ErrPresetNotFound),
		errors.Is(err, preset.ErrMalformedDocument),
		errors.Is(err, build.ErrUnsupportedGenerator),
		errors.Is(err, project.ErrInvalidIdentifier):
		return ConfigError
	case errors.Is(err, preset.ErrDocumentNotFound),
		errors.Is(err, build.ErrDirectoryMissing),
		errors.Is(err, build.ErrExecutableMissing),
		errors.Is(err, project.ErrDescriptorNotFound),
		errors.Is(err, project.ErrNameNotFound),
		errors.Is(err, docker.ErrDockerNotFound),
		errors.Is(err, docker.ErrComposeNotFound),
		errors.Is(err, docker.ErrComposeFileMissing):
		return EnvError
	default:
		return Failure
	}
}
