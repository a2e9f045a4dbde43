// Package build drives the external configure/build/run tools for a named
// CMake preset. The preset's generator string selects the build driver
// family; everything external runs through a shared execx.Runner so the
// three invocation sites handle failure the same way.
package build

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vanica/cppforge/internal/execx"
	"github.com/vanica/cppforge/internal/log"
	"github.com/vanica/cppforge/internal/preset"
	"github.com/vanica/cppforge/internal/project"
	"github.com/vanica/cppforge/internal/ui"
)

var (
	// ErrDirectoryMissing reports a build directory that does not exist yet.
	ErrDirectoryMissing = errors.New("build directory does not exist")

	// ErrUnsupportedGenerator reports a generator outside the ninja and
	// make families.
	ErrUnsupportedGenerator = errors.New("unsupported generator")

	// ErrExecutableMissing reports a resolved executable path with no
	// regular file behind it.
	ErrExecutableMissing = errors.New("executable does not exist")

	// ErrSubprocess reports an external tool that exited non-zero or
	// failed to start.
	ErrSubprocess = errors.New("subprocess failed")
)

// Driver executes preset-driven build actions. Each method resolves its
// preset fresh from the document; no state is carried between calls.
type Driver struct {
	presetsPath string
	runner      execx.Runner
}

// NewDriver returns a Driver reading presets from presetsPath and invoking
// external tools through runner.
func NewDriver(presetsPath string, runner execx.Runner) *Driver {
	return &Driver{presetsPath: presetsPath, runner: runner}
}

// Configure runs the cmake configure step for the named preset, creating the
// build directory if needed, then chains straight into Build. When
// exportCompileCommands is set, compile_commands.json export is requested.
func (d *Driver) Configure(name string, exportCompileCommands bool) error {
	p, err := preset.Find(d.presetsPath, name)
	if err != nil {
		return err
	}

	dir := p.BuildDirectory()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating build directory %s: %w", dir, err)
	}

	args := []string{"--preset=" + name}
	if exportCompileCommands {
		log.Info("Enabling export of compile commands...")
		args = append(args, "-DCMAKE_EXPORT_COMPILE_COMMANDS=ON")
	}

	log.Info(fmt.Sprintf("Running CMake with preset '%s'...", name))
	if err := d.runner.Run(execx.Command{Name: "cmake", Args: args}); err != nil {
		return subprocessError("cmake", err)
	}

	if err := d.Build(name); err != nil {
		return err
	}

	fmt.Println(ui.Success("Generate and build complete!"))
	return nil
}

// Build compiles the project for the named preset using the generator the
// preset declares. The build directory must already exist; Build never
// creates it.
func (d *Driver) Build(name string) error {
	p, err := preset.Find(d.presetsPath, name)
	if err != nil {
		return err
	}

	generator := p.GeneratorName()
	dir := p.BuildDirectory()
	log.Info(fmt.Sprintf("Using generator '%s' and build directory '%s' from preset '%s'.", generator, dir, name))

	if !dirExists(dir) {
		return fmt.Errorf("%w: '%s'; generate the project first", ErrDirectoryMissing, dir)
	}

	cmd, err := driverCommand(generator, dir)
	if err != nil {
		return err
	}

	log.Info(fmt.Sprintf("Building project with %s...", cmd.Name))
	if err := d.runner.Run(cmd); err != nil {
		return subprocessError(cmd.Name, err)
	}

	fmt.Println(ui.Success("Build completed successfully."))
	return nil
}

// Run executes the built binary for the named preset, blocking until it
// exits. The executable is taken verbatim when explicit, otherwise inferred
// from the project descriptor and the preset's build directory. The target's
// own exit status is not a tool failure; user programs may exit non-zero.
func (d *Driver) Run(name, executable string) error {
	p, err := preset.Find(d.presetsPath, name)
	if err != nil {
		return err
	}

	dir := p.BuildDirectory()
	if !dirExists(dir) {
		return fmt.Errorf("%w: '%s'; generate the project first", ErrDirectoryMissing, dir)
	}

	executable, err = resolveExecutable(dir, executable)
	if err != nil {
		return err
	}

	log.Info(fmt.Sprintf("Running target executable: %s...", executable))
	fmt.Print("\n\n\n")
	if err := d.runner.Run(execx.Command{Name: executable}); err != nil && !execx.IsExit(err) {
		return subprocessError(executable, err)
	}
	return nil
}

// BuildAndRun builds the preset and then runs the result, stopping at the
// first failure. Run's resolution logic is never reached when Build fails.
func (d *Driver) BuildAndRun(name, executable string) error {
	log.Info(fmt.Sprintf("Building project using preset '%s'...", name))
	if err := d.Build(name); err != nil {
		return err
	}
	log.Info("Build step completed.")
	log.Info("Running the project...")
	return d.Run(name, executable)
}

// resolveExecutable returns the path of the binary to run. With no explicit
// path the project name from CMakeLists.txt is joined onto the build
// directory. The result must exist as a regular file.
func resolveExecutable(buildDir, explicit string) (string, error) {
	path := explicit
	if path == "" {
		log.Info("No executable provided. Inferring from CMakeLists.txt...")
		name, err := project.ExtractName(project.DescriptorFile)
		if err != nil {
			return "", err
		}
		path = filepath.Join(buildDir, name)
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: '%s'; did the build succeed?", ErrExecutableMissing, path)
	}
	return path, nil
}

// driverCommand maps a generator string onto a build-driver invocation
// scoped to dir. Matching is case-insensitive and by substring, ninja
// before make, so "Ninja Multi-Config" routes to ninja and "Unix Makefiles"
// to make.
func driverCommand(generator, dir string) (execx.Command, error) {
	g := strings.ToLower(generator)
	switch {
	case strings.Contains(g, "ninja"):
		return execx.Command{Name: "ninja", Args: []string{"-C", dir}}, nil
	case strings.Contains(g, "make"):
		return execx.Command{Name: "make", Args: []string{"-C", dir}}, nil
	}
	return execx.Command{}, fmt.Errorf("%w: '%s'; only Ninja and Makefiles are supported", ErrUnsupportedGenerator, generator)
}

func subprocessError(tool string, err error) error {
	if status := execx.ExitStatus(err); status >= 0 {
		return fmt.Errorf("%w: %s exited with status %d", ErrSubprocess, tool, status)
	}
	return fmt.Errorf("%w: %s: %v", ErrSubprocess, tool, err)
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
