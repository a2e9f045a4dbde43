package build

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vanica/cppforge/internal/execx"
	"github.com/vanica/cppforge/internal/preset"
	"github.com/vanica/cppforge/internal/project"
)

// fakeRunner records commands instead of executing them.
type fakeRunner struct {
	commands []execx.Command
	err      error
}

func (f *fakeRunner) Run(c execx.Command) error {
	f.commands = append(f.commands, c)
	return f.err
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func setupProject(t *testing.T, presetsJSON string) {
	t.Helper()
	chdir(t, t.TempDir())
	if err := os.WriteFile("CMakePresets.json", []byte(presetsJSON), 0644); err != nil {
		t.Fatalf("Failed to write presets: %v", err)
	}
}

func TestBuildDirectoryMissing(t *testing.T) {
	setupProject(t, `{"configurePresets":[{"name":"dbg","binaryDir":"out/dbg"}]}`)
	runner := &fakeRunner{}
	driver := NewDriver("CMakePresets.json", runner)

	err := driver.Build("dbg")
	if !errors.Is(err, ErrDirectoryMissing) {
		t.Fatalf("Expected ErrDirectoryMissing, got %v", err)
	}
	if len(runner.commands) != 0 {
		t.Errorf("Expected no subprocess invocation, got %v", runner.commands)
	}
}

func TestBuildDefaultsToNinja(t *testing.T) {
	setupProject(t, `{"configurePresets":[{"name":"dbg","binaryDir":"out/dbg"}]}`)
	if err := os.MkdirAll("out/dbg", 0755); err != nil {
		t.Fatalf("Failed to create build dir: %v", err)
	}
	runner := &fakeRunner{}
	driver := NewDriver("CMakePresets.json", runner)

	if err := driver.Build("dbg"); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(runner.commands) != 1 {
		t.Fatalf("Expected 1 command, got %d", len(runner.commands))
	}
	cmd := runner.commands[0]
	if cmd.Name != "ninja" {
		t.Errorf("Expected ninja driver, got %q", cmd.Name)
	}
	if len(cmd.Args) != 2 || cmd.Args[0] != "-C" || cmd.Args[1] != "out/dbg" {
		t.Errorf("Expected [-C out/dbg], got %v", cmd.Args)
	}
}

func TestGeneratorFamilyMatching(t *testing.T) {
	tests := []struct {
		generator string
		driver    string
	}{
		{"Ninja", "ninja"},
		{"Ninja Multi-Config", "ninja"},
		{"Unix Makefiles", "make"},
		{"MinGW Makefiles", "make"},
		{"NINJA", "ninja"},
	}
	for _, tt := range tests {
		t.Run(tt.generator, func(t *testing.T) {
			cmd, err := driverCommand(tt.generator, "build")
			if err != nil {
				t.Fatalf("driverCommand failed: %v", err)
			}
			if cmd.Name != tt.driver {
				t.Errorf("Expected %q, got %q", tt.driver, cmd.Name)
			}
		})
	}
}

func TestBuildUnsupportedGenerator(t *testing.T) {
	setupProject(t, `{"presets":[{"name":"vs","generator":"Visual Studio 17 2022"}]}`)
	if err := os.MkdirAll("build", 0755); err != nil {
		t.Fatalf("Failed to create build dir: %v", err)
	}
	runner := &fakeRunner{}
	driver := NewDriver("CMakePresets.json", runner)

	err := driver.Build("vs")
	if !errors.Is(err, ErrUnsupportedGenerator) {
		t.Fatalf("Expected ErrUnsupportedGenerator, got %v", err)
	}
	if len(runner.commands) != 0 {
		t.Errorf("Expected no subprocess invocation, got %v", runner.commands)
	}
}

func TestBuildSubprocessFailure(t *testing.T) {
	setupProject(t, `{"presets":[{"name":"dbg"}]}`)
	if err := os.MkdirAll("build", 0755); err != nil {
		t.Fatalf("Failed to create build dir: %v", err)
	}
	runner := &fakeRunner{err: errors.New("boom")}
	driver := NewDriver("CMakePresets.json", runner)

	err := driver.Build("dbg")
	if !errors.Is(err, ErrSubprocess) {
		t.Errorf("Expected ErrSubprocess, got %v", err)
	}
}

func TestConfigureCreatesBuildDirAndChainsToBuild(t *testing.T) {
	setupProject(t, `{"presets":[{"name":"dbg","binaryDir":"out/dbg"}]}`)
	runner := &fakeRunner{}
	driver := NewDriver("CMakePresets.json", runner)

	if err := driver.Configure("dbg", true); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}

	if _, err := os.Stat("out/dbg"); err != nil {
		t.Errorf("Expected build directory to be created: %v", err)
	}
	if len(runner.commands) != 2 {
		t.Fatalf("Expected cmake then ninja, got %v", runner.commands)
	}
	cmake := runner.commands[0]
	if cmake.Name != "cmake" {
		t.Errorf("Expected cmake first, got %q", cmake.Name)
	}
	if cmake.Args[0] != "--preset=dbg" {
		t.Errorf("Expected --preset=dbg, got %v", cmake.Args)
	}
	if cmake.Args[1] != "-DCMAKE_EXPORT_COMPILE_COMMANDS=ON" {
		t.Errorf("Expected compile-command export flag, got %v", cmake.Args)
	}
	if runner.commands[1].Name != "ninja" {
		t.Errorf("Expected ninja second, got %q", runner.commands[1].Name)
	}
}

func TestConfigureWithoutExportFlag(t *testing.T) {
	setupProject(t, `{"presets":[{"name":"dbg"}]}`)
	runner := &fakeRunner{}
	driver := NewDriver("CMakePresets.json", runner)

	if err := driver.Configure("dbg", false); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	if len(runner.commands[0].Args) != 1 {
		t.Errorf("Expected only the preset argument, got %v", runner.commands[0].Args)
	}
}

func TestConfigureIsIdempotentOnExistingDir(t *testing.T) {
	setupProject(t, `{"presets":[{"name":"dbg","binaryDir":"out/dbg"}]}`)
	if err := os.MkdirAll("out/dbg", 0755); err != nil {
		t.Fatalf("Failed to create build dir: %v", err)
	}
	runner := &fakeRunner{}
	driver := NewDriver("CMakePresets.json", runner)

	if err := driver.Configure("dbg", false); err != nil {
		t.Fatalf("Configure on existing dir failed: %v", err)
	}
}

func TestRunWithoutDescriptor(t *testing.T) {
	setupProject(t, `{"presets":[{"name":"dbg","binaryDir":"out/dbg"}]}`)
	if err := os.MkdirAll("out/dbg", 0755); err != nil {
		t.Fatalf("Failed to create build dir: %v", err)
	}
	if err := os.Remove("CMakeLists.txt"); err != nil && !os.IsNotExist(err) {
		t.Fatalf("Failed to remove descriptor: %v", err)
	}
	runner := &fakeRunner{}
	driver := NewDriver("CMakePresets.json", runner)

	err := driver.Run("dbg", "")
	if !errors.Is(err, project.ErrDescriptorNotFound) {
		t.Fatalf("Expected ErrDescriptorNotFound, got %v", err)
	}
	if len(runner.commands) != 0 {
		t.Errorf("Expected no subprocess invocation, got %v", runner.commands)
	}
}

func TestRunDirectoryMissing(t *testing.T) {
	setupProject(t, `{"presets":[{"name":"dbg","binaryDir":"out/dbg"}]}`)
	runner := &fakeRunner{}
	driver := NewDriver("CMakePresets.json", runner)

	err := driver.Run("dbg", "")
	if !errors.Is(err, ErrDirectoryMissing) {
		t.Errorf("Expected ErrDirectoryMissing, got %v", err)
	}
}

func TestRunInfersExecutableFromDescriptor(t *testing.T) {
	setupProject(t, `{"presets":[{"name":"dbg","binaryDir":"out/dbg"}]}`)
	if err := os.MkdirAll("out/dbg", 0755); err != nil {
		t.Fatalf("Failed to create build dir: %v", err)
	}
	if err := os.WriteFile("CMakeLists.txt", []byte("project(MyApp VERSION 1.0)\n"), 0644); err != nil {
		t.Fatalf("Failed to write descriptor: %v", err)
	}
	if err := os.WriteFile(filepath.Join("out/dbg", "MyApp"), []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("Failed to write executable: %v", err)
	}
	runner := &fakeRunner{}
	driver := NewDriver("CMakePresets.json", runner)

	if err := driver.Run("dbg", ""); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(runner.commands) != 1 {
		t.Fatalf("Expected 1 command, got %d", len(runner.commands))
	}
	if runner.commands[0].Name != filepath.Join("out/dbg", "MyApp") {
		t.Errorf("Expected inferred executable path, got %q", runner.commands[0].Name)
	}
}

func TestRunExplicitExecutableMissing(t *testing.T) {
	setupProject(t, `{"presets":[{"name":"dbg"}]}`)
	if err := os.MkdirAll("build", 0755); err != nil {
		t.Fatalf("Failed to create build dir: %v", err)
	}
	runner := &fakeRunner{}
	driver := NewDriver("CMakePresets.json", runner)

	err := driver.Run("dbg", "build/nope")
	if !errors.Is(err, ErrExecutableMissing) {
		t.Fatalf("Expected ErrExecutableMissing, got %v", err)
	}
	if len(runner.commands) != 0 {
		t.Errorf("Expected no subprocess invocation, got %v", runner.commands)
	}
}

func TestBuildAndRunShortCircuitsOnBuildFailure(t *testing.T) {
	setupProject(t, `{"presets":[{"name":"dbg"}]}`)
	runner := &fakeRunner{}
	driver := NewDriver("CMakePresets.json", runner)

	// Build fails with DirectoryMissing; run resolution must never happen.
	err := driver.BuildAndRun("dbg", "")
	if !errors.Is(err, ErrDirectoryMissing) {
		t.Fatalf("Expected ErrDirectoryMissing, got %v", err)
	}
	if len(runner.commands) != 0 {
		t.Errorf("Expected no subprocess invocation, got %v", runner.commands)
	}
}

func TestBuildPresetNotFound(t *testing.T) {
	setupProject(t, `{"presets":[{"name":"dbg"}]}`)
	runner := &fakeRunner{}
	driver := NewDriver("CMakePresets.json", runner)

	err := driver.Build("rel")
	if !errors.Is(err, preset.ErrPresetNotFound) {
		t.Errorf("Expected ErrPresetNotFound, got %v", err)
	}
}
