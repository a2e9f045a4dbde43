// Package scaffold generates C++ source files and project skeletons from
// embedded templates.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/vanica/cppforge/internal/log"
)

//go:embed templates/*.template
var templateFS embed.FS

// Data carries the variables available to templates.
type Data struct {
	Name       string
	ClassName  string
	ModuleName string
	BuildType  string
}

// Class generates include/<name>.hpp and src/<name>.cpp under root.
func Class(root, name string) error {
	data := Data{ClassName: name}
	if err := writeRendered("class.hpp.template", filepath.Join(root, "include", name+".hpp"), data); err != nil {
		return err
	}
	return writeRendered("class.cpp.template", filepath.Join(root, "src", name+".cpp"), data)
}

// ClassModule generates modules/<name>.ixx under root, declaring a module
// exporting a class of the same name.
func ClassModule(root, name string) error {
	data := Data{ModuleName: name, ClassName: name}
	return writeRendered("class.ixx.template", filepath.Join(root, "modules", name+".ixx"), data)
}

// Module generates src/<name>.ixx under root.
func Module(root, name string) error {
	data := Data{ModuleName: name}
	return writeRendered("module.ixx.template", filepath.Join(root, "src", name+".ixx"), data)
}

// NewProject creates a C++23 project skeleton at dir/<name> and returns the
// project directory. prod selects a Release build type instead of Debug.
func NewProject(dir, name string, prod bool) (string, error) {
	buildType := "Debug"
	if prod {
		buildType = "Release"
	}

	projectDir, err := filepath.Abs(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}

	for _, sub := range []string{"src", "include"} {
		if err := os.MkdirAll(filepath.Join(projectDir, sub), 0o755); err != nil {
			return "", fmt.Errorf("creating project directory: %w", err)
		}
	}

	data := Data{Name: name, BuildType: buildType}
	files := []struct {
		tmpl string
		out  string
	}{
		{"vcpkg.json.template", "vcpkg.json"},
		{"cmakelists.txt.template", "CMakeLists.txt"},
		{"cmakepresets.json.template", "CMakePresets.json"},
		{"main.cpp.template", filepath.Join("src", "main.cpp")},
		{"utilities.ixx.template", filepath.Join("src", "utilities.ixx")},
		{"clangd.template", ".clangd"},
		{"clang-format.template", ".clang-format"},
		{"gitignore.template", ".gitignore"},
	}
	for _, f := range files {
		if err := writeRendered(f.tmpl, filepath.Join(projectDir, f.out), data); err != nil {
			return "", err
		}
	}
	return projectDir, nil
}

// render parses the named embedded template and executes it with data.
func render(name string, data Data) (string, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(template.FuncMap{
		"lower": strings.ToLower,
	}).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

func writeRendered(tmplName, outPath string, data Data) error {
	content, err := render(tmplName, data)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", outPath, err)
	}
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	log.Info(fmt.Sprintf("Created %s", outPath))
	return nil
}
