package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestClass(t *testing.T) {
	root := t.TempDir()

	if err := Class(root, "Widget"); err != nil {
		t.Fatalf("Class failed: %v", err)
	}

	header := readFile(t, filepath.Join(root, "include", "Widget.hpp"))
	if !strings.Contains(header, "class Widget") {
		t.Errorf("Expected header to declare Widget, got:\n%s", header)
	}

	impl := readFile(t, filepath.Join(root, "src", "Widget.cpp"))
	if !strings.Contains(impl, `#include "Widget.hpp"`) {
		t.Errorf("Expected implementation to include the header, got:\n%s", impl)
	}
	if !strings.Contains(impl, "Widget::Widget()") {
		t.Errorf("Expected a constructor definition, got:\n%s", impl)
	}
}

func TestClassModule(t *testing.T) {
	root := t.TempDir()

	if err := ClassModule(root, "Person"); err != nil {
		t.Fatalf("ClassModule failed: %v", err)
	}

	content := readFile(t, filepath.Join(root, "modules", "Person.ixx"))
	if !strings.Contains(content, "export module Person;") {
		t.Errorf("Expected module declaration, got:\n%s", content)
	}
	if !strings.Contains(content, "export class Person") {
		t.Errorf("Expected exported class, got:\n%s", content)
	}
}

func TestModule(t *testing.T) {
	root := t.TempDir()

	if err := Module(root, "Utilities"); err != nil {
		t.Fatalf("Module failed: %v", err)
	}

	content := readFile(t, filepath.Join(root, "src", "Utilities.ixx"))
	if !strings.Contains(content, "export module Utilities;") {
		t.Errorf("Expected module declaration, got:\n%s", content)
	}
}

func TestNewProject(t *testing.T) {
	root := t.TempDir()

	projectDir, err := NewProject(root, "MyApp", false)
	if err != nil {
		t.Fatalf("NewProject failed: %v", err)
	}

	expected := []string{
		"vcpkg.json",
		"CMakeLists.txt",
		"CMakePresets.json",
		filepath.Join("src", "main.cpp"),
		filepath.Join("src", "utilities.ixx"),
		".clangd",
		".clang-format",
		".gitignore",
	}
	for _, rel := range expected {
		if _, err := os.Stat(filepath.Join(projectDir, rel)); err != nil {
			t.Errorf("Expected %s to exist: %v", rel, err)
		}
	}

	cmakeLists := readFile(t, filepath.Join(projectDir, "CMakeLists.txt"))
	if !strings.Contains(cmakeLists, "project(MyApp") {
		t.Errorf("Expected project(MyApp in CMakeLists.txt, got:\n%s", cmakeLists)
	}

	vcpkg := readFile(t, filepath.Join(projectDir, "vcpkg.json"))
	if !strings.Contains(vcpkg, `"name": "myapp"`) {
		t.Errorf("Expected lowercased vcpkg name, got:\n%s", vcpkg)
	}

	presets := readFile(t, filepath.Join(projectDir, "CMakePresets.json"))
	if !strings.Contains(presets, `"CMAKE_BUILD_TYPE": "Debug"`) {
		t.Errorf("Expected Debug build type, got:\n%s", presets)
	}
}

func TestNewProjectProdMode(t *testing.T) {
	root := t.TempDir()

	projectDir, err := NewProject(root, "MyApp", true)
	if err != nil {
		t.Fatalf("NewProject failed: %v", err)
	}

	presets := readFile(t, filepath.Join(projectDir, "CMakePresets.json"))
	if !strings.Contains(presets, `"CMAKE_BUILD_TYPE": "Release"`) {
		t.Errorf("Expected Release build type, got:\n%s", presets)
	}
}
