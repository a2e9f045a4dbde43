// Package preset locates and resolves CMake configure presets from a
// CMakePresets.json-style document.
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DefaultGenerator is assumed when a preset does not declare one.
const DefaultGenerator = "Ninja"

// DefaultBuildDir is assumed when a preset declares neither binaryDir nor
// buildDir.
const DefaultBuildDir = "build"

var (
	// ErrDocumentNotFound reports a missing or unreadable preset document.
	ErrDocumentNotFound = errors.New("preset document not found")

	// ErrMalformedDocument reports a document that is not valid JSON.
	ErrMalformedDocument = errors.New("malformed preset document")

	// ErrPresetNotFound reports that no preset matched the requested name.
	ErrPresetNotFound = errors.New("preset not found")
)

// Preset is one configure preset record. Records are immutable once parsed;
// resolution never writes back to the document.
type Preset struct {
	Name      string `json:"name"`
	Generator string `json:"generator"`
	BuildDir  string `json:"buildDir"`
	BinaryDir string `json:"binaryDir"`
}

// Document is the parsed top-level preset file. Real documents store their
// presets under either "presets" or "configurePresets"; both are decoded.
type Document struct {
	Presets          []Preset `json:"presets"`
	ConfigurePresets []Preset `json:"configurePresets"`
}

// Load parses the preset document at path. The document is read fresh on
// every call; nothing is cached between invocations.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDocument, path, err)
	}
	return &doc, nil
}

// entries returns the preset list in effect. "presets" wins when it is
// present and non-empty; otherwise "configurePresets" is the fallback. An
// empty "presets" array does not mask a populated "configurePresets".
func (d *Document) entries() []Preset {
	if len(d.Presets) > 0 {
		return d.Presets
	}
	return d.ConfigurePresets
}

// Find returns the first preset in the document whose name equals name.
func (d *Document) Find(name string) (*Preset, error) {
	for _, p := range d.entries() {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
}

// Find loads the document at path and looks up the named preset in it.
func Find(path, name string) (*Preset, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return doc.Find(name)
}

// BuildDirectory resolves the preset's output directory: binaryDir is
// preferred, buildDir is the fallback, and "build" the default. The path is
// interpreted relative to the current working directory and is not created
// here.
func (p *Preset) BuildDirectory() string {
	if p.BinaryDir != "" {
		return p.BinaryDir
	}
	if p.BuildDir != "" {
		return p.BuildDir
	}
	return DefaultBuildDir
}

// GeneratorName resolves the preset's generator, defaulting to Ninja.
func (p *Preset) GeneratorName() string {
	if p.Generator != "" {
		return p.Generator
	}
	return DefaultGenerator
}
