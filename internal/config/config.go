// Package config loads the cppforge user configuration. A user file, when
// present, is merged over built-in defaults field by field; the merged
// result is returned to the caller and passed around explicitly. There is
// no ambient configuration state.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vanica/cppforge/internal/log"
)

// Config is the complete cppforge configuration.
type Config struct {
	Docker DockerConfig `yaml:"docker"`
	CMake  CMakeConfig  `yaml:"cmake"`
}

// DockerConfig configures the spinup command.
type DockerConfig struct {
	ComposeFile   string `yaml:"compose_file"`
	ContainerName string `yaml:"container_name"`
}

// CMakeConfig configures the preset-driven build commands.
type CMakeConfig struct {
	PresetsPath      string `yaml:"presets_path"`
	DefaultGenerator string `yaml:"default_generator"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Docker: DockerConfig{
			ComposeFile:   "docker-compose.yml",
			ContainerName: "gcc-clang-dev",
		},
		CMake: CMakeConfig{
			PresetsPath:      "CMakePresets.json",
			DefaultGenerator: "Ninja",
		},
	}
}

// DefaultPath returns ~/.config/cppforge/cppforge.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "cppforge", "cppforge.yaml"), nil
}

// Load reads the user configuration at path (the default path when empty)
// and merges it over Default. A missing file yields the defaults; a file
// that fails to parse is reported as a warning and ignored rather than
// aborting the command.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var user Config
	if err := yaml.Unmarshal(data, &user); err != nil {
		log.Warn(fmt.Sprintf("ignoring config file %s: %v", path, err))
		return cfg, nil
	}

	return merge(cfg, user), nil
}

// merge overlays override onto base, field by field. A zero-valued override
// field keeps the base value; nested sections merge recursively.
func merge(base, override Config) Config {
	base.Docker = mergeDocker(base.Docker, override.Docker)
	base.CMake = mergeCMake(base.CMake, override.CMake)
	return base
}

func mergeDocker(base, override DockerConfig) DockerConfig {
	if override.ComposeFile != "" {
		base.ComposeFile = override.ComposeFile
	}
	if override.ContainerName != "" {
		base.ContainerName = override.ContainerName
	}
	return base
}

func mergeCMake(base, override CMakeConfig) CMakeConfig {
	if override.PresetsPath != "" {
		base.PresetsPath = override.PresetsPath
	}
	if override.DefaultGenerator != "" {
		base.DefaultGenerator = override.DefaultGenerator
	}
	return base
}

// Setup writes the default configuration file at path (the default path when
// empty) unless one already exists. It returns the path written or found.
func Setup(path string) (string, bool, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return "", false, err
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", false, fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return "", false, fmt.Errorf("encoding default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", false, fmt.Errorf("writing config file: %w", err)
	}
	return path, true, nil
}
