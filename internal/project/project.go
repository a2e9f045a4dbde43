// Package project answers questions about the surrounding C++ project: is
// this a project directory, what is the project called, and is a given name
// usable as a C++ identifier.
package project

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// DescriptorFile is the project descriptor expected in the working directory.
const DescriptorFile = "CMakeLists.txt"

var (
	// ErrDescriptorNotFound reports a missing CMakeLists.txt.
	ErrDescriptorNotFound = errors.New("CMakeLists.txt not found")

	// ErrNameNotFound reports a descriptor with no usable project() line.
	ErrNameNotFound = errors.New("could not find a valid project name in CMakeLists.txt")

	// ErrInvalidIdentifier reports a name that is not a valid C++ identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// ExtractName reads the descriptor at path and returns the project's
// canonical identifier. The first line beginning with "project(" (case
// insensitive, after trimming) is used: the text up to the closing paren is
// taken, then the first whitespace-delimited token, then the final
// path-separator segment of that token. project(MyApp VERSION 1.0) yields
// MyApp; project(some/Nested/Name) yields Name.
func ExtractName(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrDescriptorNotFound, path)
	}
	defer f.Close()

	const prefix = "project("
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(strings.ToLower(line), prefix) {
			continue
		}
		inner := line[len(prefix):]
		if i := strings.Index(inner, ")"); i >= 0 {
			inner = inner[:i]
		}
		fields := strings.Fields(inner)
		if len(fields) == 0 {
			continue
		}
		segments := strings.Split(fields[0], "/")
		return segments[len(segments)-1], nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return "", ErrNameNotFound
}

// ValidIdentifier reports whether name is a valid C++ identifier compatible
// with CMake and Ninja: non-empty, starts with a letter, and contains only
// letters, digits, and underscores.
func ValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 {
			if !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// IsProjectDir reports whether dir contains a CMakeLists.txt.
func IsProjectDir(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, DescriptorFile))
	return err == nil
}
