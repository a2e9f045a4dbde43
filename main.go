// cppforge is a CLI for scaffolding C++ projects and driving CMake-preset
// builds. It generates classes, modules, and whole project skeletons from
// templates, and wraps cmake, ninja/make, the built executable, and a
// docker-compose dev container behind a handful of subcommands.
//
// All external tools run synchronously with inherited stdio; there are no
// timeouts, so a hung tool hangs cppforge. Running two instances against the
// same project directory concurrently is not guarded and may race on build
// directory creation.
package main

import "github.com/vanica/cppforge/cmd"

func main() {
	cmd.Execute()
}
