// Package runner drives the external package manager and git. Every step is
// blocking and best-effort: a non-zero exit is reported to the caller, which
// logs it and continues scaffolding.
package runner

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/sproutcli/sprout/config"
)

// InstallCommand returns the package-manager-specific command and arguments
// for installing the given packages as runtime or development dependencies.
func InstallCommand(pm config.PackageManager, dev bool, pkgs []string) (string, []string) {
	var args []string
	switch pm {
	case config.Yarn:
		args = []string{"add"}
		if dev {
			args = append(args, "-D")
		}
	case config.Pnpm:
		args = []string{"add"}
		if dev {
			args = append(args, "-D")
		}
	case config.Bun:
		args = []string{"add"}
		if dev {
			args = append(args, "-d")
		}
	default:
		args = []string{"install"}
		if dev {
			args = append(args, "-D")
		}
	}
	return string(pm), append(args, pkgs...)
}

// Install runs the package manager in dir: runtime dependencies first, then
// development dependencies.
func Install(dir string, pm config.PackageManager, runtime, dev []string) error {
	if len(runtime) > 0 {
		name, args := InstallCommand(pm, false, runtime)
		if err := run(dir, name, args...); err != nil {
			return fmt.Errorf("installing dependencies: %w", err)
		}
	}
	if len(dev) > 0 {
		name, args := InstallCommand(pm, true, dev)
		if err := run(dir, name, args...); err != nil {
			return fmt.Errorf("installing dev dependencies: %w", err)
		}
	}
	return nil
}

// InitGit initializes a repository in dir and creates the initial commit
func InitGit(dir string) error {
	steps := [][]string{
		{"git", "init"},
		{"git", "add", "-A"},
		{"git", "commit", "-m", "Initial commit"},
	}
	for _, step := range steps {
		if err := run(dir, step[0], step[1:]...); err != nil {
			return fmt.Errorf("running %s: %w", step[0], err)
		}
	}
	return nil
}

func run(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
