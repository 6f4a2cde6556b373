// Package generator sequences a scaffolding run: collision check, static
// asset copy, rendering of the generated files, and the optional package
// manager and git steps.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sproutcli/sprout/config"
	"github.com/sproutcli/sprout/generator/assets"
	"github.com/sproutcli/sprout/generator/runner"
	"github.com/sproutcli/sprout/generator/templates"
	"github.com/sproutcli/sprout/logging/logger"
	"github.com/sproutcli/sprout/utils"
)

// Generate scaffolds a project from the resolved options. Files already
// written are never rolled back: an interrupted or partially failed run
// leaves the target directory as-is.
func Generate(o *config.Options) error {
	o.Normalize()
	if err := o.Validate(); err != nil {
		return err
	}
	if err := assets.Verify(); err != nil {
		return err
	}

	if o.OutputPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		o.OutputPath = cwd
	}

	target := filepath.Join(o.OutputPath, o.ProjectName)
	if exists, err := utils.PathExists(target); err != nil {
		return fmt.Errorf("error checking existence: %w", err)
	} else if exists {
		return fmt.Errorf("'%s' already exists in %s", o.ProjectName, o.OutputPath)
	}

	if err := writeTree(o, target); err != nil {
		return err
	}

	manifest := templates.BuildManifest(o)

	if o.SkipInstall {
		logger.Infof("Skipping dependency installation")
	} else {
		logger.Infof("Installing dependencies with %s", o.PackageManager)
		if err := runner.Install(target, o.PackageManager, manifest.RuntimePackages(), manifest.DevPackages()); err != nil {
			logger.Warnf("Dependency installation failed: %v", err)
			logger.Warnf("Run %q inside %s to retry manually", installHint(o.PackageManager), o.ProjectName)
		}
	}

	if o.Git {
		logger.Infof("Initializing git repository")
		if err := runner.InitGit(target); err != nil {
			logger.Warnf("git initialization failed: %v", err)
			logger.Warnf("Run \"git init\" inside %s to retry manually", o.ProjectName)
		}
	}

	printSummary(o, target)
	return nil
}

// writeTree copies the static assets and writes every rendered file
func writeTree(o *config.Options, target string) error {
	if err := assets.CopyBase(target); err != nil {
		return err
	}

	// The base tree ships the persistence layer; strip it when no database
	// was selected so no dead connection code lands in the project.
	if !o.Database {
		for _, dir := range []string{"src/db", "src/models"} {
			if err := os.RemoveAll(filepath.Join(target, dir)); err != nil {
				return fmt.Errorf("removing %s: %w", dir, err)
			}
		}
	}
	if !o.Prettier {
		if err := os.Remove(filepath.Join(target, ".prettierrc")); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing .prettierrc: %w", err)
		}
	}

	files := map[string]string{
		"src/app.js":    templates.App(o),
		"src/server.js": templates.Server(o),
		"package.json":  templates.BuildManifest(o).Render(),
		".env":          templates.Env(o, false),
		".env.example":  templates.Env(o, true),
		"README.md":     templates.Readme(o),
	}
	for name, content := range files {
		if err := utils.WriteFile(filepath.Join(target, name), content); err != nil {
			return fmt.Errorf("failed to create file %s: %w", name, err)
		}
	}

	if o.Auth {
		if err := assets.CopyAuth(target); err != nil {
			return err
		}
	}
	if o.Docker {
		if err := assets.CopyDocker(target, o.Database); err != nil {
			return err
		}
	}
	if o.Tests {
		if err := assets.CopyTests(target); err != nil {
			return err
		}
	}

	return nil
}

func installHint(pm config.PackageManager) string {
	if pm == config.Npm {
		return "npm install"
	}
	return string(pm) + " install"
}

var (
	summaryTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	summaryStepStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func printSummary(o *config.Options, target string) {
	fmt.Println()
	fmt.Println(summaryTitleStyle.Render(fmt.Sprintf("Project %s scaffolded at %s", o.ProjectName, target)))

	steps := []string{fmt.Sprintf("cd %s", o.ProjectName)}
	if o.SkipInstall {
		steps = append(steps, installHint(o.PackageManager))
	}
	if o.Dotenv {
		steps = append(steps, "review .env")
	}
	steps = append(steps, fmt.Sprintf("%s run dev", pmRunPrefix(o.PackageManager)))

	fmt.Println(summaryStepStyle.Render("Next steps:\n  " + strings.Join(steps, "\n  ")))
}

func pmRunPrefix(pm config.PackageManager) string {
	return string(pm)
}
