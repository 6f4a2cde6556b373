// Package prompt drives the interactive question flow. Questions are asked
// strictly in order with a single outstanding prompt; empty answers fall
// back to the documented defaults.
package prompt

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/sproutcli/sprout/config"
	"github.com/sproutcli/sprout/utils"
)

// Run fills the options record from interactive answers. Fields already set
// by flags or user defaults appear as prefilled values the user can accept.
func Run(o *config.Options) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Directory to create; must not already exist").
				Value(&o.ProjectName).
				Validate(projectNameValidator(o)),
			huh.NewInput().
				Title("Package name").
				Description("Manifest name; empty uses the slugified project name").
				Value(&o.PackageName).
				Validate(validatePackageName),
			huh.NewInput().
				Title("Description").
				Value(&o.Description),
			huh.NewInput().
				Title("Author").
				Value(&o.Author),
			huh.NewSelect[config.PackageManager]().
				Title("Package manager").
				Options(
					huh.NewOption("npm", config.Npm),
					huh.NewOption("yarn", config.Yarn),
					huh.NewOption("pnpm", config.Pnpm),
					huh.NewOption("bun", config.Bun),
				).
				Value(&o.PackageManager),
		),
		huh.NewGroup(
			confirm("Connect a MongoDB database?", &o.Database),
			confirm("Enable CORS?", &o.CORS),
			confirm("Secure HTTP headers with helmet?", &o.Helmet),
			confirm("Parse cookies?", &o.CookieParser),
			confirm("Structured request logging?", &o.Logging),
			confirm("Rate limiting?", &o.RateLimit),
			confirm("Load environment variables from .env?", &o.Dotenv),
			confirm("Format code with prettier?", &o.Prettier),
		),
		huh.NewGroup(
			confirm("Pretty-print logs in development?", &o.PrettyLogging),
		).WithHideFunc(func() bool { return !o.Logging }),
		huh.NewGroup(
			confirm("Add authentication boilerplate?", &o.Auth),
			confirm("Add Docker configuration?", &o.Docker),
			confirm("Initialize a git repository?", &o.Git),
			confirm("Add a smoke-test setup?", &o.Tests),
		),
	)

	return form.Run()
}

func confirm(title string, value *bool) huh.Field {
	return huh.NewConfirm().
		Title(title).
		Value(value).
		Affirmative("Yes").
		Negative("No")
}

func projectNameValidator(o *config.Options) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return fmt.Errorf("project name is required")
		}
		if len(s) > 214 {
			return fmt.Errorf("project name must be 214 characters or less")
		}
		if exists, err := utils.PathExists(filepath.Join(o.OutputPath, s)); err == nil && exists {
			return fmt.Errorf("'%s' already exists", s)
		}
		return nil
	}
}

func validatePackageName(s string) error {
	if s == "" {
		return nil
	}
	if !utils.ValidatePackageName(s) {
		return fmt.Errorf("not a valid package name")
	}
	return nil
}
