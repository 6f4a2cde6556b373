package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"

	"github.com/sproutcli/sprout/utils"
)

// PackageManager selects the install command dialect
type PackageManager string

const (
	Npm  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	Pnpm PackageManager = "pnpm"
	Bun  PackageManager = "bun"
)

// ParsePackageManager resolves a raw answer to a known package manager.
// Anything unrecognized (including the empty string) falls back to npm.
func ParsePackageManager(s string) PackageManager {
	switch PackageManager(s) {
	case Yarn, Pnpm, Bun:
		return PackageManager(s)
	default:
		return Npm
	}
}

// Options is the resolved configuration record for one generation run.
// It is built once from prompt answers and flags, normalized, and then
// consumed read-only by every generator component.
type Options struct {
	ProjectName string `validate:"required"`
	PackageName string
	Description string
	Author      string

	PackageManager PackageManager `validate:"oneof=npm yarn pnpm bun"`

	// Feature toggles for the generated project. CORS through Prettier
	// follow an opt-out model and default to true.
	Database     bool
	CORS         bool
	Helmet       bool
	CookieParser bool
	Logging      bool
	RateLimit    bool
	Dotenv       bool
	Prettier     bool

	// PrettyLogging is meaningful only when Logging is set.
	PrettyLogging bool

	// Optional scaffolding blocks
	Git    bool
	Docker bool
	Auth   bool
	Tests  bool

	// Generator-side options
	OutputPath  string
	SkipInstall bool
}

// Default returns options with the opt-out features enabled
func Default() *Options {
	return &Options{
		PackageManager: Npm,
		CORS:           true,
		Helmet:         true,
		CookieParser:   true,
		Logging:        true,
		RateLimit:      true,
		Dotenv:         true,
		Prettier:       true,
	}
}

// Normalize applies the cross-field rules once, before generation:
// the package name defaults to the slugified project name, pretty logging
// requires request logging, auth boilerplate requires a user store, and an
// unset package manager resolves to npm.
func (o *Options) Normalize() {
	if o.PackageName == "" {
		o.PackageName = slug.Make(o.ProjectName)
	}
	if !o.Logging {
		o.PrettyLogging = false
	}
	if o.Auth {
		o.Database = true
	}
	o.PackageManager = ParsePackageManager(string(o.PackageManager))
}

var validate = validator.New()

// Validate checks the record after normalization
func (o *Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	if !utils.ValidatePackageName(o.PackageName) {
		return fmt.Errorf("invalid package name: %s", o.PackageName)
	}
	return nil
}
