package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := Default()

	assert.Equal(t, Npm, o.PackageManager)
	assert.True(t, o.CORS)
	assert.True(t, o.Helmet)
	assert.True(t, o.CookieParser)
	assert.True(t, o.Logging)
	assert.True(t, o.RateLimit)
	assert.True(t, o.Dotenv)
	assert.True(t, o.Prettier)

	assert.False(t, o.Database)
	assert.False(t, o.Auth)
	assert.False(t, o.Docker)
	assert.False(t, o.Git)
	assert.False(t, o.Tests)
}

func TestNormalizePackageName(t *testing.T) {
	o := Default()
	o.ProjectName = "My Shiny API"
	o.Normalize()

	assert.Equal(t, "my-shiny-api", o.PackageName)

	// An explicit package name is kept as-is
	o = Default()
	o.ProjectName = "My Shiny API"
	o.PackageName = "custom-name"
	o.Normalize()
	assert.Equal(t, "custom-name", o.PackageName)
}

func TestNormalizeForcesPrettyLoggingOff(t *testing.T) {
	o := Default()
	o.ProjectName = "api"
	o.Logging = false
	o.PrettyLogging = true
	o.Normalize()

	assert.False(t, o.PrettyLogging)
}

func TestNormalizeAuthRequiresDatabase(t *testing.T) {
	o := Default()
	o.ProjectName = "api"
	o.Auth = true
	o.Database = false
	o.Normalize()

	assert.True(t, o.Database)
}

func TestParsePackageManager(t *testing.T) {
	assert.Equal(t, Npm, ParsePackageManager(""))
	assert.Equal(t, Npm, ParsePackageManager("unknown"))
	assert.Equal(t, Yarn, ParsePackageManager("yarn"))
	assert.Equal(t, Pnpm, ParsePackageManager("pnpm"))
	assert.Equal(t, Bun, ParsePackageManager("bun"))
}

func TestValidate(t *testing.T) {
	o := Default()
	o.ProjectName = "my-api"
	o.Normalize()
	require.NoError(t, o.Validate())

	o = Default()
	o.Normalize()
	assert.Error(t, o.Validate(), "missing project name must fail validation")

	o = Default()
	o.ProjectName = "api"
	o.PackageName = "Not A Valid Name"
	o.Normalize()
	assert.Error(t, o.Validate())
}

func TestUserDefaultsApply(t *testing.T) {
	d := &UserDefaults{Author: "Jane Doe", PackageManager: "pnpm", SkipInstall: true}

	o := Default()
	d.Apply(o)
	assert.Equal(t, "Jane Doe", o.Author)
	assert.Equal(t, Pnpm, o.PackageManager)
	assert.True(t, o.SkipInstall)

	// An author already chosen wins over the preset
	o = Default()
	o.Author = "Someone Else"
	d.Apply(o)
	assert.Equal(t, "Someone Else", o.Author)
}
