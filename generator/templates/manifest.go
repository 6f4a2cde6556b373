package templates

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/sproutcli/sprout/config"
)

// latestVersion is the version written for every package. Pinning is
// intentionally absent: a freshly scaffolded project always starts from the
// newest release of each dependency.
const latestVersion = "latest"

// Script is a named manifest script entry
type Script struct {
	Name    string
	Command string
}

// Manifest is the dependency/scripts document rendered to package.json
type Manifest struct {
	Name            string
	Version         string
	Description     string
	Main            string
	Author          string
	License         string
	Scripts         []Script
	Dependencies    []string
	DevDependencies []string
	WithJestMapping bool
}

// BuildManifest derives the manifest from the options record
func BuildManifest(o *config.Options) *Manifest {
	m := &Manifest{
		Name:        o.PackageName,
		Version:     "1.0.0",
		Description: o.Description,
		Main:        "src/server.js",
		Author:      o.Author,
		License:     "ISC",
	}

	m.Scripts = []Script{
		{Name: "start", Command: "node src/server.js"},
		{Name: "dev", Command: "nodemon src/server.js"},
	}
	if o.Prettier {
		m.Scripts = append(m.Scripts, Script{Name: "format", Command: "prettier --write ."})
	}
	if o.Tests {
		m.Scripts = append(m.Scripts, Script{Name: "test", Command: "jest --detectOpenHandles"})
		m.WithJestMapping = true
	}

	deps := []string{"express", "module-alias"}
	if o.Database {
		deps = append(deps, "mongoose")
	}
	if o.CORS {
		deps = append(deps, "cors")
	}
	if o.Helmet {
		deps = append(deps, "helmet")
	}
	if o.CookieParser {
		deps = append(deps, "cookie-parser")
	}
	if o.Logging {
		deps = append(deps, "pino-http", "pino")
	}
	if o.RateLimit {
		deps = append(deps, "express-rate-limit")
	}
	if o.Dotenv {
		deps = append(deps, "dotenv")
	}
	if o.Auth {
		deps = append(deps, "jsonwebtoken", "bcryptjs")
	}
	sort.Strings(deps)
	m.Dependencies = deps

	devDeps := []string{"nodemon"}
	if o.Prettier {
		devDeps = append(devDeps, "prettier")
	}
	if o.PrettyLogging {
		devDeps = append(devDeps, "pino-pretty")
	}
	if o.Tests {
		devDeps = append(devDeps, "jest", "supertest")
	}
	sort.Strings(devDeps)
	m.DevDependencies = devDeps

	return m
}

// Render produces the package.json text. The writer is hand-ordered because
// the manifest keeps conventional section order (name first, scripts before
// dependencies), which map-based JSON marshaling cannot preserve.
func (m *Manifest) Render() string {
	var b strings.Builder

	b.WriteString("{\n")
	b.WriteString("  \"name\": " + jsonString(m.Name) + ",\n")
	b.WriteString("  \"version\": " + jsonString(m.Version) + ",\n")
	b.WriteString("  \"description\": " + jsonString(m.Description) + ",\n")
	b.WriteString("  \"main\": " + jsonString(m.Main) + ",\n")
	b.WriteString("  \"author\": " + jsonString(m.Author) + ",\n")
	b.WriteString("  \"license\": " + jsonString(m.License) + ",\n")

	b.WriteString("  \"scripts\": {\n")
	for i, s := range m.Scripts {
		b.WriteString("    " + jsonString(s.Name) + ": " + jsonString(s.Command))
		writeSep(&b, i, len(m.Scripts))
	}
	b.WriteString("  },\n")

	b.WriteString("  \"dependencies\": {\n")
	for i, dep := range m.Dependencies {
		b.WriteString("    " + jsonString(dep) + ": " + jsonString(latestVersion))
		writeSep(&b, i, len(m.Dependencies))
	}
	b.WriteString("  },\n")

	b.WriteString("  \"devDependencies\": {\n")
	for i, dep := range m.DevDependencies {
		b.WriteString("    " + jsonString(dep) + ": " + jsonString(latestVersion))
		writeSep(&b, i, len(m.DevDependencies))
	}
	b.WriteString("  },\n")

	// Path alias so generated internal requires resolve; always present.
	b.WriteString("  \"_moduleAliases\": {\n    \"@\": \"src\"\n  }")

	if m.WithJestMapping {
		// module-alias does not hook jest's resolver; mirror the alias there.
		b.WriteString(",\n  \"jest\": {\n    \"moduleNameMapper\": {\n      \"^@/(.*)$\": \"<rootDir>/src/$1\"\n    }\n  }")
	}

	b.WriteString("\n}\n")
	return b.String()
}

// RuntimePackages returns the runtime dependency names in install order
func (m *Manifest) RuntimePackages() []string {
	return append([]string(nil), m.Dependencies...)
}

// DevPackages returns the development dependency names in install order
func (m *Manifest) DevPackages() []string {
	return append([]string(nil), m.DevDependencies...)
}

func jsonString(s string) string {
	out, _ := json.Marshal(s)
	return string(out)
}

func writeSep(b *strings.Builder, i, n int) {
	if i < n-1 {
		b.WriteString(",")
	}
	b.WriteString("\n")
}
