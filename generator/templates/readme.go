package templates

import (
	"fmt"
	"strings"

	"github.com/sproutcli/sprout/config"
)

// Readme renders the generated project's README.md
func Readme(o *config.Options) string {
	var b strings.Builder

	b.WriteString("# " + o.ProjectName + "\n\n")
	if o.Description != "" {
		b.WriteString(o.Description + "\n\n")
	}

	b.WriteString("## Getting started\n\n```bash\n")
	b.WriteString(fmt.Sprintf("%s run dev\n```\n\n", runPrefix(o.PackageManager)))

	b.WriteString("The API serves a health check at `GET /api/v1/health`.\n")
	if o.Auth {
		b.WriteString("Authentication endpoints live under `POST /api/v1/auth/register` and `POST /api/v1/auth/login`.\n")
	}
	if o.Database {
		b.WriteString("\nSet `MONGODB_URI` in `.env` before starting; the server refuses to listen without a database connection.\n")
	}
	if o.Tests {
		b.WriteString(fmt.Sprintf("\n## Tests\n\n```bash\n%s test\n```\n", runPrefix(o.PackageManager)))
	}

	return b.String()
}

func runPrefix(pm config.PackageManager) string {
	if pm == config.Npm {
		return "npm"
	}
	return string(pm)
}
