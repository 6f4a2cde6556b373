package templates

import (
	"strings"

	"github.com/sproutcli/sprout/config"
)

// Env renders the environment variable stub files. The same template backs
// .env and .env.example; example output blanks the secret values so the
// committed stub never carries one.
func Env(o *config.Options, example bool) string {
	var lines []string

	lines = append(lines, "PORT=3000", "NODE_ENV=development")

	if o.CORS {
		lines = append(lines, "CORS_ORIGIN=*")
	}
	if o.RateLimit {
		lines = append(lines, "RATE_LIMIT_WINDOW_MS=900000", "RATE_LIMIT_MAX=100")
	}
	if o.Database {
		lines = append(lines, "MONGODB_URI=mongodb://127.0.0.1:27017/"+o.PackageName)
	}
	if o.Auth {
		secret := "change-me"
		if example {
			secret = ""
		}
		lines = append(lines, "JWT_SECRET="+secret, "BCRYPT_SALT_ROUNDS=10")
	}

	return strings.Join(lines, "\n") + "\n"
}
