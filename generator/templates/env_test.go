package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sproutcli/sprout/config"
)

func TestEnvAuthAddsExactlyTwoLines(t *testing.T) {
	base := config.Default()
	base.ProjectName = "api"
	base.Database = true
	base.Normalize()

	withAuth := *base
	withAuth.Auth = true
	withAuth.Normalize()

	for _, example := range []bool{false, true} {
		before := strings.Count(Env(base, example), "\n")
		after := strings.Count(Env(&withAuth, example), "\n")
		assert.Equal(t, 2, after-before)

		out := Env(&withAuth, example)
		assert.Contains(t, out, "JWT_SECRET=")
		assert.Contains(t, out, "BCRYPT_SALT_ROUNDS=10")
	}
}

func TestEnvExampleBlanksSecrets(t *testing.T) {
	o := config.Default()
	o.ProjectName = "api"
	o.Auth = true
	o.Normalize()

	assert.Contains(t, Env(o, false), "JWT_SECRET=change-me")
	assert.Contains(t, Env(o, true), "JWT_SECRET=\n")
	assert.NotContains(t, Env(o, true), "change-me")
}

func TestEnvConditionalKeys(t *testing.T) {
	o := config.Default()
	o.ProjectName = "api"
	o.CORS = false
	o.RateLimit = false
	o.Normalize()

	out := Env(o, false)
	assert.Contains(t, out, "PORT=3000")
	assert.Contains(t, out, "NODE_ENV=development")
	assert.NotContains(t, out, "CORS_ORIGIN")
	assert.NotContains(t, out, "RATE_LIMIT")
	assert.NotContains(t, out, "MONGODB_URI")

	o.Database = true
	assert.Contains(t, Env(o, false), "MONGODB_URI=mongodb://127.0.0.1:27017/api")
}
