package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sproutcli/sprout/config"
)

// optionsFromBits maps a 9-bit mask to a feature combination: the eight
// togglable features plus pretty logging.
func optionsFromBits(bits int) *config.Options {
	o := config.Default()
	o.ProjectName = "combo"
	o.Database = bits&(1<<0) != 0
	o.CORS = bits&(1<<1) != 0
	o.Helmet = bits&(1<<2) != 0
	o.CookieParser = bits&(1<<3) != 0
	o.Logging = bits&(1<<4) != 0
	o.RateLimit = bits&(1<<5) != 0
	o.Dotenv = bits&(1<<6) != 0
	o.Prettier = bits&(1<<7) != 0
	o.PrettyLogging = bits&(1<<8) != 0
	o.Normalize()
	return o
}

func TestAppImportsMatchFeatures(t *testing.T) {
	for bits := 0; bits < 512; bits++ {
		o := optionsFromBits(bits)
		out := App(o)

		pairs := []struct {
			enabled    bool
			importLine string
			usage      string
		}{
			{o.Helmet, `const helmet = require("helmet");`, "app.use(helmet())"},
			{o.CookieParser, `const cookieParser = require("cookie-parser");`, "app.use(cookieParser())"},
			{o.Logging, `const pinoHttp = require("pino-http");`, "pinoHttp({"},
			{o.RateLimit, `const rateLimit = require("express-rate-limit");`, "rateLimit({"},
			{o.CORS, `const cors = require("cors");`, "cors({"},
		}
		for _, p := range pairs {
			if p.enabled {
				assert.Contains(t, out, p.importLine, "bits=%d", bits)
				assert.Contains(t, out, p.usage, "bits=%d", bits)
			} else {
				assert.NotContains(t, out, p.importLine, "bits=%d", bits)
				assert.NotContains(t, out, p.usage, "bits=%d", bits)
			}
		}

		// Always present, regardless of toggles
		assert.Contains(t, out, `const express = require("express");`)
		assert.Contains(t, out, `require("@/middlewares/errorHandler")`)
		assert.Contains(t, out, `require("@/routes/v1/health.route")`)
		assert.Contains(t, out, "app.use(errorHandler);")
	}
}

func TestAppMiddlewareOrderIsInvariant(t *testing.T) {
	for bits := 0; bits < 512; bits++ {
		o := optionsFromBits(bits)
		out := App(o)

		ordered := []struct {
			present bool
			marker  string
		}{
			{o.Helmet, "app.use(helmet())"},
			{o.RateLimit, "rateLimit({"},
			{o.Logging, "pinoHttp({"},
			{o.CORS, "cors({"},
			{true, "express.json("},
			{true, "express.urlencoded("},
			{true, "express.static("},
			{o.CookieParser, "app.use(cookieParser())"},
			{true, `app.use("/api/v1/health"`},
			{true, "app.use(errorHandler)"},
		}

		last := -1
		for _, step := range ordered {
			if !step.present {
				continue
			}
			idx := strings.Index(out, step.marker)
			assert.Greaterf(t, idx, last, "bits=%d marker=%s out of order", bits, step.marker)
			last = idx
		}
	}
}

func TestAppIsDeterministic(t *testing.T) {
	for bits := 0; bits < 512; bits++ {
		o := optionsFromBits(bits)
		assert.Equal(t, App(o), App(o))
	}
}

func TestAppAuthRouterAnchors(t *testing.T) {
	o := config.Default()
	o.ProjectName = "api"
	o.Auth = true
	o.Normalize()
	out := App(o)

	assert.Contains(t, out, `const authRouter = require("@/routes/v1/auth.route");`)
	assert.Contains(t, out, `app.use("/api/v1/auth", authRouter);`)

	healthMount := strings.Index(out, `app.use("/api/v1/health"`)
	authMount := strings.Index(out, `app.use("/api/v1/auth"`)
	errHandler := strings.Index(out, "app.use(errorHandler)")
	assert.Greater(t, authMount, healthMount)
	assert.Greater(t, errHandler, authMount)

	o.Auth = false
	out = App(o)
	assert.NotContains(t, out, "authRouter")
}

func TestAppPrettyTransportProbe(t *testing.T) {
	o := config.Default()
	o.ProjectName = "api"
	o.Logging = true
	o.PrettyLogging = true
	o.Normalize()
	out := App(o)

	// The probe only fires in development mode and must never throw.
	assert.Contains(t, out, `require.resolve("pino-pretty")`)
	assert.Contains(t, out, `process.env.NODE_ENV !== "development"`)
	assert.Contains(t, out, "catch")
	assert.Contains(t, out, "transport: prettyTransport(),")

	o.PrettyLogging = false
	out = App(o)
	assert.NotContains(t, out, "pino-pretty")
	assert.NotContains(t, out, "transport:")
}

func TestAppPrettyLoggingIgnoredWithoutLogging(t *testing.T) {
	base := config.Default()
	base.ProjectName = "api"
	base.Logging = false
	base.PrettyLogging = false

	withPretty := *base
	withPretty.PrettyLogging = true

	assert.Equal(t, App(base), App(&withPretty))
}

func TestAppUnaffectedByDatabaseToggle(t *testing.T) {
	a := config.Default()
	a.ProjectName = "api"
	a.Database = false

	b := *a
	b.Database = true

	assert.Equal(t, App(a), App(&b))
}
