package templates

import (
	"strings"

	"github.com/sproutcli/sprout/config"
)

// App renders src/app.js, the composition root wiring middleware and routers.
//
// The registration order is fixed regardless of which features are enabled:
// helmet, rate limiter, request logger, cors, body parsers, static files,
// cookie parser, routes, and the error handler always last. Toggles only
// control presence, never relative order.
func App(o *config.Options) string {
	var b strings.Builder

	// Imports: one require per enabled middleware, nothing unused.
	b.WriteString(`const express = require("express");` + "\n")
	if o.Helmet {
		b.WriteString(`const helmet = require("helmet");` + "\n")
	}
	if o.CookieParser {
		b.WriteString(`const cookieParser = require("cookie-parser");` + "\n")
	}
	if o.Logging {
		b.WriteString(`const pinoHttp = require("pino-http");` + "\n")
	}
	if o.RateLimit {
		b.WriteString(`const rateLimit = require("express-rate-limit");` + "\n")
	}
	if o.CORS {
		b.WriteString(`const cors = require("cors");` + "\n")
	}

	b.WriteString("\n")
	b.WriteString(`const { errorHandler } = require("@/middlewares/errorHandler");` + "\n")
	b.WriteString(`const healthRouter = require("@/routes/v1/health.route");` + "\n")
	if o.Auth {
		b.WriteString(`const authRouter = require("@/routes/v1/auth.route");` + "\n")
	}
	b.WriteString("\n")

	if o.Logging && o.PrettyLogging {
		b.WriteString(`// Resolve the optional pino-pretty transport in development only. The probe
// must never throw: a missing optional package falls back to the default
// transport.
const prettyTransport = () => {
  if (process.env.NODE_ENV !== "development") return undefined;
  try {
    require.resolve("pino-pretty");
    return { target: "pino-pretty" };
  } catch {
    return undefined;
  }
};

`)
	}

	b.WriteString("const app = express();\n\n")

	if o.Helmet {
		b.WriteString("app.use(helmet());\n")
	}
	if o.RateLimit {
		b.WriteString(`app.use(
  rateLimit({
    windowMs: Number(process.env.RATE_LIMIT_WINDOW_MS) || 15 * 60 * 1000,
    max: Number(process.env.RATE_LIMIT_MAX) || 100,
    standardHeaders: true,
    legacyHeaders: false,
  })
);
`)
	}
	if o.Logging {
		b.WriteString(`app.use(
  pinoHttp({
    customLogLevel: (req, res, err) => {
      if (res.statusCode >= 500 || err) return "error";
      if (res.statusCode >= 400) return "warn";
      if (res.statusCode >= 300) return "silent";
      return "info";
    },
`)
		if o.PrettyLogging {
			b.WriteString("    transport: prettyTransport(),\n")
		}
		b.WriteString("  })\n);\n")
	}
	if o.CORS {
		b.WriteString(`app.use(
  cors({
    origin: process.env.CORS_ORIGIN || "*",
    credentials: true,
  })
);
`)
	}

	b.WriteString(`app.use(express.json({ limit: "16kb" }));
app.use(express.urlencoded({ extended: true, limit: "16kb" }));
app.use(express.static("public"));
`)
	if o.CookieParser {
		b.WriteString("app.use(cookieParser());\n")
	}

	b.WriteString("\n")
	b.WriteString(`app.use("/api/v1/health", healthRouter);` + "\n")
	if o.Auth {
		b.WriteString(`app.use("/api/v1/auth", authRouter);` + "\n")
	}

	b.WriteString(`
// Must stay registered after every route and middleware.
app.use(errorHandler);

module.exports = app;
`)

	return b.String()
}
