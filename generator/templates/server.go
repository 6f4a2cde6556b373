package templates

import (
	"strings"

	"github.com/sproutcli/sprout/config"
)

// Server renders src/server.js, the process entry point.
//
// The control flow bifurcates strictly on the database toggle: with a
// database the listener is bound only inside the connection-success
// continuation; without one it is bound directly. The process-wide failure
// handlers are registered before any connection attempt.
func Server(o *config.Options) string {
	var b strings.Builder

	if o.Dotenv {
		b.WriteString(`// Environment variables must load before any other module reads process.env.
require("dotenv").config();
`)
	}
	b.WriteString(`require("module-alias/register");

process.on("uncaughtException", (err) => {
  console.error("Uncaught exception, shutting down", err);
  process.exit(1);
});

process.on("unhandledRejection", (err) => {
  console.error("Unhandled promise rejection, shutting down", err);
  process.exit(1);
});

const app = require("@/app");
`)
	if o.Database {
		b.WriteString(`const connectDB = require("@/db/connect");
`)
	}

	b.WriteString(`
const port = Number(process.env.PORT) || 3000;

const registerShutdownHandlers = (server) => {
  for (const signal of ["SIGTERM", "SIGINT"]) {
    process.on(signal, () => {
      console.log(` + "`${signal} received, closing server`" + `);
      server.close(() => {
        console.log("Server closed");
        process.exit(0);
      });
      // Force exit if graceful close stalls; unref so the timer alone never
      // keeps the process alive.
      setTimeout(() => process.exit(1), 10000).unref();
    });
  }
};

`)

	if o.Database {
		b.WriteString(`connectDB()
  .then(() => {
    const server = app.listen(port, () => {
      console.log(` + "`Server listening on port ${port}`" + `);
    });
    registerShutdownHandlers(server);
  })
  .catch((err) => {
    console.error("Database connection failed", err);
    // Rethrow so termination flows through the unhandledRejection handler;
    // the listener is never bound on this path.
    throw err;
  });
`)
	} else {
		b.WriteString(`const server = app.listen(port, () => {
  console.log(` + "`Server listening on port ${port}`" + `);
});
registerShutdownHandlers(server);
`)
	}

	return b.String()
}
