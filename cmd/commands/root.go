package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sproutcli/sprout/config"
	"github.com/sproutcli/sprout/generator"
	"github.com/sproutcli/sprout/logging/logger"
	"github.com/sproutcli/sprout/prompt"
	"github.com/sproutcli/sprout/version"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	o := config.Default()
	var pm string
	var yes, verbose bool

	rootCmd := &cobra.Command{
		Use:   "sprout [project-name]",
		Short: "Scaffold production-ready Express.js backends",
		Long: `sprout scaffolds an Express.js REST API backend tailored to your answers:
database driver, security middleware, request logging, auth boilerplate,
testing and containerization. Flags pre-answer prompts; --yes skips the
interactive flow entirely.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger.SetLevel("debug")
			}
			config.LoadUserDefaults().Apply(o)

			if cmd.Flags().Changed("pm") {
				o.PackageManager = config.ParsePackageManager(pm)
			}
			if len(args) == 1 {
				o.ProjectName = args[0]
			}

			if yes {
				if o.ProjectName == "" {
					return fmt.Errorf("project name is required with --yes")
				}
			} else {
				if err := prompt.Run(o); err != nil {
					return err
				}
			}

			return generator.Generate(o)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&o.PackageName, "package-name", "", "manifest package name (defaults to the slugified project name)")
	flags.StringVar(&o.Description, "description", "", "project description")
	flags.StringVar(&o.Author, "author", "", "project author")
	flags.StringVar(&pm, "pm", "npm", "package manager (npm, yarn, pnpm, bun)")
	flags.StringVar(&o.OutputPath, "path", "", "output path (defaults to current directory)")

	flags.BoolVar(&o.Database, "database", false, "connect a MongoDB database")
	flags.BoolVar(&o.CORS, "cors", true, "enable CORS middleware")
	flags.BoolVar(&o.Helmet, "helmet", true, "enable secure header middleware")
	flags.BoolVar(&o.CookieParser, "cookie-parser", true, "enable cookie parsing")
	flags.BoolVar(&o.Logging, "logging", true, "enable structured request logging")
	flags.BoolVar(&o.PrettyLogging, "pretty-logging", false, "pretty-print logs in development (requires --logging)")
	flags.BoolVar(&o.RateLimit, "rate-limit", true, "enable rate limiting")
	flags.BoolVar(&o.Dotenv, "dotenv", true, "load environment variables from .env")
	flags.BoolVar(&o.Prettier, "prettier", true, "add prettier formatting")

	flags.BoolVar(&o.Auth, "auth", false, "add authentication boilerplate")
	flags.BoolVar(&o.Docker, "docker", false, "add Docker configuration")
	flags.BoolVar(&o.Git, "git", false, "initialize a git repository")
	flags.BoolVar(&o.Tests, "tests", false, "add a smoke-test setup")

	flags.BoolVar(&o.SkipInstall, "skip-install", false, "skip dependency installation")
	flags.BoolVarP(&yes, "yes", "y", false, "accept defaults and skip all prompts")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.GetVersionInfo().String())
		},
	}
}
