package command

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/bornholm/scout/internal/command/common"
	"github.com/bornholm/scout/internal/logx"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const defaultEnvFile = ".env"

func Main(name string, version string, usage string, commands ...*cli.Command) {
	if err := loadEnvFile(envFile(os.Args[1:])); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}

	app := &cli.App{
		Name:     name,
		Usage:    usage,
		Commands: commands,
		Version:  version,
		Before: func(ctx *cli.Context) error {
			workdir := ctx.String("workdir")
			// Switch to new working directory if defined
			if workdir != "" {
				if err := os.Chdir(workdir); err != nil {
					return errors.Wrap(err, "could not change working directory")
				}
			}

			logger := slog.New(logx.ContextHandler{
				Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: parseLogLevel(ctx.String("log-level")),
				}),
			})
			slog.SetDefault(logger)

			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "workdir",
				Value:   "",
				EnvVars: []string{"SCOUT_WORKDIR"},
				Usage:   "The working directory",
			},
			&cli.StringFlag{
				Name:      "env-file",
				Value:     defaultEnvFile,
				EnvVars:   []string{"SCOUT_ENV_FILE"},
				Usage:     "The file the environment is populated from before the flags are evaluated",
				TakesFile: true,
			},
			&cli.BoolFlag{
				Name:    "debug",
				EnvVars: []string{"SCOUT_DEBUG"},
				Usage:   "Enable debug mode",
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"SCOUT_LOG_LEVEL"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
	}

	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err == nil || common.IsReported(err) {
			return
		}

		debug := ctx.Bool("debug")

		if !debug {
			slog.ErrorContext(ctx.Context, err.Error())
		} else {
			slog.ErrorContext(ctx.Context, fmt.Sprintf("%+v", err))
		}
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		stop()
		os.Exit(1)
	}
}

func parseLogLevel(logLevel string) slog.Level {
	switch logLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// envFile returns the env file named by the --env-file flag, then by
// SCOUT_ENV_FILE, and whether it was explicitly requested.
func envFile(args []string) (string, bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}

		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "env-file" {
			continue
		}

		if hasValue {
			return value, true
		}

		if i+1 < len(args) {
			return args[i+1], true
		}
	}

	if filename := os.Getenv("SCOUT_ENV_FILE"); filename != "" {
		return filename, true
	}

	return defaultEnvFile, false
}

// loadEnvFile populates the environment from the given file without
// overriding variables that are already set. A missing file is only an
// error when it was explicitly requested.
func loadEnvFile(filename string, explicit bool) error {
	if err := godotenv.Load(filename); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return errors.Wrapf(err, "could not load env file '%s'", filename)
	}

	return nil
}
