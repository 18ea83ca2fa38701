package serve

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/bornholm/scout/internal/command/common"
	"github.com/bornholm/scout/internal/server"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Serve() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the assessment search page",
		Flags: append(
			common.EndpointFlags(),
			&cli.StringFlag{
				Name:    "address",
				Value:   ":8080",
				Aliases: []string{"a"},
				EnvVars: []string{"SCOUT_ADDRESS"},
				Usage:   "The address to listen on",
			},
			&cli.StringFlag{
				Name:      "template",
				Value:     "",
				Aliases:   []string{"t"},
				EnvVars:   []string{"SCOUT_TEMPLATE"},
				Usage:     "HTML page holding the #queryInput, #searchBtn, #results, #loading, #resultsHeader and #resultCount elements",
				TakesFile: true,
			},
		),
		Action: func(cliCtx *cli.Context) error {
			address := cliCtx.String("address")
			template := cliCtx.String("template")

			recommender, err := common.NewRecommender(cliCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			var page []byte
			if template != "" {
				page, err = os.ReadFile(template)
				if err != nil {
					return errors.Wrapf(err, "failed to read page template")
				}
			}

			handler, err := server.New(recommender, page)
			if err != nil {
				return errors.WithStack(err)
			}

			ctx := common.Context(cliCtx)

			srv := &http.Server{
				Addr:              address,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(_ net.Listener) context.Context {
					return ctx
				},
			}

			go func() {
				<-ctx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := srv.Shutdown(shutdownCtx); err != nil {
					slog.ErrorContext(shutdownCtx, "could not shutdown server", slog.Any("error", errors.WithStack(err)))
				}
			}()

			slog.InfoContext(ctx, "listening", slog.String("address", address))

			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
