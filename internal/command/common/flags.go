package common

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/scout/internal/logx"
	"github.com/bornholm/scout/pkg/recommend"
	recommendHTTP "github.com/bornholm/scout/pkg/recommend/http"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	FlagEndpoint = "endpoint"
	FlagTimeout  = "timeout"
	FlagQuery    = "query"
)

func EndpointFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagEndpoint,
			Value:   "http://localhost:8000",
			Aliases: []string{"e"},
			EnvVars: []string{"SCOUT_ENDPOINT"},
			Usage:   "Base url of the recommendation server",
		},
		&cli.DurationFlag{
			Name:    FlagTimeout,
			Value:   0,
			EnvVars: []string{"SCOUT_TIMEOUT"},
			Usage:   "Request timeout, 0 to wait indefinitely",
		},
	}
}

func QueryFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     FlagQuery,
		Required: true,
		Aliases:  []string{"q"},
		EnvVars:  []string{"SCOUT_QUERY"},
		Usage:    "The hiring need or job description to find assessments for",
	}
}

// NewRecommender creates the recommendation client configured by the
// endpoint flags.
func NewRecommender(cliCtx *cli.Context) (recommend.Client, error) {
	endpoint := cliCtx.String(FlagEndpoint)

	client, err := recommendHTTP.ParseClient(&http.Client{Timeout: cliCtx.Duration(FlagTimeout)}, endpoint)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return client, nil
}

// Context returns the command context with the logging attributes of the
// endpoint flags.
func Context(cliCtx *cli.Context) context.Context {
	return logx.WithAttrs(cliCtx.Context,
		slog.String("command", cliCtx.Command.Name),
		slog.String("endpoint", cliCtx.String(FlagEndpoint)),
	)
}
