package query

import (
	"encoding/json"
	"io"

	"github.com/bornholm/scout/internal/command/common"
	"github.com/bornholm/scout/pkg/search"
	"github.com/bornholm/scout/pkg/ui/dom"
	"github.com/bornholm/scout/pkg/ui/record"
	"github.com/bornholm/scout/pkg/ui/term"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.yaml.in/yaml/v3"
)

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatYAML     = "yaml"
	FormatJSON     = "json"
)

func Query() *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "Find the assessments matching the given hiring need",
		Flags: append(
			common.EndpointFlags(),
			common.QueryFlag(),
			&cli.StringFlag{
				Name:    "format",
				Value:   FormatText,
				Aliases: []string{"f"},
				EnvVars: []string{"SCOUT_FORMAT"},
				Usage:   "Output format (text, markdown, yaml, json)",
			},
		),
		Action: func(cliCtx *cli.Context) error {
			rawQuery := cliCtx.String(common.FlagQuery)
			format := cliCtx.String("format")

			if _, ok := search.Normalize(rawQuery); !ok {
				return errors.New("please specify a non-blank query")
			}

			recommender, err := common.NewRecommender(cliCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			ctx := common.Context(cliCtx)
			out := cliCtx.App.Writer

			switch format {
			case FormatText:
				view := term.NewView(rawQuery, out, cliCtx.App.ErrWriter)
				return common.Reported(search.NewClient(recommender, view).Trigger(ctx))

			case FormatMarkdown:
				view, err := dom.DefaultView()
				if err != nil {
					return errors.WithStack(err)
				}

				view.SetInput(rawQuery)

				submitErr := search.NewClient(recommender, view).Trigger(ctx)

				markdown, err := view.Markdown()
				if err != nil {
					return errors.WithStack(err)
				}

				if _, err := io.WriteString(out, markdown+"\n"); err != nil {
					return errors.WithStack(err)
				}

				return common.Reported(submitErr)

			case FormatYAML, FormatJSON:
				view := record.NewView(rawQuery)

				submitErr := search.NewClient(recommender, view).Trigger(ctx)

				if err := encode(out, format, view.State()); err != nil {
					return errors.WithStack(err)
				}

				return common.Reported(submitErr)

			default:
				return errors.Errorf("unknown output format '%s'", format)
			}
		},
	}
}

func encode(w io.Writer, format string, state record.State) error {
	if format == FormatJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return errors.WithStack(encoder.Encode(state))
	}

	encoder := yaml.NewEncoder(w)
	defer encoder.Close()

	return errors.WithStack(encoder.Encode(state))
}

