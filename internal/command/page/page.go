package page

import (
	"bytes"
	"log/slog"
	"os"

	"github.com/bornholm/scout/internal/command/common"
	"github.com/bornholm/scout/pkg/search"
	"github.com/bornholm/scout/pkg/ui/dom"
	"github.com/gosimple/slug"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Page() *cli.Command {
	return &cli.Command{
		Name:  "page",
		Usage: "Render the assessments matching the given hiring need as an HTML page",
		Flags: append(
			common.EndpointFlags(),
			common.QueryFlag(),
			&cli.StringFlag{
				Name:      "template",
				Value:     "",
				Aliases:   []string{"t"},
				EnvVars:   []string{"SCOUT_TEMPLATE"},
				Usage:     "HTML page holding the #queryInput, #searchBtn, #results, #loading, #resultsHeader and #resultCount elements",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:      "output",
				Value:     "",
				Aliases:   []string{"o"},
				EnvVars:   []string{"SCOUT_OUTPUT"},
				Usage:     "Filename of the resulting page, default to slug of query",
				TakesFile: true,
			},
		),
		Action: func(cliCtx *cli.Context) error {
			rawQuery := cliCtx.String(common.FlagQuery)
			template := cliCtx.String("template")
			output := cliCtx.String("output")

			query, ok := search.Normalize(rawQuery)
			if !ok {
				return errors.New("please specify a non-blank query")
			}

			recommender, err := common.NewRecommender(cliCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			var view *dom.View

			if template != "" {
				data, err := os.ReadFile(template)
				if err != nil {
					return errors.Wrapf(err, "failed to read page template")
				}

				view, err = dom.ParseView(bytes.NewReader(data))
				if err != nil {
					return errors.Wrapf(err, "invalid page template '%s'", template)
				}
			} else {
				view, err = dom.DefaultView()
				if err != nil {
					return errors.WithStack(err)
				}
			}

			ctx := common.Context(cliCtx)

			view.SetInput(query)

			// The page is written even when the query failed: it then holds the error message.
			submitErr := search.NewClient(recommender, view).Trigger(ctx)

			var buff bytes.Buffer
			if err := view.Render(&buff); err != nil {
				return errors.Wrapf(err, "failed to render page")
			}

			if output == "" {
				output = slug.Make(query) + ".html"
			}

			if err := os.WriteFile(output, buff.Bytes(), 0644); err != nil {
				return errors.Wrapf(err, "failed to write page")
			}

			slog.InfoContext(ctx, "page written", slog.String("output", output))

			return common.Reported(submitErr)
		},
	}
}
