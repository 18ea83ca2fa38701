package schema

import (
	"github.com/bornholm/scout/pkg/recommend"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Schema() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Print the JSON schema of the recommendation server response",
		Action: func(cliCtx *cli.Context) error {
			data, err := recommend.Schema()
			if err != nil {
				return errors.WithStack(err)
			}

			if _, err := cliCtx.App.Writer.Write(append(data, '\n')); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
