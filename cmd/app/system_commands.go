package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/encrypt/cmd/app/commands"
)

func getSystemCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "version",
			Usage: "Print the application version",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunVersion(commands.DefaultIO().Writer, version)
			},
		},
	}
}
