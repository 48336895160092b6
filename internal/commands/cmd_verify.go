package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

type VerifyCmd struct {
	flags *Flags
	app   *App
	out   io.Writer
}

func NewVerifyCmd(flags *Flags, app *App) *VerifyCmd {
	return &VerifyCmd{flags: flags, app: app, out: os.Stdout}
}

// Register adds the verify command to the application
func (cmd *VerifyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "verify",
		Usage:     "Check a signup client id against the API",
		UsageText: "statusview verify <client_id>",
		Action:    cmd.run,
	})

	return app
}

func (cmd *VerifyCmd) run(ctx context.Context, c *cli.Command) error {
	clientID, err := cmd.app.Signup.VerifyClient(ctx, c.Args().First())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.out, "client %s verified\n", clientID)
	return err
}
