package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"task-status-viewer/internal/domain"
)

type UpdatesCmd struct {
	flags *Flags
	app   *App
	out   io.Writer

	// flags
	jsonOutput bool
	width      int
}

func NewUpdatesCmd(flags *Flags, app *App) *UpdatesCmd {
	return &UpdatesCmd{flags: flags, app: app, out: os.Stdout}
}

// Register adds the updates command and its show subcommand to the application
func (cmd *UpdatesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "updates",
		Usage:     "List the service updates",
		UsageText: "statusview updates [--json] | statusview updates show <id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.list,
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "Render one update in the terminal",
				UsageText: "statusview updates show [--width 80] <id>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "width",
						Usage:       "word wrap width",
						Value:       80,
						Destination: &cmd.width,
					},
				},
				Action: cmd.show,
			},
		},
	})

	return app
}

func (cmd *UpdatesCmd) list(ctx context.Context, c *cli.Command) error {
	records := cmd.app.Updates.ListUpdates()

	if cmd.jsonOutput {
		enc := json.NewEncoder(cmd.out)
		for _, r := range records {
			if err := enc.Encode(updateLine(r)); err != nil {
				return err
			}
		}
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(cmd.out, "%s  %s  %s\n", mutedStyle.Render(r.Date), typeBadge(r.Type), titleStyle.Render(r.Title))
		fmt.Fprintf(cmd.out, "  %s\n", r.Summary)
		fmt.Fprintf(cmd.out, "  %s\n\n", mutedStyle.Render(r.ID))
	}

	return nil
}

func (cmd *UpdatesCmd) show(ctx context.Context, c *cli.Command) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("update id is required")
	}

	record, err := cmd.app.Updates.GetUpdate(id)
	if err != nil {
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(cmd.width),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}

	body, err := renderer.Render(record.Content)
	if err != nil {
		return fmt.Errorf("render update %s: %w", record.ID, err)
	}

	fmt.Fprintf(cmd.out, "%s  %s\n", typeBadge(record.Type), titleStyle.Render(record.Title))
	fmt.Fprintf(cmd.out, "%s\n", mutedStyle.Render(record.Date))
	_, err = io.WriteString(cmd.out, body)
	return err
}

type updateJSON struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Label   string `json:"label"`
	Summary string `json:"summary"`
}

func updateLine(r domain.UpdateRecord) updateJSON {
	return updateJSON{
		ID:      r.ID,
		Date:    r.Date,
		Title:   r.Title,
		Type:    string(r.Type),
		Label:   r.Type.Info().Label,
		Summary: r.Summary,
	}
}
