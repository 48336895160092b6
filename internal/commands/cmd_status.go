package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"task-status-viewer/internal/workerpool"
)

type StatusCmd struct {
	flags *Flags
	app   *App
	out   io.Writer

	// flags
	fixed      bool
	jsonOutput bool
	workers    int
}

func NewStatusCmd(flags *Flags, app *App) *StatusCmd {
	return &StatusCmd{flags: flags, app: app, out: os.Stdout}
}

// Register adds the status command to the application
func (cmd *StatusCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "status",
		Usage:     "Look up the status of one or more tasks",
		UsageText: "statusview status [--fixed] [--json] <user>/<date>/<task>[/...] ...",
		Description: `Resolves each path to a task id and fetches its status from the API.

Extra path segments are appended to the task id unless --fixed is set, in which
case only the first three segments are used. Lookups run concurrently.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "fixed",
				Usage:       "ignore segments after the task name",
				Destination: &cmd.fixed,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
			&cli.IntFlag{
				Name:        "workers",
				Usage:       "concurrent lookups (defaults to workers from the config)",
				Destination: &cmd.workers,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *StatusCmd) run(ctx context.Context, c *cli.Command) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("at least one task path is required")
	}

	results, err := cmd.lookup(ctx, paths)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
		if err := cmd.print(r); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d lookups failed", failed, len(paths))
	}
	return nil
}

// lookup runs every path through the pool and returns the results in the
// order the paths were given.
func (cmd *StatusCmd) lookup(ctx context.Context, paths []string) ([]workerpool.Result, error) {
	workers := cmd.workers
	if workers <= 0 {
		workers = cmd.flags.Config.Workers
	}
	workers = min(max(workers, 1), len(paths))

	pool := workerpool.New(len(paths), cmd.app.Status, log.With().Str("component", "workerpool").Logger())
	pool.Start(workers)

	for _, path := range paths {
		if err := pool.Enqueue(workerpool.Lookup{Path: path, Fixed: cmd.fixed}); err != nil {
			_ = pool.Shutdown(ctx)
			return nil, fmt.Errorf("enqueue %s: %w", path, err)
		}
	}

	shutdownErr := make(chan error, 1)
	go func() { shutdownErr <- pool.Shutdown(ctx) }()

	byPath := make(map[string][]workerpool.Result, len(paths))
	for r := range pool.Results() {
		byPath[r.Lookup.Path] = append(byPath[r.Lookup.Path], r)
	}

	if err := <-shutdownErr; err != nil {
		return nil, fmt.Errorf("wait for lookups: %w", err)
	}

	ordered := make([]workerpool.Result, 0, len(paths))
	for _, path := range paths {
		pending := byPath[path]
		if len(pending) == 0 {
			continue
		}
		ordered = append(ordered, pending[0])
		byPath[path] = pending[1:]
	}

	return ordered, nil
}

type statusLine struct {
	Path   string `json:"path"`
	TaskID string `json:"task_id,omitempty"`
	Status any    `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (cmd *StatusCmd) print(r workerpool.Result) error {
	if cmd.jsonOutput {
		line := statusLine{Path: r.Lookup.Path}
		if r.Err != nil {
			line.Error = r.Err.Error()
		} else {
			line.TaskID = string(r.Page.TaskID)
			line.Status = r.Page.Status
		}
		return json.NewEncoder(cmd.out).Encode(line)
	}

	if r.Err != nil {
		_, err := fmt.Fprintf(cmd.out, "%s  %s\n", r.Lookup.Path, errorStyle.Render(r.Err.Error()))
		return err
	}

	status := r.Page.Status
	if _, err := fmt.Fprintf(cmd.out, "%s  %s  %s\n",
		titleStyle.Render(string(r.Page.TaskID)), statusBadge(status.Status), mutedStyle.Render(r.Lookup.Path)); err != nil {
		return err
	}

	if status.Result != nil {
		if status.Result.IsText() {
			fmt.Fprintf(cmd.out, "  result: %s\n", status.Result.Text)
		} else {
			for _, k := range sortedKeys(status.Result.Fields) {
				fmt.Fprintf(cmd.out, "  %s: %s\n", k, status.Result.Fields[k])
			}
		}
	}
	for _, k := range sortedKeys(status.Error) {
		fmt.Fprintf(cmd.out, "  %s\n", errorStyle.Render(k+": "+status.Error[k]))
	}

	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
