package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/grephuman/grephuman/internal/dbcmd"
	"github.com/grephuman/grephuman/internal/inspectcmd"
	"github.com/grephuman/grephuman/internal/label"
	"github.com/grephuman/grephuman/internal/serve"
	"github.com/grephuman/grephuman/internal/watchcmd"
	"github.com/grephuman/grephuman/pkg/help"
)

func main() {
	app := &cli.App{
		Name:  "grephuman",
		Usage: "label AI-generated results on search pages",
		Commands: []*cli.Command{
			{
				Name:   "label",
				Usage:  "Classify and badge the results in SERP files or live pages",
				Action: label.LabelAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "inputs", Usage: "comma-separated SERP HTML files"},
					&cli.StringFlag{Name: "urls", Usage: "comma-separated search page URLs"},
					&cli.IntFlag{Name: "workers", Value: 4, Usage: "concurrent workers"},
					&cli.StringFlag{Name: "output-dir", Value: "grephuman-results/labeled", Usage: "directory for annotated pages"},
					&cli.StringFlag{Name: "results-dir", Value: "grephuman-results", Usage: "directory for session summaries"},
					&cli.StringFlag{Name: "cache-dir", Value: "grephuman-results/cache", Usage: "directory for the fetch cache"},
					&cli.StringFlag{Name: "cache-max-age", Value: "1h", Usage: "fetch cache freshness window, 0 disables caching"},
					&cli.BoolFlag{Name: "hide", Usage: "hide AI-flagged results (defaults to the stored setting)"},
					&cli.StringFlag{Name: "format", Value: "json", Usage: "output format: json or yaml"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
			},
			{
				Name:   "watch",
				Usage:  "Relabel a SERP file whenever it changes",
				Action: watchcmd.WatchAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Required: true, Usage: "SERP HTML file to watch"},
					&cli.StringFlag{Name: "output", Usage: "annotated output path (default <input>.labeled.html)"},
					&cli.StringFlag{Name: "window", Value: "300ms", Usage: "debounce window for change bursts"},
					&cli.StringFlag{Name: "poll-interval", Value: "500ms", Usage: "file polling interval"},
					&cli.BoolFlag{Name: "hide", Usage: "hide AI-flagged results"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
			},
			{
				Name:   "serve",
				Usage:  "Serve the annotated page and the message endpoint over HTTP",
				Action: serve.ServeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "input", Usage: "SERP HTML file to load"},
					&cli.StringFlag{Name: "url", Usage: "search page URL to fetch"},
					&cli.StringFlag{Name: "addr", Value: ":8745", Usage: "listen address"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
			},
			{
				Name:   "inspect",
				Usage:  "Deep-analyze a single page: article text, slop score, date, language",
				Action: inspectcmd.InspectAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Usage: "page URL"},
					&cli.StringFlag{Name: "input", Usage: "use a saved HTML file instead of fetching"},
					&cli.StringFlag{Name: "format", Value: "json", Usage: "output format: json or yaml"},
					&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
				},
			},
			{
				Name:  "coldstart",
				Usage: "Print a machine-readable quick start reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
			{
				Name:  "db",
				Usage: "Query recorded sessions, runs, verdicts, and settings",
				Subcommands: []*cli.Command{
					{
						Name:   "sessions",
						Usage:  "List labeling sessions",
						Action: dbcmd.SessionsAction,
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "max sessions to show"},
						},
					},
					{
						Name:   "runs",
						Usage:  "List labeling passes",
						Action: dbcmd.RunsAction,
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "limit", Value: 20, Usage: "max runs to show"},
						},
					},
					{
						Name:      "verdicts",
						Usage:     "Show per-result verdicts for a run",
						ArgsUsage: "<run-id>",
						Action:    dbcmd.VerdictsAction,
					},
					{
						Name:      "settings",
						Usage:     "List settings, or set one: db settings <key> <true|false>",
						ArgsUsage: "[key value]",
						Action:    dbcmd.SettingsAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
