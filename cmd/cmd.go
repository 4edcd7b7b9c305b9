// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// tripsCommand handles trip record fetch operations
func tripsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "trips",
		Usage: "Fetch monthly trip record files over an inclusive range",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:     "start",
				Aliases:  []string{"s"},
				Usage:    "First month of the range (YYYY-MM)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "end",
				Aliases: []string{"e"},
				Usage:   "Last month of the range (YYYY-MM, defaults to --start)",
			},
			&cli.StringFlag{
				Name:  "category",
				Usage: "Trip record category (yellow or green)",
				Value: "green",
			},
			&cli.StringFlag{
				Name:    "dest",
				Aliases: []string{"d"},
				Usage:   "Destination directory (defaults to output.dir from config)",
			},
			&cli.BoolFlag{
				Name:  "dryrun",
				Usage: "Plan the fetch without downloading anything",
			},
		},
		Action: r.Trips,
	}
}

// powerliftingCommand handles powerlifting dataset conversion
func powerliftingCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "powerlifting",
		Aliases: []string{"opl"},
		Usage:   "Download the powerlifting archive and convert it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Output directory (defaults to output.dir from config)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format, parquet or csv (default: parquet)",
			},
			&cli.BoolFlag{
				Name:  "dryrun",
				Usage: "Plan the conversion without downloading anything",
			},
			&cli.BoolFlag{
				Name:  "skip-download",
				Usage: "Return early when the output file already exists",
			},
			&cli.BoolFlag{
				Name:  "keep-csv",
				Usage: "Keep a CSV copy alongside the Parquet output",
			},
			&cli.BoolFlag{
				Name:  "no-cleanup",
				Usage: "Keep the archive and extracted files",
			},
		},
		Action: r.Powerlifting,
	}
}

// configCommand handles configuration bootstrap and inspection
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage configuration",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write an example config file to get started",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Where to write the config file",
						Value: "config.toml",
					},
				},
				Action: r.ConfigInit,
			},
			{
				Name:  "show",
				Usage: "Print the resolved configuration",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.ConfigShow,
			},
		},
	}
}
