package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "ymz"
	app.Description = "Drives a pair of YMZ284 sound chips from songs or the keyboard"
	app.Usage = "ymz [global options] command [arguments]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "Path to a YAML settings file",
		},
		cli.StringFlag{
			Name:  "bus",
			Usage: "Bus driver: trace, null or serial (overrides the config file)",
		},
		cli.StringFlag{
			Name:  "port",
			Usage: "Serial device of the bus bridge",
		},
		cli.IntFlag{
			Name:  "baud",
			Usage: "Baud rate of the serial device",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "play",
			Usage:     "Play a song program",
			ArgsUsage: "<song file>",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "dump-registers",
					Usage: "Print the register files of both chips after playback",
				},
			},
			Action: runPlay,
		},
		{
			Name:      "dump",
			Usage:     "Disassemble a song program",
			ArgsUsage: "<song file>",
			Action:    runDump,
		},
		{
			Name:   "live",
			Usage:  "Play the chips from the keyboard",
			Action: runLive,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running ymz", "error", err)
		os.Exit(1)
	}
}
