package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/psxtools/psxmc"
	"github.com/urfave/cli/v2"
)

const defaultDB = "psxmc.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func main() {
	app := cli.NewApp()

	app.Name = "psxmc"
	app.Usage = "PSX memory card utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"PSXMC_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to save catalog database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "info",
			Usage:     "Print the directory and save titles of a card image",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := psxmc.OpenFile(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				for i, dir := range m.Info.DirFrames {
					fmt.Printf("Slot %d:%s\n", i, dir)
					if dir.AllocState() == psxmc.AllocFirst {
						fmt.Println(m.Data[i].TitleFrame)
					}
				}

				return nil
			},
		},
		{
			Name:      "find",
			Usage:     "Search the saves on a card image by title",
			ArgsUsage: "FILE TERM",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := psxmc.OpenFile(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				for _, block := range m.FindGame(c.Args().Get(1)) {
					fmt.Println(block.TitleFrame)
				}

				return nil
			},
		},
		{
			Name:      "export",
			Usage:     "Export every save icon as .png, and animated icons as .gif",
			ArgsUsage: "FILE [DIRECTORY]",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := psxmc.OpenFile(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				dir := cwd
				if c.NArg() > 1 {
					dir = c.Args().Get(1)
				}

				for _, block := range m.Data {
					if err := block.ExportImages(dir); err != nil {
						return cli.Exit(err, 1)
					}
				}

				return nil
			},
		},
		{
			Name:      "scan",
			Usage:     "Scan a directory tree and index every card into the catalog",
			ArgsUsage: "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := psxmc.OpenSaveDB(c.String("db"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				s := psxmc.NewScanner(db, newLogger(c))
				if err := s.Scan(c.Args().First()); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "search",
			Usage:     "Search the catalog by save title",
			ArgsUsage: "TERM",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := psxmc.OpenSaveDB(c.String("db"))
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer db.Close()

				entries, err := db.FindByTitle(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				for _, e := range entries {
					fmt.Printf("%s slot %d: %s [%s] %s %d bytes\n", e.CardPath, e.Slot, e.Title, e.ProductID, e.Region, e.Filesize)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
