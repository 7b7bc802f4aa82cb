package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/Alexanderh2004/survivor-automation/config"
	"github.com/Alexanderh2004/survivor-automation/controller"
	"github.com/Alexanderh2004/survivor-automation/db"
	"github.com/Alexanderh2004/survivor-automation/fantasy"
	"github.com/Alexanderh2004/survivor-automation/model"
	"github.com/Alexanderh2004/survivor-automation/store"
	"github.com/Alexanderh2004/survivor-automation/web"
	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	app := &cli.App{
		Name:  "survivor",
		Usage: "automate survivor-pool rooms against the fantasy backend",
		Commands: []*cli.Command{
			createRoomsCommand(),
			setResultsCommand(),
			serveCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func createRoomsCommand() *cli.Command {
	return &cli.Command{
		Name:  "create-rooms",
		Usage: "create leagues, matches, and survivor rooms",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "count",
				Usage: "number of rooms to create (default: one per start delay)",
			},
			&cli.StringSliceFlag{
				Name:  "start-delay",
				Usage: "kickoff delay from now, e.g. 15m or 1h; repeatable, cycled across rooms",
			},
			&cli.StringFlag{
				Name:  "kickoff",
				Usage: "explicit local kickoff 'YYYY-MM-DD HH:MM' (overrides --start-delay)",
			},
			&cli.StringFlag{
				Name:  "tz",
				Usage: "IANA time zone for --kickoff (default: DEFAULT_TZ)",
			},
			&cli.StringFlag{
				Name:  "season",
				Usage: "season label for created matches",
				Value: "2025",
			},
		},
		Action: func(c *cli.Context) error {
			ctrl, cfg, cleanup, err := newController(c)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer cleanup()

			opts := controller.CreateOptions{
				Count:  c.Int("count"),
				Season: c.String("season"),
			}

			for _, d := range c.StringSlice("start-delay") {
				delay, err := time.ParseDuration(d)
				if err != nil {
					return cli.Exit(fmt.Sprintf("bad --start-delay %q: %v", d, err), 1)
				}
				opts.Delays = append(opts.Delays, delay)
			}

			if k := c.String("kickoff"); k != "" {
				date, clockStr, ok := strings.Cut(k, " ")
				if !ok {
					return cli.Exit(fmt.Sprintf("bad --kickoff %q: want 'YYYY-MM-DD HH:MM'", k), 1)
				}
				zone := c.String("tz")
				if zone == "" {
					zone = cfg.DefaultTZ
				}
				kickoff, err := model.ParseKickoff(date, clockStr, zone)
				if err != nil {
					return cli.Exit(err.Error(), 1)
				}
				opts.Kickoff = kickoff
			}

			summary, err := ctrl.CreateRooms(c.Context, opts)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			log.Printf("create-rooms finished: %s", summary)
			if summary.Failed() {
				return cli.Exit("some rooms could not be created", 1)
			}
			return nil
		},
	}
}

func setResultsCommand() *cli.Command {
	return &cli.Command{
		Name:  "set-results",
		Usage: "apply results to every room whose kickoff has passed",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "winner",
				Usage: "side to declare winner for every match (home or away)",
				Value: "home",
			},
		},
		Action: func(c *cli.Context) error {
			ctrl, _, cleanup, err := newController(c)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer cleanup()

			side, err := model.ParseSide(c.String("winner"))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			summary, err := ctrl.ApplyResults(c.Context, controller.FixedWinner(side))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			log.Printf("set-results finished: %s", summary)
			if summary.Failed() {
				return cli.Exit("some rooms could not be resolved", 1)
			}
			return nil
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve read-only status pages for rooms and matches",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "port",
				Usage: "port to listen on (default: PORT)",
			},
		},
		Action: func(c *cli.Context) error {
			ctrl, cfg, cleanup, err := newController(c)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer cleanup()

			port := cfg.Port
			if c.Int("port") != 0 {
				port = c.Int("port")
			}

			server, err := web.NewServer(port, ctrl)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			shutdown := make(chan bool)
			wg := &sync.WaitGroup{}

			// Catch ctrl-c and shut the server down cleanly.
			intChannel := make(chan os.Signal, 2)
			signal.Notify(intChannel, os.Interrupt)
			go func() {
				<-intChannel
				close(shutdown)
			}()

			wg.Add(1)
			go server.ListenAndServe(shutdown, wg)
			wg.Wait()
			log.Printf("server shutdown")
			return nil
		},
	}
}

// newController assembles the full dependency graph from the environment.
// Configuration problems are reported before any network activity.
func newController(c *cli.Context) (controller.C, *config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	client, err := fantasy.New(cfg.BaseURL, fantasy.Credentials{
		Token:    cfg.APIToken,
		Username: cfg.Username,
		Password: cfg.Password,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	teams, err := model.LoadTeams(cfg.TeamsFile)
	if err != nil {
		return nil, nil, nil, err
	}

	matchDB, err := db.New(c.Context, cfg.MatchDB)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("cannot open match cache: %w", err)
	}

	rooms := store.NewRooms(cfg.RoomsFile)

	ctrl, err := controller.New(clock.New(), client, rooms, matchDB, teams, cfg.GameID)
	if err != nil {
		matchDB.Close()
		return nil, nil, nil, err
	}

	cleanup := func() {
		if err := matchDB.Close(); err != nil {
			log.Printf("error closing match cache: %v", err)
		}
	}
	return ctrl, cfg, cleanup, nil
}
