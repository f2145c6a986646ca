package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"battlefleet/internal/board"
	"battlefleet/internal/config"
	"battlefleet/internal/db"
	"battlefleet/internal/events"
	"battlefleet/internal/game"
	"battlefleet/internal/live"
	"battlefleet/internal/metrics"
	"battlefleet/internal/report"
	"battlefleet/internal/scoreboard"
	"battlefleet/internal/server"
	"battlefleet/internal/strategy"
	"battlefleet/internal/tournament"
	"battlefleet/internal/visual"
)

func main() {
	cfg := config.Load()

	app := &cli.App{
		Name:  "battlefleet",
		Usage: "run a concurrent battleship tournament with a live dashboard",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "player",
				Usage: "tournament player name (repeatable)",
				Value: cli.NewStringSlice("ada", "grace", "linus", "margaret"),
			},
			&cli.IntFlag{Name: "cycles", Usage: "round-robin repetitions", Value: cfg.Cycles},
			&cli.IntFlag{Name: "board-size", Usage: "board side length", Value: cfg.BoardSize},
			&cli.IntFlag{Name: "ships", Usage: "ships per side on random boards", Value: cfg.ShipsPerSide},
			&cli.IntFlag{Name: "max-ship-size", Usage: "largest random ship", Value: cfg.MaxShipSize},
			&cli.IntFlag{Name: "workers", Usage: "concurrent match workers", Value: cfg.MatchWorkers},
			&cli.IntFlag{Name: "sink-points", Usage: "points per cell of a sunk piece", Value: cfg.SinkPointsPerCell},
			&cli.StringFlag{Name: "fleet", Usage: "YAML fleet layout file", Value: cfg.FleetFile},
			&cli.Int64Flag{Name: "seed", Usage: "random seed (0 picks one)"},
			&cli.StringFlag{Name: "port", Usage: "dashboard port", Value: cfg.Port},
			&cli.StringFlag{Name: "database-url", Usage: "optional Postgres DSN for match history", Value: cfg.DatabaseURL},
			&cli.BoolFlag{Name: "verbose", Usage: "print every attack to the console"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err.Error())
	}
}

func run(c *cli.Context) error {
	players := c.StringSlice("player")
	if len(players) < 2 {
		return cli.Exit("need at least two players", 1)
	}

	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sb := scoreboard.New(players)
	bus := events.NewBus()
	hub := live.NewHub(bus)

	var database *db.DB
	if dsn := c.String("database-url"); dsn != "" {
		d, err := db.Connect(dsn)
		if err != nil {
			log.Printf("[DB] Failed to connect: %v (running without database)\n", err)
		} else if err := d.Migrate(); err != nil {
			log.Printf("[DB] Migration failed: %v (running without database)\n", err)
			d.Close()
		} else {
			database = d
			defer database.Close()
		}
	} else {
		log.Println("[DB] DATABASE_URL not set, running without database")
	}

	srv := server.New(sb, hub)
	go func() {
		if err := srv.ListenAndServe("0.0.0.0:" + c.String("port")); err != nil {
			log.Printf("[Server] %v\n", err)
		}
	}()

	// Reporting consumer: prints each finished round and feeds the live hub,
	// the metrics and the optional history database.
	printer := report.NewPrinter(os.Stdout)
	var reporterWG sync.WaitGroup
	reporterWG.Add(1)
	go func() {
		defer reporterWG.Done()
		printer.Run(sb, func(rr *scoreboard.RoundResults) {
			metrics.RoundsFinished.Inc()
			leaders := make([]string, len(rr.Statistics))
			for i, st := range rr.Statistics {
				leaders[i] = st.Name
			}
			select {
			case bus.Rounds <- events.RoundEvent{RoundNum: rr.RoundNum, Leaders: leaders}:
			default:
			}
			if database != nil {
				if err := database.RecordRoundStandings(rr.RoundNum, rr.Statistics); err != nil {
					log.Printf("[DB] RecordRoundStandings error: %v\n", err)
				}
			}
		})
	}()

	runner := &tournament.Runner{
		Engine:     game.NewEngine(game.PointsPerCell(c.Int("sink-points"))),
		Scoreboard: sb,
		NewBoard:   boardFactory(c, seed),
		NewPlayer:  playerFactory(seed),
		NewVisual:  visualFactory(c.Bool("verbose"), bus),
		Workers:    c.Int("workers"),
		DB:         database,
	}

	schedule := tournament.Schedule(players, c.Int("cycles"))
	log.Printf("[Tournament] %d players, %d rounds, seed %d\n", len(players), len(schedule), seed)

	err := runner.Run(ctx, schedule)
	reporterWG.Wait()

	printFinalStandings(sb)
	return err
}

// boardFactory builds fresh boards, either from a fixed fleet layout or with
// random fleets derived from the base seed.
func boardFactory(c *cli.Context, seed int64) func() (*board.Board, error) {
	if path := c.String("fleet"); path != "" {
		layout, err := board.LoadLayout(path)
		return func() (*board.Board, error) {
			if err != nil {
				return nil, err
			}
			return board.FromLayout(layout)
		}
	}

	size := c.Int("board-size")
	ships := c.Int("ships")
	maxShip := c.Int("max-ship-size")
	var n int64
	return func() (*board.Board, error) {
		rng := rand.New(rand.NewSource(seed + atomic.AddInt64(&n, 1)))
		return board.RandomFleet(size, ships, maxShip, rng), nil
	}
}

func playerFactory(seed int64) func(name string) game.Player {
	var n int64
	return func(name string) game.Player {
		return strategy.NewRandom(seed ^ atomic.AddInt64(&n, 1))
	}
}

func visualFactory(verbose bool, bus *events.Bus) func(matchID string) game.Visual {
	return func(matchID string) game.Visual {
		vis := visual.Multi{visual.NewEvent(matchID, bus), visual.Metrics{}}
		if verbose {
			vis = append(vis, visual.NewConsole(os.Stdout))
		}
		return vis
	}
}

func printFinalStandings(sb *scoreboard.Scoreboard) {
	printer := report.NewPrinter(os.Stdout)
	printer.PrintStandings("Final standings:", sb.Standings())
}
