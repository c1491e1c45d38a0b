package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-supermarket-chain/internal/config"
	"github.com/ariefcatur/go-supermarket-chain/internal/console"
	"github.com/ariefcatur/go-supermarket-chain/internal/inventory"
	"github.com/ariefcatur/go-supermarket-chain/internal/journal"
	"github.com/ariefcatur/go-supermarket-chain/internal/logger"
	"github.com/ariefcatur/go-supermarket-chain/internal/market"
	"github.com/ariefcatur/go-supermarket-chain/internal/seed"
)

type app struct {
	cfg     config.Config
	log     *zap.Logger
	chain   *market.Chain
	journal *journal.Journal
}

func main() {
	a := &app{}
	cliApp := &cli.App{
		Name:  "supermarket",
		Usage: "query sales and stock of a supermarket chain",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "env-file", Value: ".env", Usage: "dotenv file loaded before the environment"},
			&cli.StringFlag{Name: "seed", EnvVars: []string{"SEED_FILE"}, Usage: "YAML seed file, embedded sample data when empty"},
		},
		Before: a.setup,
		After:  a.teardown,
		Action: a.menu,
		Commands: []*cli.Command{
			{
				Name:   "menu",
				Usage:  "interactive console menu (default)",
				Action: a.menu,
			},
			{
				Name:  "report",
				Usage: "print every chain-wide query once",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "at", Value: "10:00", Usage: "time of day for the open stores query (H:mm)"},
					&cli.StringFlag{Name: "day", Value: "Lunes", Usage: "day name for the open stores query"},
					&cli.BoolFlag{Name: "events", Usage: "also dump the sale journal as JSON lines"},
				},
				Action: a.report,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "supermarket:", err)
		os.Exit(1)
	}
}

func (a *app) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return err
	}
	if c.IsSet("seed") {
		cfg.SeedFile = c.String("seed")
	}
	a.cfg = cfg

	a.log, err = logger.New(cfg)
	if err != nil {
		return err
	}

	doc, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return err
	}
	a.journal = journal.New(cfg.JournalCapacity)
	chain, sales, err := doc.Build(a.journal, a.log)
	if err != nil {
		return err
	}
	a.chain = chain

	svc := &inventory.Service{Chain: chain, Logger: a.log}
	svc.Apply(sales)

	a.log.Info("chain ready",
		zap.Int("stores", chain.Len()),
		zap.String("seed", seedName(cfg.SeedFile)),
		zap.Int("journal_events", a.journal.Len()),
	)
	return nil
}

func (a *app) teardown(*cli.Context) error {
	if a.log != nil {
		_ = a.log.Sync()
	}
	return nil
}

func (a *app) menu(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	con := &console.Console{In: os.Stdin, Out: os.Stdout, Chain: a.chain, Logger: a.log}
	if err := con.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *app) report(c *cli.Context) error {
	at, err := seed.ParseClock(c.String("at"))
	if err != nil {
		return err
	}
	console.Report(os.Stdout, a.chain, at, console.NormalizeDay(c.String("day")))
	if c.Bool("events") {
		console.DumpEvents(os.Stdout, a.journal)
	}
	return nil
}

func seedName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
