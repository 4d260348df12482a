package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/tradekit/backtester/config"
	"github.com/tradekit/backtester/data/csv"
	"github.com/tradekit/backtester/engine"
	"github.com/tradekit/backtester/strategies"
)

func main() {
	app := &cli.App{
		Name:  "backtester",
		Usage: "replay historical bars through a strategy with simulated execution",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "csv",
				Usage:    "path to bar data (timestamp-ms,open,high,low,close,volume)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "strategy",
				Usage: "built-in strategy name",
				Value: "dollarcostaverage",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a JSON run config; defaults apply when omitted",
			},
			&cli.StringFlag{
				Name:  "instrument",
				Usage: "instrument id stamped on orders",
				Value: "BTC-USDT",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "write the full JSON report to this path",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log per-bar processing",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := config.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.ReadConfigFromFile(path); err != nil {
			return err
		}
	}
	if c.Bool("verbose") {
		cfg.Verbose = true
	}

	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck // stderr sync failure is unactionable

	bars, err := csv.LoadBarsFromFile(c.String("csv"))
	if err != nil {
		return err
	}

	strat, err := strategies.LoadStrategyByName(c.String("strategy"))
	if err != nil {
		return err
	}

	bt, err := engine.New(cfg, bars, log)
	if err != nil {
		return err
	}
	bt.SetInstrument(c.String("instrument"))

	if err = bt.Run(strat); err != nil {
		return err
	}

	report := bt.ComputePerformance()
	report.PrintResult(os.Stdout)

	if out := c.String("output"); out != "" {
		serialised, err := report.Serialise()
		if err != nil {
			return err
		}
		if err = os.WriteFile(out, []byte(serialised), 0o644); err != nil {
			return err
		}
		log.Info("report written", zap.String("path", out))
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
