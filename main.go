package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/finance-ledger/api"
	"github.com/carson-networks/finance-ledger/internal/config"
	"github.com/carson-networks/finance-ledger/internal/insights"
	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/logging"
	"github.com/carson-networks/finance-ledger/internal/operator"
	"github.com/carson-networks/finance-ledger/internal/service"
	"github.com/carson-networks/finance-ledger/internal/storage"
)

func main() {
	app := &cli.App{
		Name:   "finance-ledger",
		Usage:  "personal finance ledger",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API (default)",
				Action: serve,
			},
			{
				Name:      "report",
				Usage:     "render a report of the stored ledger in the terminal",
				ArgsUsage: "[balance-sheet|budget|net-earnings|labels|items|all]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "month", Usage: "month as YYYY-MM, defaults to the current month"},
					&cli.StringFlag{Name: "style", Value: "dark", Usage: "glamour style name"},
					&cli.BoolFlag{Name: "raw", Usage: "print markdown without rendering"},
				},
				Action: reportCommand,
			},
			{
				Name:   "dump",
				Usage:  "print the stored ledger state",
				Action: dumpCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("finance-ledger")
	}
}

// setup reads the configuration and opens the configured storage backend.
func setup(ctx context.Context) (*config.Config, *logrus.Logger, *storage.Storage, error) {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := logging.SetupLoggingWithLevel(envConfig.Log.Level)
	if err != nil {
		return nil, nil, nil, err
	}

	store, err := storage.NewStorage(ctx, envConfig, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	return envConfig, logger, store, nil
}

func serve(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	envConfig, logger, store, err := setup(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.WithError(err).Error("storage.Close")
		}
	}()
	logger.WithField("backend", envConfig.Storage.Backend).Info("finance-ledger starting")

	delegator := operator.NewOperatorDelegator(store.Load(ctx), store, ledger.DefaultEnv(), logger)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(delegator, insights.NewAdvisor(newGenerator(ctx, envConfig, logger), logger))

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.Server.Port,
		Service:  svc,
		Operator: delegator,
	}
	return httpRest.Serve(ctx)
}

// newGenerator connects to Gemini. Without credentials the advisor answers
// with its fallback message.
func newGenerator(ctx context.Context, envConfig *config.Config, logger *logrus.Logger) insights.IGenerator {
	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	gen, err := insights.NewGeminiGenerator(dialCtx, envConfig.Insights.Model)
	if err != nil {
		logger.WithError(err).Warn("insights.NewGeminiGenerator")
		return insights.Unavailable{}
	}
	return gen
}
