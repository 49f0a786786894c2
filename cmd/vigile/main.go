package main

import (
	"log/slog"
	"os"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	cli "github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "vigile",
		Usage:   "content-moderation scoring daemon",
		Version: versioninfo.Short(),
	}

	app.Commands = []*cli.Command{
		runCmd,
	}

	return app.Run(args)
}

var runCmd = &cli.Command{
	Name:  "run",
	Usage: "run the service",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "database-url",
			Usage:   "database connection string (sqlite:// or postgres://)",
			Value:   "sqlite://data/vigile/vigile.db",
			EnvVars: []string{"DATABASE_URL"},
		},
		&cli.StringFlag{
			Name:    "redis-url",
			Usage:   "redis connection URL; enables the redis offender store and notification queue",
			EnvVars: []string{"VIGILE_REDIS_URL", "REDIS_URL"},
		},
		&cli.StringFlag{
			Name:    "admin-webhook-url",
			Usage:   "incoming-webhook URL for admin notifications (used when redis is not configured)",
			EnvVars: []string{"VIGILE_ADMIN_WEBHOOK_URL"},
		},
		&cli.StringFlag{
			Name:    "bind",
			Usage:   "IP or address, and port, to listen on for the moderation API",
			Value:   ":3885",
			EnvVars: []string{"VIGILE_BIND"},
		},
		&cli.StringFlag{
			Name:    "metrics-listen",
			Usage:   "IP or address, and port, to listen on for metrics",
			Value:   ":3886",
			EnvVars: []string{"VIGILE_METRICS_LISTEN"},
		},
		&cli.IntFlag{
			Name:    "max-db-connections",
			EnvVars: []string{"MAX_DB_CONNECTIONS"},
			Value:   40,
		},
	},
	Action: func(cctx *cli.Context) error {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
		slog.SetDefault(logger)

		srv, err := NewServer(Config{
			DatabaseURL:      cctx.String("database-url"),
			MaxDBConnections: cctx.Int("max-db-connections"),
			RedisURL:         cctx.String("redis-url"),
			AdminWebhookURL:  cctx.String("admin-webhook-url"),
			Logger:           logger,
		})
		if err != nil {
			return err
		}

		go func() {
			if err := srv.RunMetrics(cctx.String("metrics-listen")); err != nil {
				slog.Error("metrics listener failed", "err", err)
			}
		}()

		return srv.RunAPI(cctx.String("bind"))
	},
}
