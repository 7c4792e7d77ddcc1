package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/warefy/supply-chain-client/internal/client"
	"github.com/warefy/supply-chain-client/internal/core/ports"
	"github.com/warefy/supply-chain-client/internal/infrastructure/db/redis"
	"github.com/warefy/supply-chain-client/internal/infrastructure/session"
	"github.com/warefy/supply-chain-client/internal/pkg/config"
	"github.com/warefy/supply-chain-client/pkg/logger"
)

// app carries what every command needs once the root pre-run has resolved
// configuration.
type app struct {
	out    io.Writer
	lookup envconfig.Lookuper

	flags struct {
		apiURL      string
		demo        bool
		logLevel    string
		sessionFile string
	}

	cfg     *config.Config
	log     zerolog.Logger
	client  *client.Client
	closers []func() error
}

// newApp builds an app writing results to out. A nil lookup reads the
// process environment and an optional .env file.
func newApp(out io.Writer, lookup envconfig.Lookuper) *app {
	return &app{out: out, lookup: lookup}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "warefyctl",
		Short:         "Command-line client for the Warefy supply-chain API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.apiURL, "api-url", "", "backend base URL (overrides WAREFY_API_URL)")
	pf.BoolVar(&a.flags.demo, "demo", false, "accept the demo credentials locally (overrides WAREFY_DEMO_MODE)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "trace, debug, info, warn or error (overrides LOG_LEVEL)")
	pf.StringVar(&a.flags.sessionFile, "session-file", "", "keep the session in this file (overrides WAREFY_SESSION_FILE)")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newSessionCmd(a),
		newInventoryCmd(a),
		newWarehousesCmd(a),
		newVehiclesCmd(a),
		newDemandCmd(a),
		newRoutesCmd(a),
		newAnomaliesCmd(a),
		newUsersCmd(a),
		newOrdersCmd(a),
		newReportsCmd(a),
		newAICmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	ctx := cmd.Context()

	var (
		cfg *config.Config
		err error
	)
	if a.lookup != nil {
		cfg, err = config.LoadWith(ctx, a.lookup)
	} else {
		cfg, err = config.Load(ctx)
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.API.BaseURL = a.flags.apiURL
	}
	if flags.Changed("demo") {
		cfg.API.DemoMode = a.flags.demo
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.logLevel
	}
	if flags.Changed("session-file") {
		cfg.Session.Backend = "file"
		cfg.Session.File = a.flags.sessionFile
	}
	a.cfg = cfg

	a.log = logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "warefyctl",
	})

	store, err := a.sessionStore(ctx)
	if err != nil {
		return err
	}

	a.client, err = client.New(client.Config{
		BaseURL:     cfg.API.BaseURL,
		Timeout:     cfg.API.Timeout,
		DemoMode:    cfg.API.DemoMode,
		FanOutLimit: cfg.API.FanOutLimit,
	}, store, a.log)
	return err
}

func (a *app) sessionStore(ctx context.Context) (ports.SessionStore, error) {
	switch a.cfg.Session.Backend {
	case "memory":
		return session.NewMemoryStore(), nil
	case "redis":
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		if err != nil {
			return nil, fmt.Errorf("session store: %w", err)
		}
		a.closers = append(a.closers, rdb.Close)
		return redis.NewSessionStore(rdb, a.cfg.Session.Namespace, a.cfg.Session.TTL), nil
	default:
		return session.NewFileStore(a.cfg.Session.File), nil
	}
}

func (a *app) close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// print writes v as indented JSON.
func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
