package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/depositclaim/internal/llm"
	"github.com/dshills/depositclaim/internal/mail"
	"github.com/dshills/depositclaim/internal/server"
	"github.com/dshills/depositclaim/internal/store"
)

// serveFlags holds the parsed flags for the serve command.
type serveFlags struct {
	addr      string
	redisAddr string
	redisDB   int
}

func newServeCmd() *cobra.Command {
	var flags serveFlags
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the letter-generation HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.addr, "addr", ":8080", "Listen address")
	f.StringVar(&flags.redisAddr, "redis", "", "Redis address for the claim store; empty uses an in-memory store")
	f.IntVar(&flags.redisDB, "redis-db", 0, "Redis database number")

	return cmd
}

func runServe(flags serveFlags) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	st, closeStore, err := openStore(flags, logger)
	if err != nil {
		return codeError(3, "%s", err)
	}
	defer closeStore()

	sender := mail.FromEnv(logger)
	if _, ok := sender.(*mail.Log); ok {
		logger.Info("RESEND_API_KEY not set, email runs in test mode")
	}

	opts := []server.Option{}
	if provider, err := llm.FromEnv(); err == nil {
		logger.Info("LLM provider configured")
		opts = append(opts, server.WithProvider(provider))
	} else {
		logger.Info("no LLM provider configured, using deterministic templates only")
	}

	h := server.New(logger, st, sender, opts...)

	srv := &http.Server{
		Addr:              flags.addr,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("listening", "addr", flags.addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return codeError(1, "server: %s", err)
	}
	return nil
}

// openStore picks the claim store backend: Redis when --redis is given,
// otherwise in-memory (claims then live only for the process lifetime).
func openStore(flags serveFlags, logger *slog.Logger) (store.Store, func(), error) {
	if flags.redisAddr == "" {
		logger.Info("using in-memory claim store")
		return store.NewMemory(), func() {}, nil
	}
	rs, err := store.NewRedis(context.Background(), flags.redisAddr, os.Getenv("REDIS_PASSWORD"), flags.redisDB)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("using redis claim store", "addr", flags.redisAddr)
	return rs, func() { _ = rs.Close() }, nil
}
