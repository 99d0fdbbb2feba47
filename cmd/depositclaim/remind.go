package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/depositclaim/internal/claim"
	"github.com/dshills/depositclaim/internal/mail"
	"github.com/dshills/depositclaim/internal/reminder"
)

// remindFlags holds the parsed flags for the remind command.
type remindFlags struct {
	serveFlags
	today string
}

func newRemindCmd() *cobra.Command {
	var flags remindFlags
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Run one reminder sweep over stored claims",
		Long:  "Scans stored claims and sends deadline reminders (3 days before, 2 days after) and removes claims more than 30 days past their deadline. Intended to run from cron.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemind(flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.redisAddr, "redis", "", "Redis address for the claim store; empty uses an in-memory store (no-op for cron)")
	f.IntVar(&flags.redisDB, "redis-db", 0, "Redis database number")
	f.StringVar(&flags.today, "today", "", "Treat this date (YYYY-MM-DD) as today; defaults to the current date")

	return cmd
}

func runRemind(flags remindFlags) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	today, err := resolveToday(flags.today)
	if err != nil {
		return codeError(3, "invalid flags: %s", err)
	}

	st, closeStore, err := openStore(flags.serveFlags, logger)
	if err != nil {
		return codeError(3, "%s", err)
	}
	defer closeStore()

	sweeper := &reminder.Sweeper{
		Store:  st,
		Sender: mail.FromEnv(logger),
		Logger: logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := sweeper.Sweep(ctx, today)
	if err != nil {
		return codeError(1, "reminder sweep: %s", err)
	}

	fmt.Fprintf(os.Stdout, "checked=%d sent=%d cleaned=%d as_of=%s\n",
		res.Checked, res.Sent, res.Cleaned, today.Format(claim.DateLayout))
	return nil
}
