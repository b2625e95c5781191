// Package main is the tripctl command: local maintenance of the trip planner
// store (listing, selecting the current trip, export and legacy migration)
// without going through the HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alvesgeorge/PlanerTrip/internal/config"
	"github.com/alvesgeorge/PlanerTrip/internal/kv"
	"github.com/alvesgeorge/PlanerTrip/internal/repo"
)

// opener returns the repository a command runs against.
type opener func(ctx context.Context) (*repo.Repository, error)

// cli carries the repository opened for the running command.
type cli struct {
	open opener
	repo *repo.Repository
}

func main() {
	if err := execute(context.Background(), openFromEnv, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs the command tree for args and closes the store the command
// opened, whether or not the command succeeded.
func execute(ctx context.Context, open opener, args []string, stdout, stderr io.Writer) error {
	c := &cli{open: open}
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if cerr := c.close(); cerr != nil {
		fmt.Fprintln(stderr, "Error: closing store:", cerr)
		err = errors.Join(err, cerr)
	}
	return err
}

// close releases the repository opened by PersistentPreRunE, if any.
func (c *cli) close() error {
	if c.repo == nil {
		return nil
	}
	r := c.repo
	c.repo = nil
	return r.Close()
}

// openFromEnv opens the store configured by the same environment as the API server.
// Logs go to stderr so command output stays pipeable.
func openFromEnv(ctx context.Context) (*repo.Repository, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	store, err := kv.Open(ctx, cfg.StoreDriver, cfg.StoreSource())
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.StoreDriver, err)
	}
	return repo.New(store, repo.WithLogger(logger)), nil
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tripctl",
		Short:         "Inspect and maintain the trip planner store",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			r, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			c.repo = r
			return nil
		},
	}
	root.AddCommand(
		c.tripsCmd(),
		c.eventsCmd(),
		c.exportCmd(),
		c.migrateCmd(),
		c.clearCmd(),
	)
	return root
}
