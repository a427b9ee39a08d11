package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"tripchat/client"
	"tripchat/config"
	"tripchat/favorites"
)

// Context carries what every command needs.
type Context struct {
	Ctx       context.Context
	Client    *client.Client
	Favorites favorites.Store
	Now       func() time.Time
	Out       io.Writer
}

var CLI struct {
	Version kong.VersionFlag
	Server  string        `help:"Flight search API base URL (defaults to FLIGHT_SEARCH_URL)."`
	Timeout time.Duration `help:"Flight search timeout (defaults to FLIGHT_SEARCH_TIMEOUT)."`

	Plan         PlanCmd         `cmd:"" help:"Fill in a trip interactively and search flights." default:"1"`
	Search       SearchCmd       `cmd:"" help:"Search flights without prompts."`
	Pick         PickCmd         `cmd:"" help:"Pick a date range and print it."`
	Destinations DestinationsCmd `cmd:"" help:"List destinations, or show one destination's details."`
	Favorite     FavoriteCmd     `cmd:"" help:"Toggle a destination in the favorites list."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("tripchat"),
		kong.Description("Chat-style trip planner with flight search"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	server := cfg.FlightSearch.URL
	if CLI.Server != "" {
		server = CLI.Server
	}
	timeout := cfg.FlightSearch.Timeout
	if CLI.Timeout > 0 {
		timeout = CLI.Timeout
	}

	ctx := context.Background()
	appCtx := &Context{
		Ctx:       ctx,
		Client:    client.New(server, client.WithTimeout(timeout)),
		Favorites: favorites.Open(ctx, cfg.Favorites, cfg.Redis),
		Now:       time.Now,
		Out:       os.Stdout,
	}

	if err := kctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
