package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/podium/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override podium config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	envFile := flag.String("env", "", "load environment from this file (defaults to .env)")
	pollSeconds := flag.Int("poll", 0, "global leaderboard refresh interval in seconds (optional, defaults to 30s)")
	game := flag.String("game", "", "game name used for elementary scores (optional)")
	html := flag.String("html", "", "render the widget as HTML to stdout instead of starting the TUI (selector, dynamic or elementary)")
	retries := flag.Int("retries", 3, "fetch attempts before -html renders the error state")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		EnvFile:    *envFile,
		Game:       *game,
	}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = poll
	}

	var err error
	if isFlagSet("html") {
		err = app.Export(ctx, app.ExportOptions{Options: opts, Mode: *html, Retries: *retries}, os.Stdout)
	} else {
		err = app.Run(ctx, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "podium: %v\n", err)
		return 1
	}
	return 0
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
