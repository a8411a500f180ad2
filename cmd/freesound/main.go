package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/freesound/internal/app"
	"github.com/five82/freesound/internal/config"
	"github.com/five82/freesound/pkg/freesound"
)

const (
	exitError = 1
	exitAuth  = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (default "+config.DefaultPath()+")")
	prefsPath := flag.String("prefs", "", "preferences file path (optional)")
	query := flag.String("query", "", "print one page of results for this query and exit")
	filter := flag.String("filter", "", "filter expression applied to -query and the browser")
	check := flag.Bool("check", false, "validate the API key and exit")
	sort := flag.String("sort", "", "result ordering, e.g. score, downloads_desc (optional)")
	pageSize := flag.Int("page-size", 0, "results per page, 1-150 (optional)")
	logLines := flag.Int("logs", 0, "print the last N log lines and exit")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Query:      *query,
		Filter:     *filter,
		Check:      *check,
		Sort:       *sort,
		PageSize:   *pageSize,
		LogLines:   *logLines,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "freesound: %v\n", err)
		var authErr *freesound.AuthError
		if errors.As(err, &authErr) {
			fmt.Fprintln(os.Stderr, "freesound: check api_key in your config or FREESOUND_API_KEY")
			return exitAuth
		}
		return exitError
	}
	return 0
}
