package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/five82/freesound/internal/config"
	"github.com/five82/freesound/internal/logging"
	"github.com/five82/freesound/internal/logtail"
	"github.com/five82/freesound/internal/prefs"
	"github.com/five82/freesound/internal/ui"
	"github.com/five82/freesound/pkg/freesound"
)

const (
	requestTimeout = 30 * time.Second
	probeTimeout   = 10 * time.Second
	maxPageSize    = 150
)

// DisplayFields are the sound fields requested for list views.
var DisplayFields = []string{
	"id", "name", "username", "tags", "created", "license", "type",
	"channels", "filesize", "bitrate", "bitdepth", "duration", "samplerate",
	"num_downloads", "avg_rating", "num_ratings", "pack", "previews",
}

// Options configure a run.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/freesound/prefs.toml
	Query      string // non-empty prints one page of results instead of starting the UI
	Filter     string
	Check      bool   // only validate the API key
	LogLines   int    // print the last LogLines log lines and exit
	Sort       string // overrides the stored sort preference
	PageSize   int    // overrides the stored page size; zero keeps it
	Stdout     io.Writer
}

// Run loads configuration, validates the API key and then either prints
// results or starts the search browser.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	if opts.LogLines > 0 {
		lines, err := logtail.Tail(cfg.LogFile, opts.LogLines)
		if err != nil {
			return err
		}
		return logtail.Print(stdout, lines)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	if err := applyOverrides(&userPrefs, opts); err != nil {
		return err
	}

	logFile, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logFile.Close() }()
	logger := logging.New(logFile, logging.Config{Level: cfg.LogLevel, ServiceName: "freesound"})
	ctx = logging.WithLogger(ctx, logger)

	client, err := freesound.NewClient(cfg.APIKey,
		freesound.WithBaseURL(cfg.BaseURL),
		freesound.WithHTTPClient(logging.NewHTTPClient(logger, requestTimeout)),
	)
	if err != nil {
		return fmt.Errorf("init freesound client: %w", err)
	}

	if err := ensureKeyValid(ctx, client); err != nil {
		return err
	}
	logger.Info().Str("base_url", client.BaseURL()).Msg("api key accepted")

	if opts.Check {
		_, err := fmt.Fprintln(stdout, "API key is valid")
		return err
	}

	base := BuildQuery(userPrefs)
	if filter := strings.TrimSpace(opts.Filter); filter != "" {
		base.Filter(filter)
	}

	if text := strings.TrimSpace(opts.Query); text != "" {
		return printSearch(ctx, stdout, client, base.Clone().Query(text))
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Client:    client,
		BaseQuery: base,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
	})
}

// BuildQuery returns the search template used by every search: page size,
// sort order and the fields shown in list views.
func BuildQuery(p prefs.Prefs) *freesound.SearchQuery {
	q := freesound.NewSearchQuery().
		Sort(p.SortOption()).
		Fields(DisplayFields...)
	if p.PageSize > 0 {
		q.PageSize(p.PageSize)
	}
	return q
}

func applyOverrides(p *prefs.Prefs, opts Options) error {
	if sort := strings.TrimSpace(opts.Sort); sort != "" {
		opt, err := freesound.ParseSortOption(sort)
		if err != nil {
			return err
		}
		p.Sort = opt.String()
	}
	if opts.PageSize != 0 {
		if opts.PageSize < 0 || opts.PageSize > maxPageSize {
			return fmt.Errorf("page size %d out of range (1-%d)", opts.PageSize, maxPageSize)
		}
		p.PageSize = opts.PageSize
	}
	return nil
}

// ensureKeyValid runs the credential probe before anything else so a bad key
// fails fast with an *freesound.AuthError in the chain.
func ensureKeyValid(ctx context.Context, client freesound.Searcher) error {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := client.ValidateKey(probeCtx); err != nil {
		logger := logging.Ctx(ctx)
		logger.Error().Err(err).Msg("api key check failed")
		return fmt.Errorf("validate api key: %w", err)
	}
	return nil
}

func printSearch(ctx context.Context, w io.Writer, client freesound.Searcher, query *freesound.SearchQuery) error {
	logger := logging.Ctx(ctx)
	resp, err := client.Search(ctx, query)
	if err != nil {
		logger.Warn().Err(err).Msg("search failed")
		return fmt.Errorf("search: %w", err)
	}
	logger.Info().Int(logging.FieldCount, resp.Count).Msg("search completed")
	return PrintResults(w, resp)
}

// PrintResults writes a plain-text listing of one results page.
func PrintResults(w io.Writer, resp freesound.SearchResponse) error {
	if _, err := fmt.Fprintf(w, "%d results\n", resp.Count); err != nil {
		return err
	}
	for _, s := range resp.Results {
		_, err := fmt.Fprintf(w, "%9d  %-40s  %7s  %9s  %s\n",
			s.ID,
			ui.Truncate(s.Name, 40),
			ui.FormatDuration(s.Duration),
			ui.FormatSize(s.Filesize),
			s.Username,
		)
		if err != nil {
			return err
		}
	}
	if resp.HasNext() {
		if _, err := fmt.Fprintln(w, "more results available"); err != nil {
			return err
		}
	}
	return nil
}
