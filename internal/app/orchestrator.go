package app

import (
	"context"
	"errors"

	"confreview-parser/internal/browser"
	"confreview-parser/internal/config"
	"confreview-parser/internal/extract"
	"confreview-parser/internal/observability"
)

// Orchestrator wires one run: open session, log in, extract, tear down.
type Orchestrator struct {
	cfg      *config.Config
	profiles *config.ProfileSet
	logger   *observability.Logger
	metrics  *observability.Metrics
}

func NewOrchestrator(
	cfg *config.Config,
	profiles *config.ProfileSet,
	logger *observability.Logger,
	metrics *observability.Metrics,
) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		profiles: profiles,
		logger:   logger,
		metrics:  metrics,
	}
}

// RunOptions are the per-invocation switches from the CLI.
type RunOptions struct {
	Headless    bool
	SkipReviews bool
}

// Run executes one extraction run to completion or failure. The browser
// session is released on every exit path.
func (o *Orchestrator) Run(ctx context.Context, confName string, creds config.Credentials, opts RunOptions) (*extract.ResultSet, error) {
	profile, err := o.profiles.Get(confName)
	if err != nil {
		return nil, err
	}

	o.logger.Info("Starting run",
		"conference", profile.Name,
		"console_url", profile.ConsoleURL,
		"skip_reviews", opts.SkipReviews,
		"headless", opts.Headless,
	)

	session, err := browser.Open(ctx, browser.Options{
		ChromePath: o.cfg.Browser.ChromePath,
		Headless:   opts.Headless,
		NavTimeout: o.cfg.GetNavTimeout(),
	}, o.logger)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	err = session.Login(ctx, profile.ConsoleURL, creds, o.profiles.Login, profile.Listing.Row, o.cfg.GetLoginTimeout())
	if err != nil {
		var authErr *browser.AuthError
		if errors.As(err, &authErr) {
			o.metrics.AuthFailures.Inc()
		}
		o.logger.Error("Login failed",
			"conference", profile.Name,
			"error", err.Error(),
		)
		return nil, err
	}

	engine := extract.NewEngine(o.logger, o.metrics)
	rs, err := engine.ExtractAll(ctx, session, profile, extract.Options{
		SkipReviews:   opts.SkipReviews,
		ListTimeout:   o.cfg.GetListTimeout(),
		RatingTimeout: o.cfg.GetRatingTimeout(),
	})
	if err != nil {
		o.logger.Error("Extraction failed",
			"conference", profile.Name,
			"error", err.Error(),
		)
		return nil, err
	}

	stats := rs.Stats()
	o.logger.Info("Run completed",
		"conference", profile.Name,
		"submissions", rs.Len(),
		"rows_skipped", stats.RowsSkipped,
		"ratings_absent", stats.RatingsAbsent,
		"duplicates", stats.Duplicates,
		"elapsed", stats.Elapsed.String(),
		"fingerprint", rs.Fingerprint(),
	)

	return rs, nil
}
