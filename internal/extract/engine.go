package extract

import (
	"context"
	"time"

	"confreview-parser/internal/observability"
)

// PageDriver is what the engine needs from the browser session: serial
// navigation, bounded element waits and rendered-DOM snapshots. Tests
// substitute an in-memory implementation.
type PageDriver interface {
	Navigate(ctx context.Context, rawURL string) error
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error
	HTML() (string, error)
}

// Options control one extraction run.
type Options struct {
	// SkipReviews omits all rating extraction; no forum page is visited.
	SkipReviews   bool
	ListTimeout   time.Duration
	RatingTimeout time.Duration
}

// Engine walks the authenticated session through the console listing
// and each submission's forum page, converting rendered DOM into
// SubmissionRecords.
type Engine struct {
	logger  *observability.Logger
	metrics *observability.Metrics
}

func NewEngine(logger *observability.Logger, metrics *observability.Metrics) *Engine {
	return &Engine{
		logger:  logger,
		metrics: metrics,
	}
}

// ExtractAll produces the ordered ResultSet for one conference. Rows
// are emitted in portal order. A malformed row is skipped and counted,
// never fatal; a missing submission list is always fatal.
func (e *Engine) ExtractAll(ctx context.Context, drv PageDriver, profile *Profile, opts Options) (*ResultSet, error) {
	start := time.Now()

	if err := drv.Navigate(ctx, profile.ConsoleURL); err != nil {
		return nil, err
	}
	e.metrics.Navigations.Inc()

	if err := drv.WaitVisible(ctx, profile.Listing.Row, opts.ListTimeout); err != nil {
		return nil, &ListNotFoundError{Conference: profile.Name, Selector: profile.Listing.Row, Err: err}
	}

	html, err := drv.HTML()
	if err != nil {
		return nil, err
	}

	rows, err := ParseListing(html, profile.Listing, profile.ConsoleURL)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &ListNotFoundError{Conference: profile.Name, Selector: profile.Listing.Row}
	}

	e.logger.Info("Submission list located",
		"conference", profile.Name,
		"rows", len(rows),
	)

	stats := RunStats{
		Conference: profile.Name,
		RowsFound:  len(rows),
	}

	records := make([]SubmissionRecord, 0, len(rows))
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if row.Title == "" || row.ForumURL == "" {
			stats.RowsSkipped++
			e.metrics.RowsSkipped.Inc()
			e.logger.Warn("Skipping malformed row",
				"conference", profile.Name,
				"row", i+1,
				"title", row.Title,
				"forum_url", row.ForumURL,
			)
			continue
		}

		record := SubmissionRecord{
			ID:       row.ID,
			Title:    row.Title,
			ForumURL: row.ForumURL,
		}

		if !opts.SkipReviews && profile.HasReviews {
			if err := e.extractRatings(ctx, drv, profile, opts, row, &record, &stats); err != nil {
				return nil, err
			}
		}

		records = append(records, record)
		e.metrics.RowsExtracted.Inc()

		e.logger.Info("Submission extracted",
			"conference", profile.Name,
			"row", i+1,
			"id", record.ID,
			"title", record.Title,
			"ratings", len(record.Ratings),
		)
	}

	stats.Elapsed = time.Since(start)

	return Assemble(records, stats, e.logger), nil
}

// extractRatings visits the row's forum page and collects whatever
// scores have rendered. A forum that never shows replies within the
// budget means the ratings are simply not in yet; only context
// cancellation aborts the run from here.
func (e *Engine) extractRatings(ctx context.Context, drv PageDriver, profile *Profile, opts Options, row RowInfo, record *SubmissionRecord, stats *RunStats) error {
	if err := drv.Navigate(ctx, row.ForumURL); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		stats.RatingsAbsent++
		e.metrics.RatingsAbsent.Inc()
		e.logger.Warn("Forum page unreachable, recording ratings as absent",
			"conference", profile.Name,
			"id", row.ID,
			"forum_url", row.ForumURL,
			"error", err.Error(),
		)
		return nil
	}
	e.metrics.Navigations.Inc()

	if err := drv.WaitVisible(ctx, profile.Forum.Reply, opts.RatingTimeout); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		stats.RatingsAbsent++
		e.metrics.RatingsAbsent.Inc()
		e.logger.Debug("No replies rendered within budget",
			"conference", profile.Name,
			"id", row.ID,
		)
		return nil
	}

	html, err := drv.HTML()
	if err != nil {
		return err
	}

	info, err := ParseForum(html, profile.Forum)
	if err != nil {
		return err
	}

	if record.ID == "" {
		record.ID = info.Number
	}
	record.Ratings = info.Ratings
	record.Confidences = info.Confidences

	for _, r := range record.Ratings {
		if !r.Valid {
			stats.RatingsAbsent++
			e.metrics.RatingsAbsent.Inc()
		}
	}

	return nil
}
