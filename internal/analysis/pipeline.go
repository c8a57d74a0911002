package analysis

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Toheedullah-K3/SentiScope/internal/domain"
	"github.com/Toheedullah-K3/SentiScope/internal/metrics"
	apperrors "github.com/Toheedullah-K3/SentiScope/internal/platform/errors"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const (
	// maxTextLength is the longest text, in characters, handed to a
	// strategy; anything longer is truncated and marked with an ellipsis.
	maxTextLength = 500
	// minTextLength is the shortest text, in characters, worth scoring;
	// anything shorter gets the neutral score without invoking the
	// strategy.
	minTextLength = 10

	neutralScore     = 0.5
	truncationMarker = "..."

	dateLayout = "2006-01-02"
)

// newsTimeLayouts are the timestamp shapes news sources have been seen to
// emit. Parsing falls back to the current UTC date when none match.
var newsTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Pipeline orchestrates one analysis request end to end. Connectors and
// strategies are resolved from lookup tables built at startup; the
// fallback strategy substitutes for single-item scoring failures.
type Pipeline struct {
	connectors map[domain.Platform]domain.SourceConnector
	strategies map[domain.Model]domain.ScoringStrategy
	fallback   domain.ScoringStrategy
	clock      clockwork.Clock
	workers    int
}

func NewPipeline(
	connectors map[domain.Platform]domain.SourceConnector,
	strategies map[domain.Model]domain.ScoringStrategy,
	fallback domain.ScoringStrategy,
	clock clockwork.Clock,
	workers int,
) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		connectors: connectors,
		strategies: strategies,
		fallback:   fallback,
		clock:      clock,
		workers:    workers,
	}
}

// Analyze runs the pipeline for one query. It returns an error only for
// invalid input or an internal fault; an unreachable source or failing
// strategy degrades the result instead of failing the request.
func (p *Pipeline) Analyze(ctx context.Context, q domain.Query) (*domain.AggregateResult, error) {
	if err := p.validate(q); err != nil {
		metrics.AnalysisRequestsTotal.WithLabelValues(platformLabel(q.Platform), modelLabel(q.Model), "invalid").Inc()
		return nil, err
	}
	strat := p.strategies[q.Model]

	log := slog.With(
		"run_id", uuid.NewString(),
		"platform", q.Platform,
		"model", q.Model,
		"search", q.Search,
	)
	start := p.clock.Now()

	items := p.fetch(ctx, log, q)
	metrics.ItemsFetchedTotal.WithLabelValues(string(q.Platform)).Add(float64(len(items)))

	scored := p.scoreAll(ctx, log, q, strat, items)

	var sum float64
	for _, s := range scored {
		sum += s.Score
	}
	average := 0.0
	if len(scored) > 0 {
		average = round2(sum / float64(len(scored)))
	}

	elapsed := p.clock.Since(start)
	metrics.AnalysisDuration.WithLabelValues(string(q.Platform), string(q.Model)).Observe(elapsed.Seconds())
	metrics.AnalysisRequestsTotal.WithLabelValues(string(q.Platform), string(q.Model), "ok").Inc()
	log.InfoContext(ctx, "analysis_completed",
		"total_items", len(scored),
		"average_score", average,
		"elapsed", elapsed,
	)

	return &domain.AggregateResult{
		Query:        q,
		TotalItems:   len(scored),
		AverageScore: average,
		Items:        scored,
	}, nil
}

func (p *Pipeline) validate(q domain.Query) error {
	if strings.TrimSpace(q.Search) == "" {
		return apperrors.ValidationError("Missing required fields")
	}
	if _, err := domain.ParsePlatform(string(q.Platform)); err != nil {
		return apperrors.ValidationError("Invalid platform").WithField("platform", string(q.Platform))
	}
	if _, err := domain.ParseModel(string(q.Model)); err != nil {
		return apperrors.ValidationError("Invalid sentiment analysis model").WithField("model", string(q.Model))
	}
	if _, ok := p.strategies[q.Model]; !ok {
		return apperrors.InternalError("no strategy registered for model", nil).WithField("model", string(q.Model))
	}
	return nil
}

// fetch resolves and invokes the connector for the query's platform. Any
// failure is absorbed: a recognized platform with no wired connector
// (twitter) and an unreachable source both yield zero items.
func (p *Pipeline) fetch(ctx context.Context, log *slog.Logger, q domain.Query) []domain.RawItem {
	conn, ok := p.connectors[q.Platform]
	if !ok {
		log.InfoContext(ctx, "source_not_wired")
		return nil
	}

	items, err := conn.Fetch(ctx, q.Search, 0)
	if err != nil {
		metrics.SourceFailuresTotal.WithLabelValues(string(q.Platform)).Inc()
		log.WarnContext(ctx, "source_unavailable", "error", err)
		return nil
	}
	return items
}

// scoreAll scores every item on a bounded worker pool. Workers write
// results by index, so the returned slice preserves fetch order no matter
// how scoring interleaves.
func (p *Pipeline) scoreAll(ctx context.Context, log *slog.Logger, q domain.Query, strat domain.ScoringStrategy, items []domain.RawItem) []domain.ScoredItem {
	if len(items) == 0 {
		return nil
	}

	scored := make([]domain.ScoredItem, len(items))
	workers := p.workers
	if workers > len(items) {
		workers = len(items)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				scored[i] = p.scoreItem(ctx, log, q, strat, i, items[i])
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return scored
}

func (p *Pipeline) scoreItem(ctx context.Context, log *slog.Logger, q domain.Query, strat domain.ScoringStrategy, index int, item domain.RawItem) domain.ScoredItem {
	date := p.deriveDate(q.Platform, item.PublishedAt)

	// Both length rules count characters, not bytes, so multi-byte text
	// is neither over-truncated nor cut mid-rune.
	text := strings.TrimSpace(item.Text)
	runes := []rune(text)
	if len(runes) > maxTextLength {
		text = string(runes[:maxTextLength]) + truncationMarker
	}

	score := neutralScore
	if len(runes) >= minTextLength {
		var err error
		score, err = strat.Score(ctx, text)
		if err != nil {
			metrics.ScoringFallbacksTotal.WithLabelValues(string(q.Model)).Inc()
			log.WarnContext(ctx, "scoring_fallback",
				"item_index", index,
				"fallback", p.fallback.Name(),
				"error", err,
			)
			score, err = p.fallback.Score(ctx, text)
			if err != nil {
				log.ErrorContext(ctx, "fallback_scoring_failed", "item_index", index, "error", err)
				score = neutralScore
			}
		}
	}

	return domain.ScoredItem{
		Text:  item.Text,
		Date:  date,
		Score: round2(score),
	}
}

// deriveDate converts a connector's native timestamp into a UTC calendar
// date: reddit emits epoch seconds, gnews a timestamp string that falls
// back to "today" when unparsable, and other platforms carry no date.
func (p *Pipeline) deriveDate(platform domain.Platform, publishedAt string) *string {
	switch platform {
	case domain.PlatformReddit:
		sec, err := strconv.ParseInt(publishedAt, 10, 64)
		if err != nil {
			return nil
		}
		d := time.Unix(sec, 0).UTC().Format(dateLayout)
		return &d
	case domain.PlatformGNews:
		for _, layout := range newsTimeLayouts {
			if t, err := time.Parse(layout, publishedAt); err == nil {
				d := t.UTC().Format(dateLayout)
				return &d
			}
		}
		d := p.clock.Now().UTC().Format(dateLayout)
		return &d
	default:
		return nil
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// platformLabel and modelLabel keep prometheus label values bounded:
// only canonical enum values pass through, anything else collapses to
// a fixed placeholder.
func platformLabel(p domain.Platform) string {
	if _, err := domain.ParsePlatform(string(p)); err != nil {
		return "unknown"
	}
	return string(p)
}

func modelLabel(m domain.Model) string {
	if _, err := domain.ParseModel(string(m)); err != nil {
		return "unknown"
	}
	return string(m)
}
