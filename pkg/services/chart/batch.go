package chart

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds one batch generation run. A stalled render degrades
// to a missing key instead of blocking the report forever.
const DefaultTimeout = 30 * time.Second

// Result is the outcome of one batch run. Images holds every series that
// finished in time, keyed by series key; Missing lists the keys that did
// not, so callers can render an explicit "chart unavailable" placeholder.
type Result struct {
	Images  map[string][]byte
	Missing []string
}

// Complete reports whether every requested series produced an image.
func (r Result) Complete() bool {
	return len(r.Missing) == 0
}

// Batch renders many series concurrently and joins the results.
type Batch struct {
	generator *Generator
	timeout   time.Duration
}

// NewBatch creates a Batch around the given generator. A non-positive
// timeout falls back to DefaultTimeout.
func NewBatch(generator *Generator, timeout time.Duration) *Batch {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Batch{generator: generator, timeout: timeout}
}

type renderOutcome struct {
	key string
	png []byte
	err error
}

// GenerateAll renders every series and returns once all are done or the
// timeout elapses. Zero series resolves immediately with a complete, empty
// result. Completion order between series is arbitrary; the result map is
// keyed, so ordering carries no meaning.
func (b *Batch) GenerateAll(ctx context.Context, series []Series, cfg Config) Result {
	result := Result{Images: make(map[string][]byte, len(series))}
	if len(series) == 0 {
		return result
	}

	logger := zerolog.Ctx(ctx)
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	outcomes := make(chan renderOutcome, len(series))
	for _, s := range series {
		go func(s Series) {
			png, err := b.generator.Render(s, cfg)
			outcomes <- renderOutcome{key: s.Key, png: png, err: err}
		}(s)
	}

	pending := make(map[string]struct{}, len(series))
	for _, s := range series {
		pending[s.Key] = struct{}{}
	}

	for len(pending) > 0 {
		select {
		case out := <-outcomes:
			delete(pending, out.key)
			if out.err != nil {
				logger.Warn().Err(out.err).Str("series", out.key).Msg("chart render failed")
				result.Missing = append(result.Missing, out.key)
				continue
			}
			result.Images[out.key] = out.png
		case <-ctx.Done():
			for key := range pending {
				logger.Warn().Str("series", key).Msg("chart render timed out")
				result.Missing = append(result.Missing, key)
			}
			sort.Strings(result.Missing)
			return result
		}
	}

	sort.Strings(result.Missing)
	return result
}
