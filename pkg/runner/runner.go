package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/adventofcode/pkg/cache"
	"github.com/matzehuels/adventofcode/pkg/errors"
	"github.com/matzehuels/adventofcode/pkg/observability"
	"github.com/matzehuels/adventofcode/pkg/puzzle"
	"github.com/matzehuels/adventofcode/pkg/puzzle/catalog"
)

// Request names one unit, its input, and the parts to answer.
type Request struct {
	Year  int
	Day   int
	Input []byte
	// Parts to answer. Empty means both.
	Parts []puzzle.Part
	// Refresh skips cache reads. Fresh answers are still written back.
	Refresh bool
}

// Answer is the outcome of one part.
type Answer struct {
	Part     puzzle.Part
	Value    int64
	Cached   bool
	Duration time.Duration
	Err      error
}

// Result is the outcome of one request.
type Result struct {
	Info    puzzle.Info
	RunID   string
	Answers []Answer
	// Err is set when the unit could not be run at all, e.g. unknown puzzle
	// or malformed input. Per-part failures are on the answers.
	Err error
}

// Failed reports whether the unit or any of its parts failed.
func (r *Result) Failed() bool {
	if r.Err != nil {
		return true
	}
	for _, a := range r.Answers {
		if a.Err != nil {
			return true
		}
	}
	return false
}

// cachedAnswer is the JSON stored for each answer key.
type cachedAnswer struct {
	Value    int64         `json:"value"`
	Duration time.Duration `json:"duration"`
}

// Runner solves puzzles with caching.
//
// The Runner holds no per-run state, so one Runner may serve many
// goroutines at once.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
	// TTL applies to written answers. Zero keeps them forever.
	TTL time.Duration
	// Find constructs a solver. It defaults to catalog.Find.
	Find func(year, day int) (puzzle.Solver, error)
}

// New creates a runner. A nil cache disables caching; a nil logger uses
// log.Default().
func New(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger, Find: catalog.Find}
}

// Run answers one request. The returned error is non-nil only when the unit
// could not be run or ctx was cancelled; it is also recorded on Result.Err.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	res := &Result{
		Info:  puzzle.Info{Year: req.Year, Day: req.Day},
		RunID: uuid.NewString(),
	}
	fail := func(err error) (*Result, error) {
		res.Err = err
		return res, err
	}

	parts := req.Parts
	if len(parts) == 0 {
		parts = puzzle.Parts
	}
	for _, p := range parts {
		if err := errors.ValidatePart(int(p)); err != nil {
			return fail(err)
		}
	}

	find := r.Find
	if find == nil {
		find = catalog.Find
	}
	s, err := find(req.Year, req.Day)
	if err != nil {
		return fail(err)
	}
	res.Info = s.Info()
	logger := r.Logger.With("run_id", res.RunID, "puzzle", res.Info.ID())

	decoded := false
	decode := func() error {
		if decoded {
			return nil
		}
		lines, err := puzzle.ReadLines(bytes.NewReader(req.Input))
		if err != nil {
			return err
		}
		start := time.Now()
		if err := s.SetInput(lines); err != nil {
			return err
		}
		decoded = true
		logger.Debug("decoded input", "lines", len(lines), "duration", time.Since(start))
		return nil
	}

	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}

		key := cache.AnswerKey(req.Year, req.Day, int(p), req.Input)
		if !req.Refresh {
			if a, ok := r.lookup(ctx, logger, key); ok {
				a.Part = p
				res.Answers = append(res.Answers, a)
				logger.Debug("answer", "part", int(p), "value", a.Value, "cached", true)
				continue
			}
		}

		if err := decode(); err != nil {
			return fail(err)
		}

		a := r.solve(ctx, s, p)
		res.Answers = append(res.Answers, a)
		if a.Err != nil {
			logger.Warn("part failed", "part", int(p), "err", a.Err)
			continue
		}
		logger.Debug("answer", "part", int(p), "value", a.Value, "duration", a.Duration)
		r.store(ctx, logger, key, a)
	}
	return res, nil
}

// RunAll answers many requests with at most concurrency units in flight.
// Results are returned in request order. Unit failures are recorded on each
// Result; the returned error is non-nil only when ctx was cancelled.
func (r *Runner) RunAll(ctx context.Context, reqs []Request, concurrency int) ([]*Result, error) {
	if concurrency < 1 {
		concurrency = 1
	}
	results := make([]*Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, req := range reqs {
		g.Go(func() error {
			res, err := r.Run(gctx, req)
			results[i] = res
			if err != nil && gctx.Err() != nil {
				return gctx.Err()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) solve(ctx context.Context, s puzzle.Solver, p puzzle.Part) Answer {
	id := s.Info().ID()
	observability.Solve().OnSolveStart(ctx, id, int(p))
	start := time.Now()
	v, err := puzzle.Solve(s, p)
	d := time.Since(start)
	observability.Solve().OnSolveComplete(ctx, id, int(p), d, err)
	return Answer{Part: p, Value: v, Duration: d, Err: err}
}

func (r *Runner) lookup(ctx context.Context, logger *log.Logger, key string) (Answer, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "err", errors.Wrap(errors.ErrCodeCache, err, "get %s", key))
		return Answer{}, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, key)
		return Answer{}, false
	}
	var c cachedAnswer
	if err := json.Unmarshal(data, &c); err != nil {
		observability.Cache().OnCacheMiss(ctx, key)
		_ = r.Cache.Delete(ctx, key)
		return Answer{}, false
	}
	observability.Cache().OnCacheHit(ctx, key)
	return Answer{Value: c.Value, Duration: c.Duration, Cached: true}, true
}

func (r *Runner) store(ctx context.Context, logger *log.Logger, key string, a Answer) {
	data, err := json.Marshal(cachedAnswer{Value: a.Value, Duration: a.Duration})
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		logger.Warn("cache write failed", "err", errors.Wrap(errors.ErrCodeCache, err, "set %s", key))
		return
	}
	observability.Cache().OnCacheSet(ctx, key, len(data))
}
