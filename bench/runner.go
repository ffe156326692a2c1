package bench

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-flat/errors"
	"github.com/amp-labs/amp-flat/logger"
	"github.com/amp-labs/amp-flat/sequence"
	"github.com/zeebo/xxh3"
	"go.uber.org/atomic"
)

// Result is the outcome of one workload.
type Result struct {
	Workload    Workload      `json:"workload"`
	Inserted    int           `json:"inserted"`
	Rejected    int           `json:"rejected"`
	EraseCalls  int           `json:"eraseCalls"`
	Erased      int           `json:"erased"`
	Lookups     int           `json:"lookups"`
	Hits        int           `json:"hits"`
	Spills      int           `json:"spills"`
	FinalLen    int           `json:"finalLen"`
	Fingerprint uint64        `json:"fingerprint"`
	Elapsed     time.Duration `json:"elapsed"`
	Err         string        `json:"error,omitempty"`
}

// Totals are the running sums over every workload a Runner has completed.
type Totals struct {
	Workloads int64
	Ops       int64
	Failures  int64
}

// Runner executes workloads concurrently. Each workload builds and owns its
// container, so no container is ever touched by two goroutines.
type Runner struct {
	workers int
	metrics *Metrics
	logger  *slog.Logger

	workloads atomic.Int64
	ops       atomic.Int64
	failures  atomic.Int64
}

// NewRunner creates a runner with the given concurrency. metrics and log may be nil.
func NewRunner(workers int, metrics *Metrics, log *slog.Logger) *Runner {
	if log == nil {
		log = logger.Get()
	}

	return &Runner{
		workers: max(workers, 1),
		metrics: metrics,
		logger:  log,
	}
}

// Totals returns a snapshot of the running totals.
func (r *Runner) Totals() Totals {
	return Totals{
		Workloads: r.workloads.Load(),
		Ops:       r.ops.Load(),
		Failures:  r.failures.Load(),
	}
}

// Run executes every workload and returns their results in input order.
// Failed workloads carry their error in Result.Err; the returned error joins
// all of them. Workloads that start after ctx is done fail with its error.
func (r *Runner) Run(ctx context.Context, workloads []Workload) ([]Result, error) {
	pool := pond.NewPool(r.workers)
	defer pool.StopAndWait()

	results := make([]Result, len(workloads))
	failures := make([]error, len(workloads))
	tasks := make([]pond.Task, len(workloads))

	for i, w := range workloads {
		tasks[i] = pool.Submit(func() {
			results[i], failures[i] = r.runOne(ctx, w)
		})
	}

	var errs errors.Collection

	for i, task := range tasks {
		if err := task.Wait(); err != nil {
			results[i] = Result{Workload: workloads[i], Err: err.Error()}
			failures[i] = err
			r.failures.Inc()
		}

		if failures[i] != nil {
			errs.Add(fmt.Errorf("workload %q: %w", results[i].Workload.Name, failures[i]))
		}
	}

	return results, errs.GetError()
}

func (r *Runner) runOne(ctx context.Context, w Workload) (Result, error) {
	w = w.WithDefaults()
	log := r.logger.With("workload", w.Name, "container", w.Container, "storage", w.Storage)

	res, err := r.execute(ctx, w)
	if err != nil {
		err = logger.AnnotateError(err, "workload", w.Name, "keys", w.Keys)
		log.Error("workload failed", "error", err)

		r.failures.Inc()

		return Result{Workload: w, Err: err.Error()}, err
	}

	r.workloads.Inc()
	r.ops.Add(int64(w.Ops))
	r.metrics.observe(w, res, res.Elapsed)

	log.Debug("workload finished",
		"elapsed", res.Elapsed, "len", res.FinalLen, "fingerprint", fmt.Sprintf("%016x", res.Fingerprint))

	return res, nil
}

func (r *Runner) execute(ctx context.Context, w Workload) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if err := w.Validate(); err != nil {
		return Result{}, err
	}

	switch w.Keys {
	case KeysUUID:
		keys, err := uuidKeys(w)
		if err != nil {
			return Result{}, err
		}

		return drive(ctx, w, keys)
	case KeysNatural:
		return drive(ctx, w, naturalKeys(w))
	case KeysCollated:
		keys, err := collatedKeys(w)
		if err != nil {
			return Result{}, err
		}

		return drive(ctx, w, keys)
	default:
		return drive(ctx, w, intKeys(w))
	}
}

var smallInlineCap = (&sequence.Small16[struct{}]{}).InlineCap() //nolint:gochecknoglobals

const cancelCheckEvery = 1024

// drive runs the operation mix of w against a fresh container. The random
// stream depends only on the workload, never on the storage, so strategies
// can be compared by fingerprint.
func drive[K any](ctx context.Context, w Workload, keys keySet[K]) (Result, error) {
	res := Result{Workload: w}
	rng := rand.New(rand.NewChaCha8(seedBytes(w.Seed, 'o'))) //nolint:gosec // reproducible test data
	container := newTarget(w.Container, w.Storage, keys.less)
	start := time.Now()

	for op := range w.Ops {
		if op%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}

		k := keys.keys[rng.IntN(len(keys.keys))]

		switch roll := rng.Float64(); {
		case roll < w.EraseRatio:
			res.EraseCalls++
			res.Erased += container.Erase(k)
		case roll < w.EraseRatio+(1-w.EraseRatio)/4:
			res.Lookups++

			if container.Contains(k) {
				res.Hits++
			}
		default:
			before := container.Cap()

			if container.put(pickHint(w.Hint, rng, container, k), k, uint64(op)) { //nolint:gosec // op >= 0
				res.Inserted++
			} else {
				res.Rejected++
			}

			if w.Storage == StorageSmall && before <= smallInlineCap && container.Cap() > smallInlineCap {
				res.Spills++
			}
		}
	}

	res.Elapsed = time.Since(start)
	res.FinalLen = container.Len()

	if err := container.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidContainer, err)
	}

	h := xxh3.New()
	container.each(func(k K, v uint64) {
		keys.write(h, k)
		_, _ = h.Write(binary.LittleEndian.AppendUint64(nil, v))
	})

	res.Fingerprint = h.Sum64()

	return res, nil
}

// pickHint returns the hint for the next insertion, or -1 for none. The random
// mode always draws from rng so that the operation stream stays aligned.
func pickHint[K any](mode HintMode, rng *rand.Rand, container target[K], k K) int {
	switch mode {
	case HintExact:
		return container.slot(k)
	case HintEnd:
		return container.Len()
	case HintRandom:
		return rng.IntN(container.Len() + 1)
	default:
		return -1
	}
}

// CrossCheck compares results whose workloads differ only by storage (and
// name). They must have identical fingerprints and lengths; every
// disagreement is reported.
func CrossCheck(results []Result) error {
	var errs errors.Collection

	first := make(map[string]Result)

	for _, res := range results {
		if res.Err != "" {
			continue
		}

		id := res.Workload.identity()

		ref, seen := first[id]
		if !seen {
			first[id] = res

			continue
		}

		if ref.Fingerprint != res.Fingerprint || ref.FinalLen != res.FinalLen {
			errs.Add(fmt.Errorf("%w: %q (%s) has %016x/%d, %q (%s) has %016x/%d",
				ErrFingerprintMismatch,
				ref.Workload.Name, ref.Workload.Storage, ref.Fingerprint, ref.FinalLen,
				res.Workload.Name, res.Workload.Storage, res.Fingerprint, res.FinalLen))
		}
	}

	return errs.GetError()
}
