package treefill

import (
	"context"
	"time"

	"github.com/collidersim/treefill/pkg/treefill/event"
	"github.com/collidersim/treefill/pkg/treefill/observability"
	"github.com/collidersim/treefill/pkg/treefill/registry"
	"github.com/collidersim/treefill/pkg/treefill/sink"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// BranchSpec binds one input collection to one output branch of a given
// schema class. Specs usually come from configuration; see
// BranchesFromConfig.
type BranchSpec struct {
	// Input is the name of the candidate collection to read.
	Input string
	// Name is the output branch name.
	Name string
	// Class is the schema-type name; must match one of the known classes
	// (case-sensitive).
	Class string
}

// binding is one registered branch: spec, resolved converter, and the sink
// branch records are appended to.
type binding struct {
	spec   BranchSpec
	class  Class
	fn     converterFunc
	branch sink.Branch
}

// Writer converts events into flat records according to its branch registry.
// Build it once with NewWriter; the registry is immutable afterwards.
//
// ProcessEvent must not be called concurrently on one Writer.
type Writer struct {
	cfg      writerConfig
	runID    string
	bindings []binding

	// event is the ordinal of the pass currently running, starting at 1.
	event uint64

	// warnedMissing remembers collections already diagnosed as absent so
	// the log is not flooded once per event.
	warnedMissing map[string]bool
}

// NewWriter builds a writer from branch specs.
//
// Specs are processed in order. A spec naming an unknown class is diagnosed
// and dropped; the remaining specs are unaffected. A spec re-using an
// earlier branch name is diagnosed and overwrites the earlier binding,
// keeping its registration position. Creating the output branch on the
// store is the only operation that can fail construction.
func NewWriter(store sink.Store, specs []BranchSpec, opts ...Option) (*Writer, error) {
	if len(specs) == 0 {
		return nil, ErrNoBranches
	}

	cfg := defaultWriterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	runID := cfg.runID
	if runID == "" {
		runID = uuid.NewString()
	}

	classes := registry.New[Class, converterFunc]()
	for class, fn := range converterTable() {
		classes.Register(class, fn)
	}

	w := &Writer{
		cfg:           cfg,
		runID:         runID,
		warnedMissing: make(map[string]bool),
	}

	index := make(map[string]int)
	for _, spec := range specs {
		class, ok := ParseClass(spec.Class)
		if !ok {
			observability.LogUnknownClass(cfg.logger, spec.Name, spec.Class)
			continue
		}
		fn, _ := classes.Get(class)

		branch, err := store.NewBranch(spec.Name, spec.Class)
		if err != nil {
			return nil, &BranchError{Branch: spec.Name, Class: class, Err: err}
		}

		b := binding{spec: spec, class: class, fn: fn, branch: branch}
		if at, dup := index[spec.Name]; dup {
			observability.LogDuplicateBranch(cfg.logger, spec.Name)
			w.bindings[at] = b
			continue
		}
		index[spec.Name] = len(w.bindings)
		w.bindings = append(w.bindings, b)
	}

	return w, nil
}

// RunID returns the writer's run identifier.
func (w *Writer) RunID() string {
	return w.runID
}

// Branches returns the registered output branch names in registration order.
func (w *Writer) Branches() []string {
	names := make([]string, len(w.bindings))
	for i, b := range w.bindings {
		names[i] = b.spec.Name
	}
	return names
}

// ProcessEvent runs one conversion pass: every registered branch reads its
// input collection from ev and appends its records to the store.
//
// A missing input collection is a configuration problem: it is diagnosed
// once and the branch is skipped, the rest of the pass continues. A
// consistency violation or a store failure aborts the pass with an error;
// records already appended for this event remain in the store.
func (w *Writer) ProcessEvent(ctx context.Context, ev *event.Event) (err error) {
	w.event++

	start := time.Now()
	observability.LogEventStart(w.cfg.logger, w.runID, w.event)

	execCtx := ctx
	if w.cfg.tracing {
		spanCtx, span := w.cfg.spans.StartEventSpan(ctx, w.runID, w.event)
		execCtx = spanCtx
		defer func() { w.cfg.spans.EndSpanWithError(span, err) }()
	}

	var records int
	if w.cfg.parallel != 0 {
		records, err = w.processParallel(execCtx, ev)
	} else {
		records, err = w.processSequential(execCtx, ev)
	}

	duration := time.Since(start)
	w.cfg.metrics.RecordEvent(ctx, err == nil, duration)

	durationMs := float64(duration.Milliseconds())
	if err != nil {
		observability.LogEventError(w.cfg.logger, w.runID, w.event, err, durationMs)
	} else {
		observability.LogEventComplete(w.cfg.logger, w.runID, w.event, durationMs, records)
	}
	return err
}

// processSequential runs every binding in registration order.
func (w *Writer) processSequential(ctx context.Context, ev *event.Event) (int, error) {
	records := 0
	for i := range w.bindings {
		n, err := w.runBinding(ctx, &w.bindings[i], ev)
		records += n
		if err != nil {
			return records, err
		}
	}
	return records, nil
}

// processParallel runs branch groups concurrently. Bindings are grouped by
// input collection, preserving registration order inside each group, so a
// converter that sorts its collection in place cannot overlap another
// reader of the same collection.
func (w *Writer) processParallel(ctx context.Context, ev *event.Event) (int, error) {
	groups := make(map[string][]*binding)
	var order []string
	for i := range w.bindings {
		b := &w.bindings[i]
		if _, ok := groups[b.spec.Input]; !ok {
			order = append(order, b.spec.Input)
		}
		groups[b.spec.Input] = append(groups[b.spec.Input], b)
	}

	counts := make([]int, len(order))
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(w.cfg.parallel)

	for i, input := range order {
		bs := groups[input]
		g.Go(func() error {
			for _, b := range bs {
				n, err := w.runBinding(groupCtx, b, ev)
				counts[i] += n
				if err != nil {
					return err
				}
			}
			return nil
		})
	}

	err := g.Wait()
	records := 0
	for _, n := range counts {
		records += n
	}
	return records, err
}

// runBinding converts one branch and returns the number of records emitted.
func (w *Writer) runBinding(ctx context.Context, b *binding, ev *event.Event) (int, error) {
	refs, ok := ev.Collection(b.spec.Input)
	if !ok {
		if !w.warnedMissing[b.spec.Name] {
			w.warnedMissing[b.spec.Name] = true
			observability.LogMissingCollection(w.cfg.logger, b.spec.Name, b.spec.Input)
		}
		return 0, nil
	}

	start := time.Now()
	var endSpan func(error)
	if w.cfg.tracing {
		_, span := w.cfg.spans.StartBranchSpan(ctx, b.spec.Name, b.spec.Class)
		endSpan = func(convErr error) { w.cfg.spans.EndSpanWithError(span, convErr) }
	}

	records := 0
	emit := func(rec any) error {
		if err := b.branch.Append(w.event, rec); err != nil {
			return err
		}
		records++
		return nil
	}

	err := b.fn(w, ev, refs, emit)
	if err != nil {
		err = &BranchError{Branch: b.spec.Name, Class: b.class, Err: err}
	}

	if endSpan != nil {
		endSpan(err)
	}
	w.cfg.metrics.RecordBranch(ctx, b.spec.Name, b.spec.Class, time.Since(start), err)
	if records > 0 {
		w.cfg.metrics.RecordRecords(ctx, b.spec.Class, int64(records))
	}
	return records, err
}
