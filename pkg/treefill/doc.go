/*
Package treefill converts reconstructed collider-event candidates into flat,
strongly-typed analysis records and hands them to a pluggable record store.

# Overview

Upstream reconstruction fills an event.Event with candidates grouped into
named collections. A Writer, built once from branch configuration, runs one
conversion pass per event: each configured branch binds an input collection
to one of thirteen output schemas (Particle, Vertex, Track, Tower, Photon,
Electron, Muon, Jet, MissingET, ScalarHT, Rho, Weight, HectorHit), and the
bound converter derives kinematics, flattens nested constituents down to
leaves, and appends one record per candidate (or one per event for the
singleton schemas) to its output branch.

The engine holds no cross-event state beyond the immutable branch registry,
so output is deterministic: fixed input and configuration always produce
bit-identical records.

# Basic Usage

	store := sink.NewMemoryStore()
	writer, err := treefill.NewWriter(store, []treefill.BranchSpec{
	    {Input: "uniqueObjectFinder/jets", Name: "Jet", Class: "Jet"},
	    {Input: "missingET/momentum", Name: "MissingET", Class: "MissingET"},
	})
	if err != nil {
	    log.Fatal(err)
	}

	for producer.Next() {
	    ev := producer.Event()
	    if err := writer.ProcessEvent(context.Background(), ev); err != nil {
	        log.Fatal(err)
	    }
	}

# Configuration

Branch triples can come from YAML or JSON via the config package, either as
a flat repeated list (inputArray, branchName, className, ...) or as a list
of {input, name, class} entries:

	cfg, _ := config.FromFile("writer.yaml")
	specs, err := treefill.BranchesFromConfig(cfg, "branches")

A triple naming an unknown class is diagnosed and dropped; the remaining
triples are unaffected. A triple re-using a branch name overwrites the
earlier binding and is diagnosed.

# Sorting

The Photon, Electron, Muon, and Jet converters order their input by
descending transverse momentum (stable) before converting. By default the
ordering is a private view and the shared input collection is left
untouched; WithInPlaceSort(true) restores the legacy behavior of reordering
the collection itself, which every later reader of that collection observes.

# Validation

Track records carry both explicit impact parameters and the fitted
5-parameter track vector; CheckTrack reports any disagreement between the
two beyond tolerance. The writer runs the check on every track and, unless
strict validation is disabled, fails the event conversion on a non-empty
report: a discrepancy is a logic error in the producer or in the field
mapping, not a data-quality condition.

# Observability

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	writer, err := treefill.NewWriter(store, specs,
	    treefill.WithLogger(logger),
	    treefill.WithMetrics(observability.NewMetricsRecorder()),
	    treefill.WithTracing(observability.NewSpanManager()))

Logs include structured fields: run_id, event, branch, duration_ms.
OpenTelemetry metrics: treefill.events, treefill.branch.conversions, etc.
OpenTelemetry tracing: treefill.event > treefill.branch.{name} spans.

# Thread Safety

  - event.Event is NOT safe for concurrent mutation
  - Writer IS safe to share across goroutines only for distinct events when
    each call uses its own Event; ProcessEvent itself must not be called
    concurrently on one Writer
  - sink.Store implementations are safe for concurrent Append across branches

# Subpackages

  - event: candidate arena and named collections
  - fourvec: four-vector kinematics with beam-axis boundary policy
  - sink: record storage (memory, SQLite)
  - config: YAML/JSON configuration access
  - observability: logging, metrics, and tracing helpers
  - registry: insertion-ordered generic registry
*/
package treefill
