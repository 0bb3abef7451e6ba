package assemble

import (
	"context"
	"math/rand"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/sabe-project/sabe/compress"
	"github.com/sabe-project/sabe/config"
	"github.com/sabe-project/sabe/digraph"
	"github.com/sabe-project/sabe/euler"
	"github.com/sabe-project/sabe/prune"
	"github.com/sabe-project/sabe/stream"
	"github.com/sabe-project/sabe/vertex"
)

// Assembler drives build -> prune -> compress-to-fixpoint -> tour over a
// set of partition-local vertex records. One Assembler is scoped to one
// run: its random source and metrics are not safe to share across
// concurrent runs.
type Assembler struct {
	cfg  config.Config
	fuse compress.PayloadFuse
	rnd  *rand.Rand
	log  zerolog.Logger

	registry          *prometheus.Registry
	verticesPruned    prometheus.Counter
	compressionRounds prometheus.Counter
	compressionMerges prometheus.Counter
}

// New constructs an Assembler. fuse may be nil, leaving payloads untouched
// across chain compression. rnd drives CompressChainKey's coin flip and
// must be a per-run generator, not shared across concurrent Assemblers.
func New(cfg config.Config, fuse compress.PayloadFuse, rnd *rand.Rand, logger zerolog.Logger) *Assembler {
	a := &Assembler{
		cfg:      cfg,
		fuse:     fuse,
		rnd:      rnd,
		log:      logger,
		registry: prometheus.NewRegistry(),
		verticesPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sabe",
			Subsystem: "assemble",
			Name:      "vertices_pruned_total",
			Help:      "Vertex records rejected by coverage pruning.",
		}),
		compressionRounds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sabe",
			Subsystem: "assemble",
			Name:      "compression_rounds_total",
			Help:      "Chain-compression rounds run.",
		}),
		compressionMerges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sabe",
			Subsystem: "assemble",
			Name:      "compression_merges_total",
			Help:      "Chain-compression merges performed, summed across rounds.",
		}),
	}
	a.registry.MustRegister(a.verticesPruned, a.compressionRounds, a.compressionMerges)
	return a
}

// Metrics exposes the Assembler's Prometheus registry so a harness can
// gather it or serve it over /metrics itself via promhttp.HandlerFor;
// Assembler never opens a listener.
func (a *Assembler) Metrics() *prometheus.Registry {
	return a.registry
}

// Run executes the full pipeline over records and returns the Euler tours
// of the resulting graph.
func (a *Assembler) Run(ctx context.Context, records []*vertex.Record) ([]euler.Path, error) {
	runCtx := compress.NewRunContext(a.cfg.TerminationCount)
	log := a.log.With().Str("run_id", runCtx.ID.String()).Logger()
	log.Info().Int("records", len(records)).Msg("assembly started")

	survivors, err := a.prunePhase(log, records)
	if err != nil {
		return nil, err
	}

	branches, chains := partitionByBranch(survivors)
	log.Info().
		Int("branches", len(branches)).
		Int("chains", len(chains)).
		Msg("branch/chain split complete")

	compressedChains, err := a.compressPhase(ctx, log, runCtx, chains)
	if err != nil {
		return nil, err
	}

	compressed := append(compressedChains, branches...)
	g, err := BuildGraph(compressed, a.cfg.AllowEdgeMultiples)
	if err != nil {
		return nil, err
	}

	tours, err := euler.Extract(g)
	if err != nil {
		return nil, err
	}
	log.Info().Int("tours", len(tours)).Msg("assembly complete")
	return tours, nil
}

func (a *Assembler) prunePhase(log zerolog.Logger, records []*vertex.Record) ([]*vertex.Record, error) {
	if a.cfg.Coverage <= 0 {
		log.Info().Msg("coverage pruning disabled")
		return records, nil
	}

	kept := make([]*vertex.Record, 0, len(records))
	for _, r := range records {
		survived, err := prune.Prune(r, a.cfg.Coverage)
		if err != nil {
			return nil, err
		}
		if !survived {
			a.verticesPruned.Inc()
			continue
		}
		kept = append(kept, r)
	}
	log.Info().
		Int("kept", len(kept)).
		Int("pruned", len(records)-len(kept)).
		Msg("coverage pruning complete")
	return kept, nil
}

// partitionByBranch splits records into branch records, which compress.Round
// refuses to accept, and chain records, which are the only ones eligible
// for chain compression. stream.DefaultPartitioner is the single source of
// truth for this classification; cmd's partitioned-output writer uses the
// same predicate so a branch record is never mistaken for a chain record in
// one path and not the other.
func partitionByBranch(records []*vertex.Record) (branches, chains []*vertex.Record) {
	branches = make([]*vertex.Record, 0)
	chains = make([]*vertex.Record, 0, len(records))
	for _, r := range records {
		if stream.DefaultPartitioner(r) == "branch" {
			branches = append(branches, r)
			continue
		}
		chains = append(chains, r)
	}
	return branches, chains
}

func (a *Assembler) compressPhase(ctx context.Context, log zerolog.Logger, runCtx *compress.RunContext, records []*vertex.Record) ([]*vertex.Record, error) {
	current := records
	for !runCtx.Done() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, merges, err := compress.Round(current, a.rnd, a.cfg.CompressMultiplesMustMatch, a.fuse)
		if err != nil {
			return nil, err
		}
		runCtx.RecordRound(merges)
		a.compressionRounds.Inc()
		a.compressionMerges.Add(float64(merges))
		log.Debug().
			Int("round", runCtx.Round).
			Int("merges", merges).
			Int("silent_rounds", runCtx.SilentRounds()).
			Msg("compression round complete")
		current = next
	}
	log.Info().Int("rounds", runCtx.Round).Int("result_records", len(current)).Msg("chain compression converged")
	return current, nil
}

// BuildGraph materializes a digraph.Graph from a post-compression record
// set — the union of chain-compressed records and the branch records that
// were held out of compression — sized to the largest vertex id referenced
// by any record or its out-edges.
func BuildGraph(records []*vertex.Record, allowMultiples bool) (*digraph.Graph[digraph.BasicEdge], error) {
	capacity := 0
	for _, r := range records {
		capacity = maxInt(capacity, int(r.ID())+1)
		for _, to := range r.EdgesTo() {
			capacity = maxInt(capacity, int(to)+1)
		}
	}

	multiples := digraph.MultiplesDisabled
	if allowMultiples {
		multiples = digraph.MultiplesEnabled
	}
	g := digraph.New[digraph.BasicEdge](capacity, multiples)

	for _, r := range records {
		from := digraph.VertexID(r.ID())
		for _, to := range r.EdgesTo() {
			if err := g.AddEdge(from, digraph.NewBasicEdge(digraph.VertexID(to))); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
