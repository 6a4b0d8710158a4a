package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Registry holds every collector of the store so hosts can expose or gather
// them without touching the global default registry.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	PlayersCreatedTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "hypersomnia_players_created_total",
		Help: "Players created together with their settings and progress rows",
	})
	PlayerCreateFailuresTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "hypersomnia_player_create_failures_total",
		Help: "Rejected or rolled back player creations by reason",
	}, []string{"reason"})
	LedgerWritesTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "hypersomnia_ledger_writes_total",
		Help: "Committed progress ledger writes by operation",
	}, []string{"op"})
	LevelsSeededTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "hypersomnia_levels_seeded_total",
		Help: "Level rows inserted by catalog seeding",
	})
	TxDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "hypersomnia_tx_duration_seconds",
		Help:    "Duration of write transactions including lock wait",
		Buckets: prometheus.DefBuckets,
	})
)

const (
	OpComplete = "complete"
	OpAttempt  = "attempt"
	OpUnlock   = "unlock"
	OpSeed     = "seed"

	ReasonDuplicateName = "duplicate_name"
	ReasonCatalog       = "catalog_misconfigured"
	ReasonStorage       = "storage"
)

// WriteText gathers Registry and writes it in the Prometheus text format.
func WriteText(w io.Writer) error {
	families, err := Registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("write metric %s: %w", family.GetName(), err)
		}
	}
	return nil
}
