package metrics

import (
	"time"

	"github.com/pixil98/go-tileworld/internal/game"
	"github.com/prometheus/client_golang/prometheus"
)

const DefaultNamespace = "tileworld"

// Metrics holds the engine's collectors on a registry of its own. It
// records collision and world activity.
type Metrics struct {
	registry *prometheus.Registry

	typesCompiled *prometheus.CounterVec
	hitChecks     *prometheus.CounterVec
	hitCallbacks  *prometheus.CounterVec
	spawned       *prometheus.CounterVec
	unspawned     *prometheus.CounterVec
	live          *prometheus.GaugeVec
	tickDuration  prometheus.Histogram
}

func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		typesCompiled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "collision",
			Name:      "types_compiled_total",
			Help:      "Thing types whose collision routines were compiled.",
		}, []string{"group"}),
		hitChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "collision",
			Name:      "hit_checks_total",
			Help:      "Pairwise hit checks run.",
		}, []string{"group"}),
		hitCallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "collision",
			Name:      "hit_callbacks_total",
			Help:      "Hit callbacks fired.",
		}, []string{"group", "other"}),
		spawned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "world",
			Name:      "spawned_total",
			Help:      "PreThings spawned into the world.",
		}, []string{"group"}),
		unspawned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "world",
			Name:      "unspawned_total",
			Help:      "PreThings removed from the world.",
		}, []string{"group"}),
		live: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "world",
			Name:      "live_things",
			Help:      "Live things per group.",
		}, []string{"group"}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "world",
			Name:      "tick_duration_seconds",
			Help:      "Time spent in a world tick.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
	}

	m.registry.MustRegister(
		m.typesCompiled,
		m.hitChecks,
		m.hitCallbacks,
		m.spawned,
		m.unspawned,
		m.live,
		m.tickDuration,
	)

	return m
}

// Gatherer exposes the registry for scraping.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

func (m *Metrics) TypeCompiled(g game.Group) {
	m.typesCompiled.WithLabelValues(g.String()).Inc()
}

func (m *Metrics) HitChecked(g game.Group) {
	m.hitChecks.WithLabelValues(g.String()).Inc()
}

func (m *Metrics) HitCallback(g, other game.Group) {
	m.hitCallbacks.WithLabelValues(g.String(), other.String()).Inc()
}

func (m *Metrics) Spawned(g game.Group) {
	m.spawned.WithLabelValues(g.String()).Inc()
}

func (m *Metrics) Unspawned(g game.Group) {
	m.unspawned.WithLabelValues(g.String()).Inc()
}

func (m *Metrics) SetLive(g game.Group, n int) {
	m.live.WithLabelValues(g.String()).Set(float64(n))
}

func (m *Metrics) Ticked(d time.Duration) {
	m.tickDuration.Observe(d.Seconds())
}
