package headless

import (
	"net/http"

	"github.com/automoto/rally/shared/sim"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics with bounded cardinality: the only label values are the two sides.
type Metrics struct {
	registry *prometheus.Registry

	ticks        prometheus.Counter
	points       *prometheus.CounterVec
	matches      *prometheus.CounterVec
	paddleHits   prometheus.Counter
	wallBounces  prometheus.Counter
	score        *prometheus.GaugeVec
	rally        prometheus.Gauge
	rallyLengths prometheus.Histogram
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ticks: factory.NewCounter(prometheus.CounterOpts{
			Name: "rally_ticks_total",
			Help: "Simulation steps taken",
		}),
		points: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rally_points_total",
			Help: "Points scored",
		}, []string{"side"}),
		matches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rally_matches_total",
			Help: "Matches finished, by winner",
		}, []string{"winner"}),
		paddleHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "rally_paddle_hits_total",
			Help: "Ball returns off either paddle",
		}),
		wallBounces: factory.NewCounter(prometheus.CounterOpts{
			Name: "rally_wall_bounces_total",
			Help: "Ball bounces off the top and bottom walls",
		}),
		score: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rally_score",
			Help: "Current score of the running match",
		}, []string{"side"}),
		rally: factory.NewGauge(prometheus.GaugeOpts{
			Name: "rally_current_hits",
			Help: "Paddle hits since the last serve",
		}),
		rallyLengths: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rally_length_hits",
			Help:    "Paddle hits in each finished rally",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64},
		}),
	}
}

// Observe records one step's events and the state after it. rallyBefore is
// the rally count before the step, used to size a rally that just ended.
func (m *Metrics) Observe(events []sim.Event, snap sim.Snapshot, rallyBefore int) {
	m.ticks.Inc()
	rally := rallyBefore
	for _, ev := range events {
		switch ev.Kind {
		case sim.WallBounce:
			m.wallBounces.Inc()
		case sim.PaddleHit:
			m.paddleHits.Inc()
			rally++
		case sim.Score:
			m.points.WithLabelValues(ev.Side.String()).Inc()
			m.rallyLengths.Observe(float64(rally))
		case sim.MatchEnd:
			m.matches.WithLabelValues(ev.Side.String()).Inc()
		}
	}
	m.score.WithLabelValues(sim.SidePlayer.String()).Set(float64(snap.PlayerScore))
	m.score.WithLabelValues(sim.SideOpponent.String()).Set(float64(snap.OpponentScore))
	m.rally.Set(float64(snap.Rally))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
