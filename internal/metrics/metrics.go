// Package metrics exposes arcade session metrics to Prometheus.
// Label values are bounded: game IDs come from the registry and outcomes
// and events are closed sets.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vovakirdan/shadowflap/internal/core"
)

// Collector groups the arcade collectors. It satisfies tui.Observer.
type Collector struct {
	sessionsActive prometheus.Gauge
	sessionsTotal  prometheus.Counter
	sessionsDenied *prometheus.CounterVec
	gamesFinished  *prometheus.CounterVec
	gameEvents     *prometheus.CounterVec
	finalScore     *prometheus.HistogramVec
	tickDuration   prometheus.Histogram
}

// NewCollector registers the arcade collectors with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		sessionsActive: f.NewGauge(prometheus.GaugeOpts{
			Name: "shadowflap_sessions_active",
			Help: "Currently connected SSH sessions",
		}),
		sessionsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "shadowflap_sessions_total",
			Help: "SSH sessions accepted",
		}),
		sessionsDenied: f.NewCounterVec(prometheus.CounterOpts{
			Name: "shadowflap_sessions_rejected_total",
			Help: "SSH sessions rejected before a program started",
		}, []string{"reason"}), // "rate_limit", "no_pty"
		gamesFinished: f.NewCounterVec(prometheus.CounterOpts{
			Name: "shadowflap_games_finished_total",
			Help: "Finished games by outcome",
		}, []string{"game", "outcome"}),
		gameEvents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "shadowflap_game_events_total",
			Help: "Simulation events by kind",
		}, []string{"game", "event"}),
		finalScore: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shadowflap_final_score",
			Help:    "Total score at the end of a game",
			Buckets: []float64{0, 1, 2, 5, 10, 15, 20, 30},
		}, []string{"game"}),
		tickDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "shadowflap_tick_duration_seconds",
			Help:    "Time spent in one simulation step",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.0167},
		}),
	}
}

// SessionOpened records an accepted SSH session.
func (c *Collector) SessionOpened() {
	c.sessionsTotal.Inc()
	c.sessionsActive.Inc()
}

// SessionClosed records a finished SSH session.
func (c *Collector) SessionClosed() {
	c.sessionsActive.Dec()
}

// SessionRejected increments the rejection counter.
// reason must be one of: "rate_limit", "no_pty".
func (c *Collector) SessionRejected(reason string) {
	c.sessionsDenied.WithLabelValues(reason).Inc()
}

// Event counts a simulation event. Start and terminal events are counted
// here too; GameFinished additionally records the score.
func (c *Collector) Event(gameID string, ev core.Event) {
	if ev == core.EventNone {
		return
	}
	c.gameEvents.WithLabelValues(gameID, ev.String()).Inc()
}

// GameFinished records the end of a game.
func (c *Collector) GameFinished(gameID string, st core.GameState) {
	c.gamesFinished.WithLabelValues(gameID, st.Outcome()).Inc()
	c.finalScore.WithLabelValues(gameID).Observe(float64(st.Score))
}

// Tick records simulation step timing.
func (c *Collector) Tick(d time.Duration) {
	c.tickDuration.Observe(d.Seconds())
}
