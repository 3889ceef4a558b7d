package engine

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "groupelo"

// Metrics collects per category counters of a rating run.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	matches      *prometheus.CounterVec
	contests     *prometheus.CounterVec
	transferred  *prometheus.CounterVec
	participants *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "matches_applied_total",
			Help:      "Matches folded into the rating table.",
		}, []string{"category"}),
		contests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "subcontests_total",
			Help:      "Effective pairwise sub-contests evaluated.",
		}, []string{"category"}),
		transferred: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rating_transferred_total",
			Help:      "Rating points moved from losers to winners after normalization.",
		}, []string{"category"}),
		participants: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "participants",
			Help:      "Participants present in the rating table.",
		}, []string{"category"}),
	}
	for _, c := range []prometheus.Collector{m.matches, m.contests, m.transferred, m.participants} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeMatch(category string, contests int, transferred float64) {
	if m == nil {
		return
	}
	m.matches.WithLabelValues(category).Inc()
	m.contests.WithLabelValues(category).Add(float64(contests))
	m.transferred.WithLabelValues(category).Add(transferred)
}

func (m *Metrics) setParticipants(category string, n int) {
	if m == nil {
		return
	}
	m.participants.WithLabelValues(category).Set(float64(n))
}

// WriteTextfile dumps everything gathered by g in the node exporter textfile format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
