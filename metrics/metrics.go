// Package metrics exposes traversal statistics of the solver.
//
// The solver reports through the Recorder interface; Nop discards everything
// and Prometheus bridges the events into client_golang collectors.
package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// namespace prefixes every collector name.
const namespace = "pourpath"

// Recorder receives traversal events. Implementations must be safe for
// concurrent use.
type Recorder interface {
	// StateExpanded is called once per dequeued configuration.
	StateExpanded()
	// StateDiscovered is called once per newly seen configuration.
	StateDiscovered()
	// DuplicateSkipped is called when a successor was already seen.
	DuplicateSkipped()
	// SolveFinished is called once at the end of a traversal.
	SolveFinished(d time.Duration, solved bool)
}

// Nop is a Recorder that records nothing.
type Nop struct{}

func (Nop) StateExpanded()                    {}
func (Nop) StateDiscovered()                  {}
func (Nop) DuplicateSkipped()                 {}
func (Nop) SolveFinished(time.Duration, bool) {}

// Prometheus is a Recorder backed by client_golang collectors.
type Prometheus struct {
	expanded   prom.Counter
	discovered prom.Counter
	duplicates prom.Counter
	solves     *prom.CounterVec
	duration   prom.Histogram
}

// NewPrometheus builds the collectors and registers them on reg.
// It returns the registration error, e.g. prom.AlreadyRegisteredError.
func NewPrometheus(reg prom.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		expanded: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace, Name: "states_expanded_total",
			Help: "Configurations dequeued and expanded by the solver",
		}),
		discovered: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace, Name: "states_discovered_total",
			Help: "Distinct configurations discovered by the solver",
		}),
		duplicates: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace, Name: "duplicates_skipped_total",
			Help: "Successors skipped because their canonical key was already seen",
		}),
		solves: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace, Name: "solves_total",
			Help: "Finished traversals by outcome",
		}, []string{"outcome"}),
		duration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace, Name: "solve_duration_seconds",
			Help:    "Wall time of a full traversal",
			Buckets: prom.ExponentialBuckets(0.001, 4, 10),
		}),
	}
	for _, c := range []prom.Collector{p.expanded, p.discovered, p.duplicates, p.solves, p.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func (p *Prometheus) StateExpanded()    { p.expanded.Inc() }
func (p *Prometheus) StateDiscovered()  { p.discovered.Inc() }
func (p *Prometheus) DuplicateSkipped() { p.duplicates.Inc() }

// SolveFinished observes the duration and counts the outcome ("solved" or "unsolvable").
func (p *Prometheus) SolveFinished(d time.Duration, solved bool) {
	outcome := "unsolvable"
	if solved {
		outcome = "solved"
	}
	p.solves.WithLabelValues(outcome).Inc()
	p.duration.Observe(d.Seconds())
}

// WriteTextfile writes every metric gathered by g to path in the
// Prometheus text exposition format (node_exporter textfile collector).
func WriteTextfile(path string, g prom.Gatherer) error {
	return prom.WriteToTextfile(path, g)
}
