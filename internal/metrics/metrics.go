// Package metrics exposes daemon counters in the Prometheus format.
package metrics

import (
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/edumarques81/mixerd/internal/domain/daemon"
)

// Snapshot scopes.
const (
	ScopeDaemon = "daemon"
	ScopeMixer  = "mixer"
)

// Metrics owns a private registry so tests and multiple daemons in one
// process do not collide on the default one.
type Metrics struct {
	reg *prom.Registry

	attached  prom.Gauge
	updates   *prom.CounterVec
	snapshots *prom.CounterVec
	rescans   *prom.CounterVec
}

// New builds the collectors on a private registry, so tests can create as
// many as they like.
func New() *Metrics {
	m := &Metrics{
		reg: prom.NewRegistry(),
		attached: prom.NewGauge(prom.GaugeOpts{
			Name: "mixerd_attached_mixers",
			Help: "Number of mixers currently attached.",
		}),
		updates: prom.NewCounterVec(prom.CounterOpts{
			Name: "mixerd_status_updates_total",
			Help: "Status updates applied, per mixer.",
		}, []string{"serial"}),
		snapshots: prom.NewCounterVec(prom.CounterOpts{
			Name: "mixerd_snapshots_total",
			Help: "Snapshots served to clients, by scope.",
		}, []string{"scope"}),
		rescans: prom.NewCounterVec(prom.CounterOpts{
			Name: "mixerd_file_rescans_total",
			Help: "Resource directory scans, by result.",
		}, []string{"result"}),
	}
	m.reg.MustRegister(
		m.attached, m.updates, m.snapshots, m.rescans,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe keeps the device gauge and update counters in step with r.
func (m *Metrics) Observe(r *daemon.Registry) {
	m.attached.Set(float64(r.Len()))
	r.Subscribe(func(ev daemon.Event) {
		switch ev.Kind {
		case daemon.EventAttached, daemon.EventDetached:
			m.attached.Set(float64(r.Len()))
			if ev.Kind == daemon.EventDetached {
				m.updates.DeleteLabelValues(ev.Serial)
			}
		case daemon.EventUpdated:
			m.updates.WithLabelValues(ev.Serial).Inc()
		}
	})
}

// SnapshotServed counts one snapshot of the given scope.
func (m *Metrics) SnapshotServed(scope string) {
	m.snapshots.WithLabelValues(scope).Inc()
}

// Rescanned counts one resource scan. It matches the files.Inventory hook.
func (m *Metrics) Rescanned(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.rescans.WithLabelValues(result).Inc()
}

func (m *Metrics) Registry() *prom.Registry {
	return m.reg
}

// Handler serves the registry at /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
