package metric

import "github.com/prometheus/client_golang/prometheus"

// Prometheus counts sweeper activity on a prometheus registry.
type Prometheus struct {
	uploads   *prometheus.CounterVec
	cleaned   *prometheus.CounterVec
	converted *prometheus.CounterVec
	evicted   prometheus.Counter
}

func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "datasweeper",
			Subsystem: "sweeper",
			Name:      "files_total",
			Help:      "Uploaded files, by detected format and outcome.",
		}, []string{"format", "outcome"}),
		cleaned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "datasweeper",
			Subsystem: "sweeper",
			Name:      "cleaned_total",
			Help:      "Rows removed or cells filled by cleaning operations.",
		}, []string{"operation"}),
		converted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "datasweeper",
			Subsystem: "sweeper",
			Name:      "conversions_total",
			Help:      "Tables serialized for download, by target format.",
		}, []string{"format"}),
		evicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "datasweeper",
			Subsystem: "sweeper",
			Name:      "sessions_evicted_total",
			Help:      "Idle sessions removed by the janitor.",
		}),
	}

	reg.MustRegister(p.uploads, p.cleaned, p.converted, p.evicted)

	return p
}

func (p *Prometheus) FileUploaded(format string, outcome string) {
	p.uploads.WithLabelValues(format, outcome).Inc()
}

func (p *Prometheus) FileCleaned(operation string, changed int) {
	if changed < 0 {
		return
	}
	p.cleaned.WithLabelValues(operation).Add(float64(changed))
}

func (p *Prometheus) FileConverted(format string) {
	p.converted.WithLabelValues(format).Inc()
}

func (p *Prometheus) SessionsEvicted(n int) {
	if n <= 0 {
		return
	}
	p.evicted.Add(float64(n))
}

