package metrics

import (
	"net/http"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once            sync.Once
	themeDuration   *prom.HistogramVec
	buildDuration   prom.Histogram
	pagesPlanned    prom.Gauge
	pagesRendered   prom.Counter
	settingsDropped prom.Counter
	buildOutcome    *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.themeDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "apidocs",
			Name:      "theme_resolve_duration_seconds",
			Help:      "Duration of theme inheritance chain resolution",
			Buckets:   prom.DefBuckets,
		}, []string{"theme", "result"})
		pr.buildDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "apidocs",
			Name:      "build_duration_seconds",
			Help:      "Total generation run duration",
			Buckets:   prom.DefBuckets,
		})
		pr.pagesPlanned = prom.NewGauge(prom.GaugeOpts{
			Namespace: "apidocs",
			Name:      "pages_planned",
			Help:      "Sitemap page count for the current run",
		})
		pr.pagesRendered = prom.NewCounter(prom.CounterOpts{
			Namespace: "apidocs",
			Name:      "pages_rendered_total",
			Help:      "Pages rendered across runs",
		})
		pr.settingsDropped = prom.NewCounter(prom.CounterOpts{
			Namespace: "apidocs",
			Name:      "theme_settings_dropped_total",
			Help:      "Per-build theme settings dropped after failed validation",
		})
		pr.buildOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "apidocs",
			Name:      "build_outcomes_total",
			Help:      "Generation run outcomes by final status",
		}, []string{"outcome"})
		reg.MustRegister(pr.themeDuration, pr.buildDuration, pr.pagesPlanned,
			pr.pagesRendered, pr.settingsDropped, pr.buildOutcome)
	})
	return pr
}

func (pr *PrometheusRecorder) ObserveThemeResolveDuration(theme string, d time.Duration, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	pr.themeDuration.WithLabelValues(theme, result).Observe(d.Seconds())
}

func (pr *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	pr.buildDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) SetPagesPlanned(n int) { pr.pagesPlanned.Set(float64(n)) }
func (pr *PrometheusRecorder) IncPagesRendered()     { pr.pagesRendered.Inc() }
func (pr *PrometheusRecorder) IncSettingDropped()    { pr.settingsDropped.Inc() }

func (pr *PrometheusRecorder) IncBuildOutcome(outcome string) {
	pr.buildOutcome.WithLabelValues(outcome).Inc()
}

// HTTPHandler returns an http.Handler serving Prometheus metrics for the registry.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
