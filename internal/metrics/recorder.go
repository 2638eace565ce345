package metrics

import "time"

// Recorder defines observability hooks for generation metrics. Implementations
// may forward to Prometheus, OpenTelemetry, etc. The NoopRecorder allows
// optional injection.
type Recorder interface {
	ObserveThemeResolveDuration(theme string, d time.Duration, success bool)
	ObserveBuildDuration(d time.Duration)
	SetPagesPlanned(n int)
	IncPagesRendered()
	IncSettingDropped()
	IncBuildOutcome(outcome string) // outcome: success|failed
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveThemeResolveDuration(string, time.Duration, bool) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)                      {}
func (NoopRecorder) SetPagesPlanned(int)                                     {}
func (NoopRecorder) IncPagesRendered()                                       {}
func (NoopRecorder) IncSettingDropped()                                      {}
func (NoopRecorder) IncBuildOutcome(string)                                  {}
