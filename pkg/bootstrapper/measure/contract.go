package measure

import "time"

// Measure holds the metrics of the executables of one executor, keyed by Key.
type Measure interface {
	AddMetric(name string) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

// Metric accumulates the durations of one executable over its executions.
type Metric interface {
	AddDuration(elapsed time.Duration)
	AVGDuration() time.Duration
	TotalDuration() time.Duration
	Count() int64
}
