package measure

import (
	"fmt"
	"maps"
	"sync"
)

// Key identifies the executable at position with the given name.
func Key(position int, name string) string {
	return fmt.Sprintf("%02d %s", position, name)
}

type DefaultMeasure struct {
	mu      sync.Mutex
	metrics map[string]Metric
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		metrics: make(map[string]Metric),
	}
}

// AddMetric returns the metric registered under name, creating it when needed.
func (m *DefaultMeasure) AddMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mt, ok := m.metrics[name]; ok {
		return mt
	}

	mt := &DefaultMetric{}
	m.metrics[name] = mt

	return mt
}

// GetMetric returns nil when nothing was registered under name.
func (m *DefaultMeasure) GetMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.metrics[name]
}

func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return maps.Clone(m.metrics)
}

var _ Measure = (*DefaultMeasure)(nil)
