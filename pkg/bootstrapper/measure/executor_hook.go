package measure

import (
	"time"

	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/execution"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/reporting"
)

type executorHook struct {
	Measure
}

func (h *executorHook) BeforeExecutable(position int, executable reporting.Describable) error {
	h.AddMetric(Key(position, executable.Name()))

	return nil
}

func (h *executorHook) AfterExecutable(position int, executable reporting.Describable, elapsed time.Duration, _ error) error {
	h.AddMetric(Key(position, executable.Name())).AddDuration(elapsed)

	return nil
}

// ExecutorHook records the duration of every executable run by an executor
// into m, failed executions included.
func ExecutorHook(m Measure) execution.Hook {
	return &executorHook{m}
}
