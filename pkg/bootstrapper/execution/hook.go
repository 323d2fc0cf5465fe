package execution

import (
	"time"

	"go.uber.org/zap"

	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/reporting"
)

// Hook is notified around every executable an executor runs.
type Hook interface {
	// BeforeExecutable runs before the executable at position executes.
	BeforeExecutable(position int, executable reporting.Describable) error
	// AfterExecutable runs once the executable returned, err being its result.
	AfterExecutable(position int, executable reporting.Describable, elapsed time.Duration, err error) error
}

type logHook struct {
	logger *zap.Logger
}

func (h *logHook) BeforeExecutable(position int, executable reporting.Describable) error {
	h.logger.Debug("executing",
		zap.Int("position", position),
		zap.String("executable", executable.Name()),
		zap.String("description", executable.Describe()),
	)

	return nil
}

func (h *logHook) AfterExecutable(position int, executable reporting.Describable, elapsed time.Duration, err error) error {
	if err != nil {
		h.logger.Error("executable failed",
			zap.Int("position", position),
			zap.String("executable", executable.Name()),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)

		return nil
	}

	h.logger.Debug("executed",
		zap.Int("position", position),
		zap.String("executable", executable.Name()),
		zap.Duration("elapsed", elapsed),
	)

	return nil
}

// LogHook logs every executable on logger.
func LogHook(logger *zap.Logger) Hook {
	return &logHook{logger: logger}
}
