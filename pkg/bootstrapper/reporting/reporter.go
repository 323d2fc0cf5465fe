package reporting

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Reporters fans a report out to several reporters concurrently.
// The reporting tree is read only once a run has finished, so the reporters
// share it without locking.
type Reporters []Reporter

// Report runs every reporter and returns the first error.
func (rs Reporters) Report(ctx *Context) error {
	if ctx == nil {
		return ErrNilContext
	}

	var errGrp errgroup.Group
	for _, reporter := range rs {
		errGrp.Go(func() error {
			return reporter.Report(ctx)
		})
	}

	return errGrp.Wait()
}

// LogReporter writes the reporting tree to a zap logger.
type LogReporter struct {
	logger *zap.Logger
}

// NewLogReporter creates a reporter logging at info level on logger.
func NewLogReporter(logger *zap.Logger) *LogReporter {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &LogReporter{logger: logger}
}

// Report logs the extensions, then the run and the shutdown trees.
func (r *LogReporter) Report(ctx *Context) error {
	if ctx == nil {
		return ErrNilContext
	}

	for _, extension := range ctx.Extensions() {
		r.logger.Info("extension",
			zap.String("name", extension.Name()),
			zap.String("description", extension.Description()),
		)
	}

	r.reportExecution("run", ctx.Run())
	r.reportExecution("shutdown", ctx.Shutdown())

	return nil
}

func (r *LogReporter) reportExecution(phase string, execution *ExecutionRecord) {
	if execution == nil {
		return
	}

	logger := r.logger.With(zap.String("phase", phase))
	logger.Info("executor",
		zap.String("name", execution.Name()),
		zap.String("description", execution.Description()),
	)

	for idx, executable := range execution.Executables() {
		logger.Info("executable",
			zap.Int("position", idx),
			zap.String("name", executable.Name()),
			zap.String("description", executable.Description()),
		)

		for _, behavior := range executable.Behaviors() {
			logger.Info("behavior",
				zap.Int("executable", idx),
				zap.String("name", behavior.Name()),
				zap.String("description", behavior.Description()),
			)
		}
	}
}

var (
	_ Reporter = Reporters(nil)
	_ Reporter = (*LogReporter)(nil)
	_ Reporter = ReporterFunc(nil)
)
