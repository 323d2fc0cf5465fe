package bootstrapper

import (
	"go.uber.org/zap"

	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/execution"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/measure"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/reporting"
)

type Option[E any] func(b *Bootstrapper[E])

// WithReporter adds r to the reporters called after each shutdown.
func WithReporter[E any](r reporting.Reporter) Option[E] {
	return func(b *Bootstrapper[E]) {
		b.reporters = append(b.reporters, r)
	}
}

func WithLogger[E any](logger *zap.Logger) Option[E] {
	return func(b *Bootstrapper[E]) {
		if logger != nil {
			b.logger = logger
		}
	}
}

type StrategyOption[E any] func(s *DefaultStrategy[E])

func WithExtensionResolver[E any](resolver ExtensionResolver[E]) StrategyOption[E] {
	return func(s *DefaultStrategy[E]) {
		s.resolver = resolver
	}
}

// WithRunMeasure records the duration of the run executables into m.
func WithRunMeasure[E any](m measure.Measure) StrategyOption[E] {
	return func(s *DefaultStrategy[E]) {
		s.runOptions = append(s.runOptions, execution.WithHook(measure.ExecutorHook(m)))
	}
}

// WithShutdownMeasure records the duration of the shutdown executables into m.
func WithShutdownMeasure[E any](m measure.Measure) StrategyOption[E] {
	return func(s *DefaultStrategy[E]) {
		s.shutdownOptions = append(s.shutdownOptions, execution.WithHook(measure.ExecutorHook(m)))
	}
}

// WithExecutorLogger logs every executable run by both executors.
func WithExecutorLogger[E any](logger *zap.Logger) StrategyOption[E] {
	return func(s *DefaultStrategy[E]) {
		s.runOptions = append(s.runOptions, execution.WithLogger(logger))
		s.shutdownOptions = append(s.shutdownOptions, execution.WithLogger(logger))
	}
}

// WithCleanup registers fn to be called when the strategy is closed.
// Cleanups run in reverse registration order.
func WithCleanup[E any](fn func() error) StrategyOption[E] {
	return func(s *DefaultStrategy[E]) {
		s.cleanups = append(s.cleanups, fn)
	}
}
