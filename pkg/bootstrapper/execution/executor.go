package execution

import (
	"slices"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/reporting"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/syntax"
)

// Executor replays a syntax on the extensions.
type Executor[E any] interface {
	reporting.Describable
	Execute(s syntax.Enumerable[E], extensions []E, ctx reporting.ExecutionContext) error
}

// SynchronousExecutor runs the executables in the order they were declared.
type SynchronousExecutor[E any] struct {
	options
}

func NewSynchronousExecutor[E any](opts ...Option) *SynchronousExecutor[E] {
	return &SynchronousExecutor[E]{options: newOptions(opts)}
}

func (x *SynchronousExecutor[E]) Name() string {
	return reporting.TypeName(x)
}

func (x *SynchronousExecutor[E]) Describe() string {
	return "Runs all executables synchronously on the extensions in the order which they were added."
}

// Execute stops at the first failing executable and returns its error as is.
func (x *SynchronousExecutor[E]) Execute(s syntax.Enumerable[E], extensions []E, ctx reporting.ExecutionContext) error {
	return run(x.hooks, s.Executables(), extensions, ctx)
}

// SynchronousReverseExecutor runs the executables in the reverse order they
// were declared. The extensions keep their order.
type SynchronousReverseExecutor[E any] struct {
	options
}

func NewSynchronousReverseExecutor[E any](opts ...Option) *SynchronousReverseExecutor[E] {
	return &SynchronousReverseExecutor[E]{options: newOptions(opts)}
}

func (x *SynchronousReverseExecutor[E]) Name() string {
	return reporting.TypeName(x)
}

func (x *SynchronousReverseExecutor[E]) Describe() string {
	return "Runs all executables synchronously on the extensions in the reverse order which they were added."
}

func (x *SynchronousReverseExecutor[E]) Execute(s syntax.Enumerable[E], extensions []E, ctx reporting.ExecutionContext) error {
	executables := slices.Clone(s.Executables())
	slices.Reverse(executables)

	return run(x.hooks, executables, extensions, ctx)
}

func run[E any](hooks []Hook, executables []syntax.Executable[E], extensions []E, ctx reporting.ExecutionContext) error {
	for position, executable := range executables {
		for _, hook := range hooks {
			err := hook.BeforeExecutable(position, executable)
			if err != nil {
				return errors.Wrapf(err, "unable to run hook before %s", executable.Name())
			}
		}

		child := ctx.CreateExecutableContext(executable)

		start := time.Now()
		execErr := executable.Execute(slices.Values(extensions), child)
		elapsed := time.Since(start)

		for _, hook := range hooks {
			err := hook.AfterExecutable(position, executable, elapsed, execErr)
			if err != nil && execErr == nil {
				return errors.Wrapf(err, "unable to run hook after %s", executable.Name())
			}
		}

		if execErr != nil {
			return execErr
		}
	}

	return nil
}

var (
	_ Executor[any] = (*SynchronousExecutor[any])(nil)
	_ Executor[any] = (*SynchronousReverseExecutor[any])(nil)
)
