package bootstrapper

import (
	"slices"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/execution"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/reporting"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/syntax"
)

// Strategy supplies everything a bootstrapper needs.
type Strategy[E any] interface {
	BuildRunSyntax() (syntax.Enumerable[E], error)
	BuildShutdownSyntax() (syntax.Enumerable[E], error)
	CreateRunExecutor() execution.Executor[E]
	CreateShutdownExecutor() execution.Executor[E]
	CreateExtensionResolver() ExtensionResolver[E]
	CreateReportingContext() *reporting.Context
	Close() error
}

// DefaultStrategy declares its syntaxes with functions. The run syntax is
// executed forward, the shutdown syntax in reverse, so the shutdown syntax
// is declared in the same order as the run syntax it undoes.
type DefaultStrategy[E any] struct {
	defineRun       func(b *syntax.Builder[E])
	defineShutdown  func(b *syntax.Builder[E])
	resolver        ExtensionResolver[E]
	runOptions      []execution.Option
	shutdownOptions []execution.Option
	cleanups        []func() error
}

func NewDefaultStrategy[E any](defineRun, defineShutdown func(b *syntax.Builder[E]), opts ...StrategyOption[E]) *DefaultStrategy[E] {
	s := &DefaultStrategy[E]{
		defineRun:      defineRun,
		defineShutdown: defineShutdown,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *DefaultStrategy[E]) BuildRunSyntax() (syntax.Enumerable[E], error) {
	res, err := build(s.defineRun)
	if err != nil {
		return nil, errors.Wrap(err, "unable to build run syntax")
	}

	return res, nil
}

func (s *DefaultStrategy[E]) BuildShutdownSyntax() (syntax.Enumerable[E], error) {
	res, err := build(s.defineShutdown)
	if err != nil {
		return nil, errors.Wrap(err, "unable to build shutdown syntax")
	}

	return res, nil
}

func (s *DefaultStrategy[E]) CreateRunExecutor() execution.Executor[E] {
	return execution.NewSynchronousExecutor[E](s.runOptions...)
}

func (s *DefaultStrategy[E]) CreateShutdownExecutor() execution.Executor[E] {
	return execution.NewSynchronousReverseExecutor[E](s.shutdownOptions...)
}

func (s *DefaultStrategy[E]) CreateExtensionResolver() ExtensionResolver[E] {
	if s.resolver == nil {
		return NullExtensionResolver[E]{}
	}

	return s.resolver
}

func (s *DefaultStrategy[E]) CreateReportingContext() *reporting.Context {
	return reporting.NewContext()
}

// Close runs the registered cleanups, all of them even when some fail.
func (s *DefaultStrategy[E]) Close() error {
	var err error
	for _, cleanup := range slices.Backward(s.cleanups) {
		err = multierr.Append(err, cleanup())
	}

	s.cleanups = nil

	return err
}

func build[E any](define func(b *syntax.Builder[E])) (*syntax.Syntax[E], error) {
	b := syntax.NewBuilder[E]()
	if define != nil {
		define(b)
	}

	return b.Build()
}

var _ Strategy[any] = (*DefaultStrategy[any])(nil)
