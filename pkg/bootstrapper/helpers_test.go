package bootstrapper_test

import (
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/execution"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/reporting"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/syntax"
)

type extension struct {
	name string
}

// fakeStrategy records the calls made by the bootstrapper in events.
type fakeStrategy struct {
	events      *[]string
	runSyntax   syntax.Enumerable[*extension]
	shutSyntax  syntax.Enumerable[*extension]
	runErr      error
	shutErr     error
	resolver    bootstrapper.ExtensionResolver[*extension]
	runExec     *fakeExecutor
	shutExec    *fakeExecutor
	reportCtx   *reporting.Context
	closeErr    error
	buildRunErr error
}

func newFakeStrategy(events *[]string) *fakeStrategy {
	return &fakeStrategy{
		events:     events,
		runSyntax:  syntax.NewSyntax[*extension](),
		shutSyntax: syntax.NewSyntax[*extension](),
		runExec:    &fakeExecutor{name: "run executor", events: events},
		shutExec:   &fakeExecutor{name: "shutdown executor", events: events},
		reportCtx:  reporting.NewContext(),
	}
}

func (s *fakeStrategy) BuildRunSyntax() (syntax.Enumerable[*extension], error) {
	*s.events = append(*s.events, "build run syntax")

	return s.runSyntax, s.buildRunErr
}

func (s *fakeStrategy) BuildShutdownSyntax() (syntax.Enumerable[*extension], error) {
	*s.events = append(*s.events, "build shutdown syntax")

	return s.shutSyntax, nil
}

func (s *fakeStrategy) CreateRunExecutor() execution.Executor[*extension] {
	s.runExec.err = s.runErr

	return s.runExec
}

func (s *fakeStrategy) CreateShutdownExecutor() execution.Executor[*extension] {
	s.shutExec.err = s.shutErr

	return s.shutExec
}

func (s *fakeStrategy) CreateExtensionResolver() bootstrapper.ExtensionResolver[*extension] {
	*s.events = append(*s.events, "create resolver")

	return s.resolver
}

func (s *fakeStrategy) CreateReportingContext() *reporting.Context {
	*s.events = append(*s.events, "create reporting context")

	return s.reportCtx
}

func (s *fakeStrategy) Close() error {
	*s.events = append(*s.events, "close strategy")

	return s.closeErr
}

// fakeExecutor records the syntax, extensions and context it was given.
type fakeExecutor struct {
	name       string
	events     *[]string
	err        error
	syntax     syntax.Enumerable[*extension]
	extensions []*extension
	ctx        reporting.ExecutionContext
	during     func()
}

func (e *fakeExecutor) Name() string {
	return e.name
}

func (e *fakeExecutor) Describe() string {
	return "describes " + e.name
}

func (e *fakeExecutor) Execute(s syntax.Enumerable[*extension], extensions []*extension, ctx reporting.ExecutionContext) error {
	*e.events = append(*e.events, e.name)
	e.syntax = s
	e.extensions = extensions
	e.ctx = ctx

	if e.during != nil {
		e.during()
	}

	return e.err
}

func recordingReporter(events *[]string) reporting.Reporter {
	return reporting.ReporterFunc(func(*reporting.Context) error {
		*events = append(*events, "report")

		return nil
	})
}
