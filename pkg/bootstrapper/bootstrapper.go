package bootstrapper

import (
	"slices"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/execution"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/reporting"
)

type state int

const (
	uninitialized state = iota
	initialized
	closed
)

// Bootstrapper runs and shuts down extensions as declared by a strategy.
type Bootstrapper[E any] struct {
	mu         sync.Mutex
	state      state
	busy       bool
	shutDown   bool
	extensions []E

	strategy         Strategy[E]
	reportingCtx     *reporting.Context
	runExecutor      execution.Executor[E]
	shutdownExecutor execution.Executor[E]

	reporters reporting.Reporters
	logger    *zap.Logger
}

func New[E any](opts ...Option[E]) *Bootstrapper[E] {
	b := &Bootstrapper[E]{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Initialize binds the bootstrapper to strategy. It can only be called once.
func (b *Bootstrapper[E]) Initialize(strategy Strategy[E]) error {
	if strategy == nil {
		return ErrStrategyMustBeSet
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case initialized:
		return errAlreadyInitialized
	case closed:
		return errClosed
	}

	b.strategy = strategy
	b.reportingCtx = strategy.CreateReportingContext()
	if b.reportingCtx == nil {
		b.reportingCtx = reporting.NewContext()
	}

	b.runExecutor = strategy.CreateRunExecutor()
	b.shutdownExecutor = strategy.CreateShutdownExecutor()
	b.state = initialized

	b.logger.Debug("bootstrapper initialized", zap.String("strategy", reporting.TypeName(strategy)))

	return nil
}

// AddExtension tracks extension. Extensions are handed to executables in the
// order they were added.
func (b *Bootstrapper[E]) AddExtension(extension E) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := b.checkInitialized()
	if err != nil {
		return err
	}

	b.extensions = append(b.extensions, extension)
	record := b.reportingCtx.CreateExtensionContext(extension)

	b.logger.Debug("extension added", zap.String("extension", record.Name()))

	return nil
}

// Extensions returns the tracked extensions.
func (b *Bootstrapper[E]) Extensions() []E {
	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.extensions)
}

// Run resolves the extensions then executes the run syntax. Errors returned by
// behaviors and actions are returned as is.
func (b *Bootstrapper[E]) Run() error {
	err := b.acquire()
	if err != nil {
		return err
	}
	defer b.release()

	b.mu.Lock()
	b.shutDown = false
	b.mu.Unlock()

	runSyntax, err := b.strategy.BuildRunSyntax()
	if err != nil {
		return errors.Wrap(err, "unable to run")
	}

	resolver := b.strategy.CreateExtensionResolver()
	if resolver != nil {
		err = resolver.Resolve(b)
		if err != nil {
			return errors.Wrap(err, "unable to resolve extensions")
		}
	}

	ctx := b.reportingCtx.CreateRunExecutionContext(b.runExecutor)
	extensions := b.Extensions()

	b.logger.Info("running", zap.Int("extensions", len(extensions)), zap.String("executor", b.runExecutor.Name()))

	err = b.runExecutor.Execute(runSyntax, extensions, ctx)
	if err != nil {
		b.logger.Error("run failed", zap.Error(err))
	}

	return err
}

// Shutdown executes the shutdown syntax. The reporters are called afterwards,
// whether the shutdown succeeded or not.
func (b *Bootstrapper[E]) Shutdown() error {
	err := b.acquire()
	if err != nil {
		return err
	}
	defer b.release()

	return b.shutdown()
}

// Close shuts down the bootstrapper unless it already was, then closes the
// strategy. Reporters are called before the strategy is closed. Closing twice
// is a no-op.
func (b *Bootstrapper[E]) Close() error {
	b.mu.Lock()
	switch {
	case b.state == closed:
		b.mu.Unlock()

		return nil
	case b.state == uninitialized:
		b.state = closed
		b.mu.Unlock()

		return nil
	case b.busy:
		b.mu.Unlock()

		return errBusy
	}

	b.busy = true
	alreadyShutDown := b.shutDown
	b.mu.Unlock()

	var err error
	if !alreadyShutDown {
		err = b.shutdown()
	}

	err = multierr.Append(err, errors.Wrap(b.strategy.Close(), "unable to close strategy"))

	b.mu.Lock()
	b.state = closed
	b.busy = false
	b.mu.Unlock()

	return err
}

func (b *Bootstrapper[E]) shutdown() (err error) {
	defer func() {
		b.mu.Lock()
		b.shutDown = true
		b.mu.Unlock()

		err = multierr.Append(err, b.report())
	}()

	shutdownSyntax, err := b.strategy.BuildShutdownSyntax()
	if err != nil {
		return errors.Wrap(err, "unable to shut down")
	}

	ctx := b.reportingCtx.CreateShutdownExecutionContext(b.shutdownExecutor)
	extensions := b.Extensions()

	b.logger.Info("shutting down", zap.Int("extensions", len(extensions)), zap.String("executor", b.shutdownExecutor.Name()))

	err = b.shutdownExecutor.Execute(shutdownSyntax, extensions, ctx)
	if err != nil {
		b.logger.Error("shutdown failed", zap.Error(err))
	}

	return err
}

func (b *Bootstrapper[E]) report() error {
	if len(b.reporters) == 0 {
		return nil
	}

	err := b.reporters.Report(b.reportingCtx)
	if err != nil {
		return errors.Wrap(err, "unable to report")
	}

	return nil
}

func (b *Bootstrapper[E]) checkInitialized() error {
	switch b.state {
	case uninitialized:
		return errNotInitialized
	case closed:
		return errClosed
	}

	return nil
}

// acquire marks the bootstrapper busy for a run or a shutdown.
func (b *Bootstrapper[E]) acquire() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := b.checkInitialized()
	if err != nil {
		return err
	}

	if b.busy {
		return errBusy
	}

	b.busy = true

	return nil
}

func (b *Bootstrapper[E]) release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.busy = false
}

var _ ExtensionPoint[any] = (*Bootstrapper[any])(nil)
