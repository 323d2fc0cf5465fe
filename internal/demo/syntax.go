package demo

import (
	"iter"
	"slices"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/askiada/go-bootstrapper/pkg/bootstrapper"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/behavior"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/configuration"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/syntax"
)

// Registry holds the names of the extensions registered during a run.
type Registry struct {
	mu    sync.Mutex
	names []string
}

func NewRegistry() (*Registry, error) {
	return &Registry{}, nil
}

func (r *Registry) Register(extension Extension) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := configuration.SectionName(extension)
	if slices.Contains(r.names, name) {
		return errors.Errorf("extension %s is already registered", name)
	}

	r.names = append(r.names, name)

	return nil
}

// Check fails when two extensions share a name, or when an extension is
// already registered.
func (r *Registry) Check(extensions iter.Seq[Extension]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := slices.Clone(r.names)
	for extension := range extensions {
		name := configuration.SectionName(extension)
		if slices.Contains(seen, name) {
			return errors.Errorf("extension %s is declared more than once", name)
		}

		seen = append(seen, name)
	}

	return nil
}

func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.names)
}

// DefineRun configures the extensions from loader, starts them, then
// registers them. loader can be nil.
func DefineRun(loader configuration.Loader, logger *zap.Logger) func(b *syntax.Builder[Extension]) {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(b *syntax.Builder[Extension]) {
		b.Begin().
			With(configuration.NewExtensionSectionBehavior[Extension](loader)).
			With(configuration.NewSectionBehavior[Extension](loader))

		b.ExecuteOnExtension("Start", Extension.Start)

		register := func(extension Extension, r *Registry) error {
			return r.Register(extension)
		}

		syntax.ExecuteWithInitializer(b, "NewRegistry", NewRegistry, "Register", register).
			WithContext("Registry", func(r *Registry) syntax.Behavior[Extension] {
				return syntax.NewBehavior("Checks that the extensions have distinct names.", r.Check)
			}).
			With(syntax.NewBehavior("Logs the extensions about to be registered.", func(extensions iter.Seq[Extension]) error {
				for extension := range extensions {
					logger.Debug("registering extension", zap.String("name", configuration.SectionName(extension)))
				}

				return nil
			}))
	}
}

// DefineShutdown stops the extensions then closes them. The shutdown executor
// runs it in reverse, so the begin executable closing the extensions runs
// last.
func DefineShutdown(b *syntax.Builder[Extension]) {
	b.Begin().With(behavior.NewCloseExtensions[Extension]())
	b.ExecuteOnExtension("Stop", Extension.Stop)
}

// Resolver adds the extensions called names to the bootstrapper.
func Resolver(names []string, logger *zap.Logger) bootstrapper.ExtensionResolver[Extension] {
	return bootstrapper.ExtensionResolverFunc[Extension](func(point bootstrapper.ExtensionPoint[Extension]) error {
		for _, name := range names {
			extension, err := NewExtension(name, logger)
			if err != nil {
				return err
			}

			err = point.AddExtension(extension)
			if err != nil {
				return err
			}
		}

		return nil
	})
}
