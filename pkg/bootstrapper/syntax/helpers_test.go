package syntax_test

import (
	"iter"
	"testing"

	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/reporting"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/syntax"
)

type extension struct {
	name string
}

// recorder collects what ran, in order.
type recorder struct {
	calls []string
}

func (r *recorder) add(call string) {
	r.calls = append(r.calls, call)
}

func (r *recorder) behavior(name string) syntax.Behavior[*extension] {
	return syntax.NewBehavior(name, func(extensions iter.Seq[*extension]) error {
		r.add(name)
		for ext := range extensions {
			r.add(name + ":" + ext.name)
		}

		return nil
	})
}

// executableContext records the behaviors announced by an executable.
type executableContext struct {
	behaviors []string
}

func (c *executableContext) CreateBehaviorContext(behavior reporting.Describable) reporting.BehaviorContext {
	c.behaviors = append(c.behaviors, behavior.Describe())

	return nil
}

func extensions(t *testing.T, names ...string) iter.Seq[*extension] {
	t.Helper()

	return func(yield func(*extension) bool) {
		for _, name := range names {
			if !yield(&extension{name: name}) {
				return
			}
		}
	}
}

// forbiddenExtensions fails the test when enumerated.
func forbiddenExtensions(t *testing.T) iter.Seq[*extension] {
	t.Helper()

	return func(func(*extension) bool) {
		t.Errorf("extensions must not be enumerated")
	}
}

func execute(t *testing.T, s *syntax.Syntax[*extension], exts iter.Seq[*extension]) error {
	t.Helper()

	for _, executable := range s.Executables() {
		err := executable.Execute(exts, &executableContext{})
		if err != nil {
			return err
		}
	}

	return nil
}
