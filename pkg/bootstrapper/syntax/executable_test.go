package syntax_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/syntax"
)

func TestExecutableBehaviorsKeepInsertionOrder(t *testing.T) {
	rec := &recorder{}
	b1, b2, b3 := rec.behavior("b1"), rec.behavior("b2"), rec.behavior("b3")
	executable := syntax.NewActionExecutable[*extension]("noop", nil)

	executable.Add(b1)
	executable.Add(b2)
	executable.Add(b3)
	executable.Add(b1)

	assert.Equal(t, []syntax.Behavior[*extension]{b1, b2, b3, b1}, executable.Behaviors())
}

func TestActionExecutable(t *testing.T) {
	rec := &recorder{}
	executable := syntax.NewActionExecutable[*extension]("action", func() error {
		rec.add("action")

		return nil
	})
	executable.Add(rec.behavior("first"))
	executable.Add(rec.behavior("second"))
	ctx := &executableContext{}

	err := executable.Execute(extensions(t, "e1"), ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "first:e1", "second", "second:e1", "action"}, rec.calls)
	assert.Equal(t, []string{"first", "second"}, ctx.behaviors)
}

func TestActionExecutableDoesNotEnumerateExtensions(t *testing.T) {
	called := false
	executable := syntax.NewActionExecutable[*extension]("action", func() error {
		called = true

		return nil
	})

	err := executable.Execute(forbiddenExtensions(t), &executableContext{})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestActionOnExtensionExecutable(t *testing.T) {
	rec := &recorder{}
	executable := syntax.NewActionOnExtensionExecutable("ext.Start()", func(ext *extension) error {
		rec.add("action:" + ext.name)

		return nil
	})
	executable.Add(rec.behavior("behavior"))

	err := executable.Execute(extensions(t, "e1", "e2"), &executableContext{})
	require.NoError(t, err)

	assert.Equal(t, []string{"behavior", "behavior:e1", "behavior:e2", "action:e1", "action:e2"}, rec.calls)
}

func TestActionOnExtensionWithInitializerExecutable(t *testing.T) {
	type context struct{ id int }

	initialized := 0
	var received []*context
	rec := &recorder{}

	executable := syntax.NewActionOnExtensionWithInitializerExecutable(
		"newContext",
		func() (*context, error) {
			initialized++
			rec.add("initializer")

			return &context{id: initialized}, nil
		},
		"ext.Configure(ctx)",
		func(ext *extension, ctx *context) error {
			rec.add("action:" + ext.name)
			received = append(received, ctx)

			return nil
		},
	)
	executable.Add(rec.behavior("behavior"))

	err := executable.Execute(extensions(t, "e1", "e2"), &executableContext{})
	require.NoError(t, err)

	assert.Equal(t, 1, initialized)
	require.Len(t, received, 2)
	assert.Same(t, received[0], received[1])
	assert.Equal(t, []string{"initializer", "behavior", "behavior:e1", "behavior:e2", "action:e1", "action:e2"}, rec.calls)
}

func TestActionOnExtensionWithInitializerExecutableRunsInitializerPerExecution(t *testing.T) {
	initialized := 0
	executable := syntax.NewActionOnExtensionWithInitializerExecutable(
		"counter",
		func() (int, error) {
			initialized++

			return initialized, nil
		},
		"noop",
		func(*extension, int) error { return nil },
	)

	require.NoError(t, executable.Execute(extensions(t, "e1", "e2", "e3"), &executableContext{}))
	require.NoError(t, executable.Execute(extensions(t), &executableContext{}))

	assert.Equal(t, 2, initialized)
}

func TestExecutableDescriptions(t *testing.T) {
	tcs := map[string]struct {
		executable  syntax.Executable[*extension]
		name        string
		description string
	}{
		"action": {
			executable:  syntax.NewActionExecutable[*extension]("setup()", nil),
			name:        "github.com/askiada/go-bootstrapper/pkg/bootstrapper/syntax.ActionExecutable",
			description: `Executes "setup()" during bootstrapping.`,
		},
		"action on extension": {
			executable:  syntax.NewActionOnExtensionExecutable("ext.Start()", func(*extension) error { return nil }),
			name:        "github.com/askiada/go-bootstrapper/pkg/bootstrapper/syntax.ActionOnExtensionExecutable",
			description: `Executes "ext.Start()" on each extension during bootstrapping.`,
		},
		"action on extension with initializer": {
			executable: syntax.NewActionOnExtensionWithInitializerExecutable(
				"loadSettings()",
				func() (string, error) { return "", nil },
				`ext.Configure("x")`,
				func(*extension, string) error { return nil },
			),
			name:        "github.com/askiada/go-bootstrapper/pkg/bootstrapper/syntax.ActionOnExtensionWithInitializerExecutable",
			description: `Initializes the context once with "loadSettings()" and executes "ext.Configure("x")" on each extension during bootstrapping.`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.executable.Name())
			assert.Equal(t, tc.description, tc.executable.Describe())
		})
	}
}

func TestExecutableErrorsPropagateUnchanged(t *testing.T) {
	expectedErr := errors.New("user error")
	failing := syntax.NewBehavior("failing", func(iter.Seq[*extension]) error { return expectedErr })

	tcs := map[string]struct {
		executable func(rec *recorder) syntax.Executable[*extension]
		calls      []string
	}{
		"behavior": {
			executable: func(rec *recorder) syntax.Executable[*extension] {
				e := syntax.NewActionExecutable[*extension]("action", func() error {
					rec.add("action")

					return nil
				})
				e.Add(failing)
				e.Add(rec.behavior("after"))

				return e
			},
		},
		"action": {
			executable: func(rec *recorder) syntax.Executable[*extension] {
				return syntax.NewActionOnExtensionExecutable("action", func(ext *extension) error {
					rec.add(ext.name)

					return expectedErr
				})
			},
			calls: []string{"e1"},
		},
		"initializer": {
			executable: func(rec *recorder) syntax.Executable[*extension] {
				e := syntax.NewActionOnExtensionWithInitializerExecutable(
					"init",
					func() (string, error) { return "", expectedErr },
					"action",
					func(ext *extension, _ string) error {
						rec.add(ext.name)

						return nil
					},
				)
				e.Add(rec.behavior("behavior"))

				return e
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			rec := &recorder{}
			err := tc.executable(rec).Execute(extensions(t, "e1", "e2"), &executableContext{})
			assert.Equal(t, expectedErr, err)
			assert.Equal(t, tc.calls, rec.calls)
		})
	}
}

func TestLazyBehaviorCreatedOnExecution(t *testing.T) {
	rec := &recorder{}
	created := 0
	executable := syntax.NewActionExecutable[*extension]("noop", nil)
	executable.Add(syntax.Lazy("newBehavior()", func() syntax.Behavior[*extension] {
		created++

		return rec.behavior("lazy")
	}))

	assert.Zero(t, created)

	ctx := &executableContext{}
	require.NoError(t, executable.Execute(extensions(t, "e1"), ctx))
	require.NoError(t, executable.Execute(extensions(t, "e1"), ctx))

	assert.Equal(t, 2, created)
	assert.Equal(t, []string{"lazy", "lazy:e1", "lazy", "lazy:e1"}, rec.calls)
	assert.Equal(t, []string{"lazy", "lazy"}, ctx.behaviors)
}

func TestLazyBehaviorDescription(t *testing.T) {
	lazy := syntax.Lazy("newBehavior()", func() syntax.Behavior[*extension] { return nil })

	assert.Equal(t, "github.com/askiada/go-bootstrapper/pkg/bootstrapper/syntax.lazyBehavior", lazy.Name())
	assert.Equal(t, `Creates the behavior with "newBehavior()" when executed.`, lazy.Describe())
}
