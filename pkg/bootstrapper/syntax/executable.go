package syntax

import (
	"fmt"
	"iter"
	"slices"

	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/reporting"
)

// Executable is one step of a syntax. It runs its behaviors in the order they
// were added, then its own action.
type Executable[E any] interface {
	reporting.Describable
	Add(behavior Behavior[E])
	Behaviors() []Behavior[E]
	Execute(extensions iter.Seq[E], ctx reporting.ExecutableContext) error
}

type behaviors[E any] struct {
	list []Behavior[E]
}

// Add appends behavior.
func (b *behaviors[E]) Add(behavior Behavior[E]) {
	b.list = append(b.list, behavior)
}

// Behaviors returns the attached behaviors in insertion order.
func (b *behaviors[E]) Behaviors() []Behavior[E] {
	return slices.Clone(b.list)
}

func (b *behaviors[E]) behave(extensions iter.Seq[E], ctx reporting.ExecutableContext, value any) error {
	for _, behavior := range b.list {
		if p, ok := behavior.(provider[E]); ok {
			behavior = p.resolve(value)
		}

		ctx.CreateBehaviorContext(behavior)

		err := behavior.Behave(extensions)
		if err != nil {
			return err
		}
	}

	return nil
}

// ActionExecutable runs a single action, ignoring the extensions.
type ActionExecutable[E any] struct {
	behaviors[E]
	token  string
	action func() error
}

// NewActionExecutable creates an executable running action once. token
// stands for action in the description.
func NewActionExecutable[E any](token string, action func() error) *ActionExecutable[E] {
	if action == nil {
		action = func() error { return nil }
	}

	return &ActionExecutable[E]{token: token, action: action}
}

func (e *ActionExecutable[E]) Name() string {
	return reporting.TypeName(e)
}

func (e *ActionExecutable[E]) Describe() string {
	return fmt.Sprintf(`Executes "%s" during bootstrapping.`, e.token)
}

// Execute runs the behaviors then the action. The extensions are handed to
// the behaviors only, the action never enumerates them.
func (e *ActionExecutable[E]) Execute(extensions iter.Seq[E], ctx reporting.ExecutableContext) error {
	err := e.behave(extensions, ctx, nil)
	if err != nil {
		return err
	}

	return e.action()
}

// ActionOnExtensionExecutable runs its action once per extension.
type ActionOnExtensionExecutable[E any] struct {
	behaviors[E]
	token  string
	action func(E) error
}

// NewActionOnExtensionExecutable creates an executable running action on
// each extension.
func NewActionOnExtensionExecutable[E any](token string, action func(E) error) *ActionOnExtensionExecutable[E] {
	return &ActionOnExtensionExecutable[E]{token: token, action: action}
}

func (e *ActionOnExtensionExecutable[E]) Name() string {
	return reporting.TypeName(e)
}

func (e *ActionOnExtensionExecutable[E]) Describe() string {
	return fmt.Sprintf(`Executes "%s" on each extension during bootstrapping.`, e.token)
}

func (e *ActionOnExtensionExecutable[E]) Execute(extensions iter.Seq[E], ctx reporting.ExecutableContext) error {
	err := e.behave(extensions, ctx, nil)
	if err != nil {
		return err
	}

	for extension := range extensions {
		err = e.action(extension)
		if err != nil {
			return err
		}
	}

	return nil
}

// ActionOnExtensionWithInitializerExecutable creates a context value once per
// execution and shares it with the action run on each extension.
type ActionOnExtensionWithInitializerExecutable[E, C any] struct {
	behaviors[E]
	initializerToken string
	initializer      func() (C, error)
	actionToken      string
	action           func(E, C) error
}

// NewActionOnExtensionWithInitializerExecutable creates an executable which
// calls initializer once and then action on each extension with its result.
func NewActionOnExtensionWithInitializerExecutable[E, C any](
	initializerToken string,
	initializer func() (C, error),
	actionToken string,
	action func(E, C) error,
) *ActionOnExtensionWithInitializerExecutable[E, C] {
	return &ActionOnExtensionWithInitializerExecutable[E, C]{
		initializerToken: initializerToken,
		initializer:      initializer,
		actionToken:      actionToken,
		action:           action,
	}
}

func (e *ActionOnExtensionWithInitializerExecutable[E, C]) Name() string {
	return reporting.TypeName(e)
}

func (e *ActionOnExtensionWithInitializerExecutable[E, C]) Describe() string {
	return fmt.Sprintf(
		`Initializes the context once with "%s" and executes "%s" on each extension during bootstrapping.`,
		e.initializerToken, e.actionToken,
	)
}

// Execute calls the initializer before anything else, then the behaviors,
// some of which may be built from the context value, and finally the action.
func (e *ActionOnExtensionWithInitializerExecutable[E, C]) Execute(extensions iter.Seq[E], ctx reporting.ExecutableContext) error {
	value, err := e.initializer()
	if err != nil {
		return err
	}

	err = e.behave(extensions, ctx, value)
	if err != nil {
		return err
	}

	for extension := range extensions {
		err = e.action(extension, value)
		if err != nil {
			return err
		}
	}

	return nil
}

var (
	_ Executable[any] = (*ActionExecutable[any])(nil)
	_ Executable[any] = (*ActionOnExtensionExecutable[any])(nil)
	_ Executable[any] = (*ActionOnExtensionWithInitializerExecutable[any, any])(nil)
)
