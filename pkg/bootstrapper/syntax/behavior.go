package syntax

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"

	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/reporting"
)

// ErrNoContext is returned when a behavior built from the shared context of an
// executable is invoked outside of that executable.
var ErrNoContext = errors.New("behavior requires the context of its executable")

// Behavior is a cross-cutting unit of work invoked with all extensions before
// the action of the executable it is attached to.
type Behavior[E any] interface {
	reporting.Describable
	Behave(extensions iter.Seq[E]) error
}

// provider is implemented by behaviors which are only created when their
// executable executes. value is the shared context of the executable, nil
// when it has none.
type provider[E any] interface {
	resolve(value any) Behavior[E]
}

type funcBehavior[E any] struct {
	description string
	behave      func(extensions iter.Seq[E]) error
}

// NewBehavior creates a behavior described by description and running behave.
func NewBehavior[E any](description string, behave func(extensions iter.Seq[E]) error) Behavior[E] {
	return &funcBehavior[E]{description: description, behave: behave}
}

func (b *funcBehavior[E]) Name() string {
	return reporting.TypeName(b)
}

func (b *funcBehavior[E]) Describe() string {
	return b.description
}

func (b *funcBehavior[E]) Behave(extensions iter.Seq[E]) error {
	return b.behave(extensions)
}

type lazyBehavior[E any] struct {
	token  string
	create func() Behavior[E]
}

// Lazy returns a behavior created by create each time its executable
// executes. token describes create in reports.
func Lazy[E any](token string, create func() Behavior[E]) Behavior[E] {
	return &lazyBehavior[E]{token: token, create: create}
}

func (b *lazyBehavior[E]) Name() string {
	return reporting.TypeName(b)
}

func (b *lazyBehavior[E]) Describe() string {
	return fmt.Sprintf(`Creates the behavior with "%s" when executed.`, b.token)
}

func (b *lazyBehavior[E]) Behave(extensions iter.Seq[E]) error {
	return b.create().Behave(extensions)
}

func (b *lazyBehavior[E]) resolve(any) Behavior[E] {
	return b.create()
}

type contextBehavior[E, C any] struct {
	token  string
	create func(C) Behavior[E]
}

func (b *contextBehavior[E, C]) Name() string {
	return reporting.TypeName(b)
}

func (b *contextBehavior[E, C]) Describe() string {
	return fmt.Sprintf(`Creates the behavior with "%s" from the context when executed.`, b.token)
}

func (b *contextBehavior[E, C]) Behave(iter.Seq[E]) error {
	return ErrNoContext
}

func (b *contextBehavior[E, C]) resolve(value any) Behavior[E] {
	ctx, _ := value.(C)

	return b.create(ctx)
}

var (
	_ provider[any] = (*lazyBehavior[any])(nil)
	_ provider[any] = (*contextBehavior[any, any])(nil)
)
