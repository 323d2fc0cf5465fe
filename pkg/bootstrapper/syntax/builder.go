package syntax

import (
	"slices"

	"github.com/pkg/errors"
)

// ErrNoExecutable is reported by Build when a behavior was attached before
// any executable existed.
var ErrNoExecutable = errors.New("no executable to attach the behavior to")

const (
	beginToken = "begin"
	endToken   = "end"
)

// Builder declares a syntax. Behaviors attach to the executable appended last.
type Builder[E any] struct {
	syntax *Syntax[E]
	last   Executable[E]
	err    error
}

// NewBuilder creates an empty builder.
func NewBuilder[E any]() *Builder[E] {
	return &Builder[E]{syntax: &Syntax[E]{}}
}

// Begin returns the chain of the begin executable, which always runs first.
// It is created on the first call only.
func (b *Builder[E]) Begin() *BeginSyntax[E] {
	if b.syntax.begin == nil {
		b.syntax.begin = NewActionExecutable[E](beginToken, nil)
	}

	b.last = b.syntax.begin

	return &BeginSyntax[E]{builder: b}
}

// Execute appends an executable running action once.
func (b *Builder[E]) Execute(token string, action func() error) *Builder[E] {
	b.append(NewActionExecutable[E](token, action))

	return b
}

// ExecuteOnExtension appends an executable running action on each extension.
func (b *Builder[E]) ExecuteOnExtension(token string, action func(E) error) *Builder[E] {
	b.append(NewActionOnExtensionExecutable(token, action))

	return b
}

// With attaches behavior to the executable appended last.
func (b *Builder[E]) With(behavior Behavior[E]) *Builder[E] {
	b.attach(behavior)

	return b
}

// WithLazy attaches a behavior created by create when the executable appended
// last executes.
func (b *Builder[E]) WithLazy(token string, create func() Behavior[E]) *Builder[E] {
	b.attach(Lazy(token, create))

	return b
}

// Build returns the declared syntax. Later calls on the builder do not change
// a syntax already built.
func (b *Builder[E]) Build() (*Syntax[E], error) {
	if b.err != nil {
		return nil, b.err
	}

	return &Syntax[E]{
		begin: b.syntax.begin,
		body:  slices.Clone(b.syntax.body),
		end:   b.syntax.end,
	}, nil
}

func (b *Builder[E]) append(executable Executable[E]) {
	b.syntax.body = append(b.syntax.body, executable)
	b.last = executable
}

func (b *Builder[E]) attach(behavior Behavior[E]) {
	if b.last == nil {
		if b.err == nil {
			b.err = ErrNoExecutable
		}

		return
	}

	b.last.Add(behavior)
}

// BeginSyntax attaches behaviors to the begin executable.
type BeginSyntax[E any] struct {
	builder *Builder[E]
}

func (s *BeginSyntax[E]) With(behavior Behavior[E]) *BeginSyntax[E] {
	s.builder.syntax.begin.Add(behavior)

	return s
}

func (s *BeginSyntax[E]) WithLazy(token string, create func() Behavior[E]) *BeginSyntax[E] {
	return s.With(Lazy(token, create))
}

// End returns the chain of the end executable, which always runs last.
// It is created on the first call only.
func (s *BeginSyntax[E]) End() *EndSyntax[E] {
	b := s.builder
	if b.syntax.end == nil {
		b.syntax.end = NewActionExecutable[E](endToken, nil)
	}

	b.last = b.syntax.end

	return &EndSyntax[E]{builder: b}
}

// EndSyntax attaches behaviors to the end executable.
type EndSyntax[E any] struct {
	builder *Builder[E]
}

func (s *EndSyntax[E]) With(behavior Behavior[E]) *EndSyntax[E] {
	s.builder.syntax.end.Add(behavior)

	return s
}

func (s *EndSyntax[E]) WithLazy(token string, create func() Behavior[E]) *EndSyntax[E] {
	return s.With(Lazy(token, create))
}

// ContextSyntax attaches behaviors to an executable with an initializer. It
// embeds the builder so the declaration can go on.
type ContextSyntax[E, C any] struct {
	*Builder[E]
	executable *ActionOnExtensionWithInitializerExecutable[E, C]
}

// ExecuteWithInitializer appends an executable which creates a context with
// initializer once per execution and runs action on each extension with it.
func ExecuteWithInitializer[E, C any](
	b *Builder[E],
	initializerToken string,
	initializer func() (C, error),
	actionToken string,
	action func(E, C) error,
) *ContextSyntax[E, C] {
	executable := NewActionOnExtensionWithInitializerExecutable(initializerToken, initializer, actionToken, action)
	b.append(executable)

	return &ContextSyntax[E, C]{Builder: b, executable: executable}
}

func (s *ContextSyntax[E, C]) With(behavior Behavior[E]) *ContextSyntax[E, C] {
	s.executable.Add(behavior)

	return s
}

func (s *ContextSyntax[E, C]) WithLazy(token string, create func() Behavior[E]) *ContextSyntax[E, C] {
	return s.With(Lazy(token, create))
}

// WithContext attaches a behavior created from the context value each time
// the executable executes.
func (s *ContextSyntax[E, C]) WithContext(token string, create func(C) Behavior[E]) *ContextSyntax[E, C] {
	return s.With(&contextBehavior[E, C]{token: token, create: create})
}
