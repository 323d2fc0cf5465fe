package syntax

// Enumerable is what executors replay.
type Enumerable[E any] interface {
	Executables() []Executable[E]
}

// Syntax is the ordered list of executables of a run or a shutdown.
type Syntax[E any] struct {
	begin Executable[E]
	body  []Executable[E]
	end   Executable[E]
}

// NewSyntax creates a syntax made of the given executables, in order.
func NewSyntax[E any](executables ...Executable[E]) *Syntax[E] {
	return &Syntax[E]{body: append([]Executable[E](nil), executables...)}
}

// Executables returns the begin executable if any, the body in definition
// order and the end executable if any.
func (s *Syntax[E]) Executables() []Executable[E] {
	res := make([]Executable[E], 0, s.Len())
	if s.begin != nil {
		res = append(res, s.begin)
	}

	res = append(res, s.body...)

	if s.end != nil {
		res = append(res, s.end)
	}

	return res
}

// Len returns the number of executables.
func (s *Syntax[E]) Len() int {
	total := len(s.body)
	if s.begin != nil {
		total++
	}

	if s.end != nil {
		total++
	}

	return total
}

var _ Enumerable[any] = (*Syntax[any])(nil)
