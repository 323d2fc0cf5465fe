// Package behavior holds behaviors which apply to any kind of extension.
package behavior

import (
	"io"
	"iter"

	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/reporting"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/syntax"
)

// CloseExtensions closes the extensions which implement io.Closer, in the
// order they are given. It stops at the first error.
type CloseExtensions[E any] struct{}

func NewCloseExtensions[E any]() *CloseExtensions[E] {
	return &CloseExtensions[E]{}
}

func (b *CloseExtensions[E]) Name() string {
	return reporting.TypeName(b)
}

func (b *CloseExtensions[E]) Describe() string {
	return "Closes all extensions which implement io.Closer."
}

func (b *CloseExtensions[E]) Behave(extensions iter.Seq[E]) error {
	for extension := range extensions {
		closer, ok := any(extension).(io.Closer)
		if !ok {
			continue
		}

		err := closer.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

var _ syntax.Behavior[any] = (*CloseExtensions[any])(nil)
