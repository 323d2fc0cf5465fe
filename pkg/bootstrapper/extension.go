package bootstrapper

// ExtensionPoint accepts extensions. The bootstrapper is the extension point
// handed to resolvers.
type ExtensionPoint[E any] interface {
	AddExtension(extension E) error
}

// ExtensionResolver discovers extensions before each run.
type ExtensionResolver[E any] interface {
	Resolve(point ExtensionPoint[E]) error
}

// ExtensionResolverFunc adapts a function to an ExtensionResolver.
type ExtensionResolverFunc[E any] func(point ExtensionPoint[E]) error

func (f ExtensionResolverFunc[E]) Resolve(point ExtensionPoint[E]) error {
	return f(point)
}

// NullExtensionResolver resolves nothing.
type NullExtensionResolver[E any] struct{}

func (NullExtensionResolver[E]) Resolve(ExtensionPoint[E]) error {
	return nil
}

var (
	_ ExtensionResolver[any] = NullExtensionResolver[any]{}
	_ ExtensionResolver[any] = ExtensionResolverFunc[any](nil)
)
