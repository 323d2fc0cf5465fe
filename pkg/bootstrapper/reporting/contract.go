package reporting

// Describable is implemented by everything that shows up in a report.
type Describable interface {
	// Name identifies the concrete kind, usually through TypeName.
	Name() string
	// Describe returns a human readable sentence about what the kind does.
	Describe() string
}

// Reporter consumes the reporting tree once a bootstrapper finished its work.
type Reporter interface {
	Report(ctx *Context) error
}

// ReporterFunc adapts a function to a Reporter.
type ReporterFunc func(ctx *Context) error

// Report calls f(ctx).
func (f ReporterFunc) Report(ctx *Context) error {
	return f(ctx)
}

// ExecutionContext records the executables run by an executor.
type ExecutionContext interface {
	CreateExecutableContext(executable Describable) ExecutableContext
}

// ExecutableContext records the behaviors run by an executable.
type ExecutableContext interface {
	CreateBehaviorContext(behavior Describable) BehaviorContext
}

// BehaviorContext is the leaf of the reporting tree.
type BehaviorContext interface {
	Name() string
	Description() string
}
