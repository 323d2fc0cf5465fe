package reporting

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// ErrNilContext is returned by reporters given no reporting context.
var ErrNilContext = errors.New("reporting context must be set")

// record holds the name and description captured when a node is created.
type record struct {
	name        string
	description string
}

func newRecord(describable Describable) record {
	return record{
		name:        describable.Name(),
		description: describable.Describe(),
	}
}

// Name returns the name captured at creation.
func (r record) Name() string {
	return r.name
}

// Description returns the description captured at creation.
func (r record) Description() string {
	return r.description
}

// Context is the root of the reporting tree of one bootstrapper.
type Context struct {
	run        *ExecutionRecord
	shutdown   *ExecutionRecord
	extensions []*ExtensionRecord
}

// NewContext creates an empty reporting tree.
func NewContext() *Context {
	return &Context{}
}

// CreateRunExecutionContext starts recording a run performed by executor.
// A previous run record is replaced.
func (c *Context) CreateRunExecutionContext(executor Describable) *ExecutionRecord {
	c.run = &ExecutionRecord{record: newRecord(executor)}

	return c.run
}

// CreateShutdownExecutionContext starts recording a shutdown performed by executor.
func (c *Context) CreateShutdownExecutionContext(executor Describable) *ExecutionRecord {
	c.shutdown = &ExecutionRecord{record: newRecord(executor)}

	return c.shutdown
}

// CreateExtensionContext records an extension added to the bootstrapper.
func (c *Context) CreateExtensionContext(extension any) *ExtensionRecord {
	name, description := Describe(extension)
	ext := &ExtensionRecord{record: record{name: name, description: description}}
	c.extensions = append(c.extensions, ext)

	return ext
}

// Run returns the last run record, nil when nothing ran.
func (c *Context) Run() *ExecutionRecord {
	return c.run
}

// Shutdown returns the last shutdown record, nil when nothing was shut down.
func (c *Context) Shutdown() *ExecutionRecord {
	return c.shutdown
}

// Extensions returns the extension records in the order extensions were added.
func (c *Context) Extensions() []*ExtensionRecord {
	return append([]*ExtensionRecord(nil), c.extensions...)
}

// ExecutionRecord is the reporting node of an executor.
type ExecutionRecord struct {
	record
	executables []*ExecutableRecord
}

// CreateExecutableContext appends a node for executable.
func (e *ExecutionRecord) CreateExecutableContext(executable Describable) ExecutableContext {
	child := &ExecutableRecord{record: newRecord(executable)}
	e.executables = append(e.executables, child)

	return child
}

// Executables returns the executable nodes in invocation order.
func (e *ExecutionRecord) Executables() []*ExecutableRecord {
	return append([]*ExecutableRecord(nil), e.executables...)
}

// ExecutableRecord is the reporting node of one executable invocation.
type ExecutableRecord struct {
	record
	behaviors []*BehaviorRecord
}

// CreateBehaviorContext appends a node for behavior.
func (e *ExecutableRecord) CreateBehaviorContext(behavior Describable) BehaviorContext {
	child := &BehaviorRecord{record: newRecord(behavior)}
	e.behaviors = append(e.behaviors, child)

	return child
}

// Behaviors returns the behavior nodes in invocation order.
func (e *ExecutableRecord) Behaviors() []*BehaviorRecord {
	return append([]*BehaviorRecord(nil), e.behaviors...)
}

// BehaviorRecord is the reporting node of one behavior invocation.
type BehaviorRecord struct {
	record
}

// ExtensionRecord is the reporting node of an extension.
type ExtensionRecord struct {
	record
}

// Describe returns the name and description of v. Values which are not
// Describable are named after their type and have no description.
func Describe(v any) (string, string) {
	if d, ok := v.(Describable); ok {
		return d.Name(), d.Describe()
	}

	return TypeName(v), ""
}

// TypeName returns the package qualified name of the type of v, without
// pointer indirections or type arguments.
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	name := t.Name()
	if idx := strings.IndexByte(name, '['); idx >= 0 {
		name = name[:idx]
	}

	switch {
	case name == "":
		return t.String()
	case t.PkgPath() == "":
		return name
	default:
		return t.PkgPath() + "." + name
	}
}

var (
	_ ExecutionContext  = (*ExecutionRecord)(nil)
	_ ExecutableContext = (*ExecutableRecord)(nil)
	_ BehaviorContext   = (*BehaviorRecord)(nil)
)
