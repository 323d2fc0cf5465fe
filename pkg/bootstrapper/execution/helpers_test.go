package execution_test

import (
	"iter"
	"slices"

	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/reporting"
	"github.com/askiada/go-bootstrapper/pkg/bootstrapper/syntax"
)

type call struct {
	executable string
	extensions []string
}

// fakeExecutable records its invocations in calls.
type fakeExecutable struct {
	name  string
	err   error
	calls *[]call
}

func (e *fakeExecutable) Name() string {
	return e.name
}

func (e *fakeExecutable) Describe() string {
	return "describes " + e.name
}

func (e *fakeExecutable) Add(syntax.Behavior[string]) {}

func (e *fakeExecutable) Behaviors() []syntax.Behavior[string] {
	return nil
}

func (e *fakeExecutable) Execute(extensions iter.Seq[string], _ reporting.ExecutableContext) error {
	*e.calls = append(*e.calls, call{executable: e.name, extensions: slices.Collect(extensions)})

	return e.err
}

type fakeSyntax []syntax.Executable[string]

func (s fakeSyntax) Executables() []syntax.Executable[string] {
	return s
}

func newFakeSyntax(calls *[]call, names ...string) fakeSyntax {
	s := make(fakeSyntax, 0, len(names))
	for _, name := range names {
		s = append(s, &fakeExecutable{name: name, calls: calls})
	}

	return s
}

func executableNames(record *reporting.ExecutionRecord) []string {
	var names []string
	for _, executable := range record.Executables() {
		names = append(names, executable.Name())
	}

	return names
}
