// Package syntax declares what a bootstrapper does during a run or a shutdown.
//
// A Syntax is an ordered list of executables. Each executable owns an action, which runs either once or once per
// extension, and an ordered list of behaviors. Behaviors are cross-cutting work, such as loading configuration or
// closing resources, and they always run before the action of their executable, in the order they were attached.
//
// A Builder is the way to declare a syntax:
//
//	b := syntax.NewBuilder[Extension]()
//	b.Begin().With(logging).End().With(closing)
//	b.Execute("prepare", prepare).
//		ExecuteOnExtension("Start", Extension.Start).With(timing)
//	syntax.ExecuteWithInitializer(b, "loadSettings", loadSettings, "Configure", configure).
//		WithContext("validate", newValidation)
//	s, err := b.Build()
//
// The begin executable always runs first and the end executable always runs last, whatever the order of the calls.
// Every other call to Execute, ExecuteOnExtension or ExecuteWithInitializer appends exactly one executable, and
// consecutive With calls attach behaviors to that same executable.
//
// Behaviors may also be created when their executable executes, from a provider (WithLazy) or from the context value
// returned by the initializer (WithContext). Executables receive the extensions as an iter.Seq so the same sequence is
// walked by every behavior and action in the order given by the caller.
package syntax
