// Package bootstrapper runs the lifecycle of a set of extensions.
//
// An extension is any value taking part in the lifecycle of an application: a cache to warm up, a connection pool,
// a plugin. The bootstrapper does not know anything about them. What happens to the extensions during a run and
// during a shutdown is declared by a Strategy as two syntaxes (see package syntax), which are replayed by executors
// (see package execution) on the extensions in the order they were added.
//
// The lifecycle is strict: Initialize binds the bootstrapper to a strategy exactly once, then extensions are added
// and the bootstrapper can be run and shut down. Close shuts down when needed and releases the strategy. Any call out
// of this order fails with an InvalidStateError and has no side effect.
//
//	b := bootstrapper.New[Extension](bootstrapper.WithReporter[Extension](reporting.NewLogReporter(logger)))
//	err := b.Initialize(bootstrapper.NewDefaultStrategy(defineRun, defineShutdown))
//	err = b.AddExtension(cache)
//	err = b.Run()
//	defer b.Close()
//
// The default strategy runs the shutdown syntax in reverse. Declaring it in the same order as the run syntax makes
// the last started extension the first stopped, and its begin executable the last to run.
//
// Errors returned by behaviors, actions and initializers stop the current run and are returned unchanged, so they can
// be compared with errors.Is. Every run and shutdown is recorded in a reporting tree which is handed to the reporters
// after each shutdown, including failed ones.
package bootstrapper
