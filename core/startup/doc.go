// Package startup sequences the service boot.
//
// The Sequencer moves NotStarted -> ConnectingDB -> Listening, or to the
// terminal Failed state when the database connection (or the bind) fails.
// The listener is never bound before the database is confirmed, so no
// partially started server is exposed.
//
// Start returns an Outcome instead of exiting; the command layer turns
// Outcome.ExitCode into the process exit status.
//
//	seq := startup.New(startup.Config{Port: 4000, Logger: log}, connect, nil)
//	out := seq.Start(ctx)
//	if out.State == startup.Failed {
//	    os.Exit(out.ExitCode())
//	}
//	app.Listener(out.Listener)
package startup
