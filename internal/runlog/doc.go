// Package runlog persists a history of completed alignment runs in a local
// SQLite database so `lyricsync runs` can show what was produced when, with
// which diagnostics. The history is advisory; failures to record never block
// a run's output.
package runlog
