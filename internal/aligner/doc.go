// Package aligner wraps the external speech alignment engine (stable-ts
// Whisper, launched through uvx) behind Transcribe and Align operations.
//
// The engine call is opaque and all-or-nothing: partial results are never
// consumed, and a failed invocation aborts the run before any output is
// written. A pluggable command runner lets tests exercise the service
// without the real binaries.
package aligner
