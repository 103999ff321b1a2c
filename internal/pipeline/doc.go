// Package pipeline wires the alignment engine and the lyrics core into the
// two end-to-end flows: free transcription (segmenter) and guided alignment
// (mapper, repairer, section labeler). It owns audio preparation, the
// single-run work-directory lock, atomic document output, and run-history
// recording.
package pipeline
