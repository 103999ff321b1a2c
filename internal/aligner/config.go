package aligner

// Config captures runtime settings for alignment engine invocations.
type Config struct {
	// Command is the runner used to launch the engine (default "uvx").
	Command string
	// Model is the Whisper model name (e.g. "base", "large-v3").
	Model string
}

// Engine invocation constants.
const (
	// EnginePackage is the Python package uvx resolves and runs.
	EnginePackage = "stable-ts"

	DefaultCommand = "uvx"
	DefaultModel   = "base"
	OutputFormat   = "json"
)

// Command names for external tools.
const FFmpegCommand = "ffmpeg"
