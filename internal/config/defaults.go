package config

const (
	defaultWorkDir   = "~/.local/share/lyricsync/work"
	defaultLogDir    = "~/.local/share/lyricsync/logs"
	defaultCommand   = "uvx"
	defaultModel     = "base"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"

	defaultPauseThreshold       = 0.8
	defaultFallbackWordDuration = 0.3
	defaultMaxWordGap           = 4.0
	defaultMaxLineGap           = 10.0
	defaultWordNudge            = 0.28
	defaultLineNudge            = 0.6
	defaultLineGapEstimate      = 2.0
	defaultMaxPasses            = 5
	defaultSynthesisGap         = 0.3
	defaultSectionLeadSeconds   = 0.5
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkDir: defaultWorkDir,
			LogDir:  defaultLogDir,
		},
		Aligner: Aligner{
			Command:   defaultCommand,
			Model:     defaultModel,
			Stabilize: true,
		},
		Segmentation: Segmentation{
			PauseThreshold:       defaultPauseThreshold,
			FallbackWordDuration: defaultFallbackWordDuration,
		},
		Repair: Repair{
			MaxWordGap:      defaultMaxWordGap,
			MaxLineGap:      defaultMaxLineGap,
			WordNudge:       defaultWordNudge,
			LineNudge:       defaultLineNudge,
			LineGapEstimate: defaultLineGapEstimate,
			MaxPasses:       defaultMaxPasses,
			SynthesisGap:    defaultSynthesisGap,
		},
		Sections: Sections{
			LeadSeconds: defaultSectionLeadSeconds,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
