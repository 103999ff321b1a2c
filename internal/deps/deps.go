// Package deps reports the availability of the external binaries lyricsync
// shells out to. Audio decoding is an environment precondition, not core
// logic; this package exists so the CLI can explain a missing prerequisite
// before a long alignment run fails.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"lyricsync/internal/aligner"
)

// Requirement defines an external dependency lyricsync relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements returns the binaries a run needs. The aligner runner command
// is configurable, so it is passed in.
func Requirements(alignerCommand string) []Requirement {
	return []Requirement{
		{
			Name:        "ffmpeg",
			Command:     "ffmpeg",
			Description: "Audio extraction and resampling",
		},
		{
			Name:        "aligner runner",
			Command:     alignerCommand,
			Description: "Launches the speech alignment engine",
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// Missing returns an error naming the first required binary that is not
// available, or nil when everything needed is present.
func Missing(statuses []Status) error {
	for _, status := range statuses {
		if status.Optional || status.Available {
			continue
		}
		return fmt.Errorf("%w: missing required dependency %s (%s)", aligner.ErrCollaboratorUnavailable, status.Name, status.Detail)
	}
	return nil
}
