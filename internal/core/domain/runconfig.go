package domain

import "time"

// DefaultAPIBase is the release API origin queried for the latest
// version tag.
const DefaultAPIBase = "https://api.github.com"

// RunConfig carries the immutable parameters of a single run. It is
// built once at process entry and passed explicitly into every
// component; there is no package-level configuration state.
type RunConfig struct {
	StartedAt  time.Time
	TargetRoot string // optional explicit installation root
	Force      bool   // skip confirmation prompts
	LogFile    string // optional append-mode log sink
	APIBase    string // release API origin
}

// NewRunConfig builds a RunConfig stamped with the current time. An
// empty apiBase falls back to DefaultAPIBase.
func NewRunConfig(targetRoot string, force bool, logFile, apiBase string) RunConfig {
	if apiBase == "" {
		apiBase = DefaultAPIBase
	}

	return RunConfig{
		StartedAt:  time.Now(),
		TargetRoot: targetRoot,
		Force:      force,
		LogFile:    logFile,
		APIBase:    apiBase,
	}
}
