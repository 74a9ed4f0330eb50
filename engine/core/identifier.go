package core

import "github.com/google/uuid"

// RunID identifies one playback run. It tags log lines and frames so that
// output of concurrent runs can be told apart.
type RunID = uuid.UUID

func NewRunID() RunID {
	return uuid.New()
}

// ParseRunID accepts the canonical textual form.
func ParseRunID(s string) (RunID, error) {
	return uuid.Parse(s)
}

// ShortRunID returns the first eight hex digits, used as a log prefix.
func ShortRunID(id RunID) string {
	return id.String()[:8]
}
