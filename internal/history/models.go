package history

import "time"

// Action records what the organizer did with a single file.
type Action string

const (
	ActionMoved   Action = "moved"
	ActionDeleted Action = "deleted"
	ActionSkipped Action = "skipped"
	ActionFailed  Action = "failed"
)

// Run is one invocation of the organizer over a directory.
type Run struct {
	ID         string
	Root       string
	StartedAt  time.Time
	FinishedAt time.Time
	Moved      int
	Deleted    int
	Skipped    int
	Failed     int
}

// FileRecord is the outcome for one file within a run. Destination is empty
// for deletions and skips; Error is empty unless Action is ActionFailed.
type FileRecord struct {
	RunID       string
	Name        string
	Destination string
	Action      Action
	Error       string
}
