package tsr

import "github.com/google/uuid"

// CreatedEvent is published after a record and its creation entry were
// persisted.
type CreatedEvent struct {
	Result TSR
}

// UpdatedEvent is published after a record update landed, carrying the
// changes that were written to the timeline.
type UpdatedEvent struct {
	Result  TSR
	Changes []Change
}

// CommentedEvent is published after a comment was appended to a record's
// timeline.
type CommentedEvent struct {
	PostID uuid.UUID
}
