package timeline

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypePostCreated  EventType = "POST_CREATED"
	EventTypeFieldChanged EventType = "FIELD_CHANGED"
	EventTypeComment      EventType = "COMMENT"
)

const MaxBodyLength = 2000

var (
	// ErrPostNotFound is returned when an event references a record that
	// does not exist.
	ErrPostNotFound = errors.New("timeline post not found")

	ErrEmptyBody        = errors.New("timeline event body is empty")
	ErrBodyTooLong      = errors.New("timeline event body exceeds maximum length")
	ErrMissingFieldName = errors.New("field change event requires a field name")
	ErrMissingValues    = errors.New("field change event requires old and new values")
)

// Event is one append-only entry on a record's timeline. Which payload
// fields are set depends on the event type and is enforced by the
// constructors.
type Event struct {
	id         uuid.UUID
	postID     uuid.UUID
	eventType  EventType
	body       string
	fieldName  string
	oldValue   string
	newValue   string
	createdBy  *uuid.UUID
	createdAt  time.Time
	authorName string
}

// NewCreatedEvent records that a TSR came into existence. The body is the
// creation note and must already be non-empty.
func NewCreatedEvent(postID uuid.UUID, body string, createdBy uuid.UUID) (Event, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return Event{}, ErrEmptyBody
	}
	// character count, matching the validation gate's max=2000
	if utf8.RuneCountInString(body) > MaxBodyLength {
		return Event{}, ErrBodyTooLong
	}
	e := Event{
		postID:    postID,
		eventType: EventTypePostCreated,
		body:      body,
	}
	if createdBy != uuid.Nil {
		e.createdBy = &createdBy
	}
	return e, nil
}

// NewFieldChangedEvent records a single attribute transition. The field name
// and both values are mandatory; an event without them cannot be built.
func NewFieldChangedEvent(postID uuid.UUID, fieldName, oldValue, newValue string, createdBy uuid.UUID) (Event, error) {
	if strings.TrimSpace(fieldName) == "" {
		return Event{}, ErrMissingFieldName
	}
	if oldValue == "" || newValue == "" {
		return Event{}, ErrMissingValues
	}
	e := Event{
		postID:    postID,
		eventType: EventTypeFieldChanged,
		fieldName: fieldName,
		oldValue:  oldValue,
		newValue:  newValue,
	}
	if createdBy != uuid.Nil {
		e.createdBy = &createdBy
	}
	return e, nil
}

// NewCommentEvent records a free-form comment.
func NewCommentEvent(postID uuid.UUID, body string, createdBy uuid.UUID) (Event, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return Event{}, ErrEmptyBody
	}
	if utf8.RuneCountInString(body) > MaxBodyLength {
		return Event{}, ErrBodyTooLong
	}
	e := Event{
		postID:    postID,
		eventType: EventTypeComment,
		body:      body,
	}
	if createdBy != uuid.Nil {
		e.createdBy = &createdBy
	}
	return e, nil
}

func Hydrate(
	id uuid.UUID,
	postID uuid.UUID,
	eventType EventType,
	body string,
	fieldName string,
	oldValue string,
	newValue string,
	createdBy *uuid.UUID,
	createdAt time.Time,
	authorName string,
) Event {
	return Event{
		id:         id,
		postID:     postID,
		eventType:  eventType,
		body:       body,
		fieldName:  fieldName,
		oldValue:   oldValue,
		newValue:   newValue,
		createdBy:  createdBy,
		createdAt:  createdAt,
		authorName: authorName,
	}
}

func (e Event) ID() uuid.UUID        { return e.id }
func (e Event) PostID() uuid.UUID    { return e.postID }
func (e Event) Type() EventType      { return e.eventType }
func (e Event) Body() string         { return e.body }
func (e Event) FieldName() string    { return e.fieldName }
func (e Event) OldValue() string     { return e.oldValue }
func (e Event) NewValue() string     { return e.newValue }
func (e Event) CreatedBy() *uuid.UUID { return e.createdBy }
func (e Event) CreatedAt() time.Time { return e.createdAt }

// AuthorName is the display name of the event author resolved on read.
// Empty when the author is unknown or the user was removed.
func (e Event) AuthorName() string { return e.authorName }

// Repository is append-only. Events are never updated or deleted.
type Repository interface {
	Create(ctx context.Context, event Event) (Event, error)
	CreateMany(ctx context.Context, events []Event) ([]Event, error)
	GetByPostID(ctx context.Context, postID uuid.UUID) ([]Event, error)
}
