package mappers

import (
	"time"

	"github.com/telvana/tsr-tracker/modules/tsr/domain/aggregates/tsr"
	"github.com/telvana/tsr-tracker/modules/tsr/domain/entities/timeline"
	"github.com/telvana/tsr-tracker/modules/tsr/presentation/viewmodels"
)

// UnknownAuthor is shown when an event's author cannot be resolved, for
// example because the user was removed.
const UnknownAuthor = "Unknown User"

func TSRToViewModel(entity tsr.TSR) *viewmodels.TSR {
	return &viewmodels.TSR{
		ID:               entity.ID().String(),
		Identifier:       entity.Identifier(),
		TSRNumber:        entity.TSRNumber(),
		ResponseDue:      entity.ResponseDue(),
		EndA:             entity.EndA(),
		EndZ:             entity.EndZ(),
		DataRateRequired: entity.DataRateRequired(),
		CreatedAt:        entity.CreatedAt().Format(time.RFC3339),
		UpdatedAt:        entity.UpdatedAt().Format(time.RFC3339),
	}
}

func EventToViewModel(event timeline.Event) *viewmodels.TimelineEvent {
	author := event.AuthorName()
	if author == "" {
		author = UnknownAuthor
	}
	return &viewmodels.TimelineEvent{
		ID:             event.ID().String(),
		EventType:      string(event.Type()),
		EventTypeLabel: EventTypeLabel(event.Type()),
		Author:         author,
		Body:           event.Body(),
		FieldName:      event.FieldName(),
		OldValue:       event.OldValue(),
		NewValue:       event.NewValue(),
		CreatedAt:      event.CreatedAt().Format(time.RFC3339),
	}
}

func ChangeToViewModel(change tsr.Change) *viewmodels.FieldChange {
	return &viewmodels.FieldChange{
		Field:    string(change.Field),
		Label:    change.Label,
		OldValue: change.OldValue,
		NewValue: change.NewValue,
	}
}

// EventTypeLabel maps a timeline event type to its display label. Unknown
// types fall back to the raw type string.
func EventTypeLabel(eventType timeline.EventType) string {
	switch eventType {
	case timeline.EventTypePostCreated:
		return "Created"
	case timeline.EventTypeFieldChanged:
		return "Updated"
	case timeline.EventTypeComment:
		return "Comment"
	}
	return string(eventType)
}
