package persistence

import (
	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/telvana/tsr-tracker/modules/tsr/domain/aggregates/tsr"
	"github.com/telvana/tsr-tracker/modules/tsr/domain/entities/timeline"
	"github.com/telvana/tsr-tracker/modules/tsr/infrastructure/persistence/models"
)

func toDomainTSR(row *models.TSR) (tsr.TSR, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return tsr.TSR{}, gerrors.Wrap(err, "parse tsr id")
	}
	createdBy, err := parseOptionalUUID(row.CreatedBy)
	if err != nil {
		return tsr.TSR{}, gerrors.Wrap(err, "parse tsr created_by")
	}
	return tsr.Hydrate(
		id,
		row.Identifier,
		row.TSRNumber,
		row.ResponseDue.Format(tsr.DateLayout),
		row.EndA,
		row.EndZ,
		row.DataRateRequired,
		createdBy,
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}

func toDomainTimelineEvent(row *models.TimelineEvent) (timeline.Event, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return timeline.Event{}, gerrors.Wrap(err, "parse event id")
	}
	postID, err := uuid.Parse(row.PostID)
	if err != nil {
		return timeline.Event{}, gerrors.Wrap(err, "parse event post_id")
	}
	createdBy, err := parseOptionalUUID(row.CreatedBy)
	if err != nil {
		return timeline.Event{}, gerrors.Wrap(err, "parse event created_by")
	}
	return timeline.Hydrate(
		id,
		postID,
		timeline.EventType(row.EventType),
		derefString(row.Body),
		derefString(row.FieldName),
		derefString(row.OldValue),
		derefString(row.NewValue),
		createdBy,
		row.CreatedAt,
		derefString(row.AuthorName),
	), nil
}

func parseOptionalUUID(value *string) (*uuid.UUID, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := uuid.Parse(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func nullableString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func nullableUUID(value *uuid.UUID) *string {
	if value == nil {
		return nil
	}
	s := value.String()
	return &s
}
