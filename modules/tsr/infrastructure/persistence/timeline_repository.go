package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/telvana/tsr-tracker/modules/tsr/domain/entities/timeline"
	"github.com/telvana/tsr-tracker/modules/tsr/infrastructure/persistence/models"
	"github.com/telvana/tsr-tracker/pkg/composables"
)

const (
	insertEventQuery = `
		INSERT INTO timeline_events (post_id, event_type, body, field_name, old_value, new_value, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, post_id, event_type, body, field_name, old_value, new_value, created_by, created_at
	`
	selectEventsQuery = `
		SELECT e.id, e.post_id, e.event_type, e.body, e.field_name, e.old_value, e.new_value,
			e.created_by, e.created_at, u.display_name
		FROM timeline_events e
		LEFT JOIN users u ON u.id = e.created_by
		WHERE e.post_id = $1
		ORDER BY e.created_at DESC, e.id DESC
	`
)

type TimelineRepository struct{}

func NewTimelineRepository() timeline.Repository {
	return &TimelineRepository{}
}

func (r *TimelineRepository) Create(ctx context.Context, event timeline.Event) (timeline.Event, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return timeline.Event{}, err
	}

	var row models.TimelineEvent
	err = tx.QueryRow(ctx, insertEventQuery,
		event.PostID().String(),
		string(event.Type()),
		nullableString(event.Body()),
		nullableString(event.FieldName()),
		nullableString(event.OldValue()),
		nullableString(event.NewValue()),
		nullableUUID(event.CreatedBy()),
	).Scan(
		&row.ID,
		&row.PostID,
		&row.EventType,
		&row.Body,
		&row.FieldName,
		&row.OldValue,
		&row.NewValue,
		&row.CreatedBy,
		&row.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return timeline.Event{}, timeline.ErrPostNotFound
		}
		return timeline.Event{}, gerrors.Wrap(err, "create timeline event")
	}
	return toDomainTimelineEvent(&row)
}

// CreateMany inserts the whole event set in one statement. The TSR routes
// run without a transaction wrapper, so a multi-row insert is what keeps a
// change set from landing partially.
func (r *TimelineRepository) CreateMany(ctx context.Context, events []timeline.Event) ([]timeline.Event, error) {
	if len(events) == 0 {
		return []timeline.Event{}, nil
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	args := make([]any, 0, len(events)*7)
	for _, event := range events {
		args = append(args,
			event.PostID().String(),
			string(event.Type()),
			nullableString(event.Body()),
			nullableString(event.FieldName()),
			nullableString(event.OldValue()),
			nullableString(event.NewValue()),
			nullableUUID(event.CreatedBy()),
		)
	}
	rows, err := tx.Query(ctx, insertManyEventsQuery(len(events)), args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, timeline.ErrPostNotFound
		}
		return nil, gerrors.Wrap(err, "create timeline events")
	}
	defer rows.Close()

	created := make([]timeline.Event, 0, len(events))
	for rows.Next() {
		var row models.TimelineEvent
		if err := rows.Scan(
			&row.ID,
			&row.PostID,
			&row.EventType,
			&row.Body,
			&row.FieldName,
			&row.OldValue,
			&row.NewValue,
			&row.CreatedBy,
			&row.CreatedAt,
		); err != nil {
			return nil, gerrors.Wrap(err, "scan timeline event")
		}
		event, err := toDomainTimelineEvent(&row)
		if err != nil {
			return nil, err
		}
		created = append(created, event)
	}
	if err := rows.Err(); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, timeline.ErrPostNotFound
		}
		return nil, gerrors.Wrap(err, "create timeline events")
	}
	return created, nil
}

func insertManyEventsQuery(n int) string {
	var b strings.Builder
	b.WriteString(`
		INSERT INTO timeline_events (post_id, event_type, body, field_name, old_value, new_value, created_by)
		VALUES `)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		base := i * 7
		fmt.Fprintf(&b, "($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7)
	}
	b.WriteString(`
		RETURNING id, post_id, event_type, body, field_name, old_value, new_value, created_by, created_at`)
	return b.String()
}

func (r *TimelineRepository) GetByPostID(ctx context.Context, postID uuid.UUID) ([]timeline.Event, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, selectEventsQuery, postID.String())
	if err != nil {
		return nil, gerrors.Wrap(err, "list timeline events")
	}
	defer rows.Close()

	events := make([]timeline.Event, 0)
	for rows.Next() {
		var row models.TimelineEvent
		if err := rows.Scan(
			&row.ID,
			&row.PostID,
			&row.EventType,
			&row.Body,
			&row.FieldName,
			&row.OldValue,
			&row.NewValue,
			&row.CreatedBy,
			&row.CreatedAt,
			&row.AuthorName,
		); err != nil {
			return nil, gerrors.Wrap(err, "scan timeline event")
		}
		event, err := toDomainTimelineEvent(&row)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, gerrors.Wrap(err, "list timeline events")
	}
	return events, nil
}
