package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/telvana/tsr-tracker/modules/tsr/domain/aggregates/tsr"
	"github.com/telvana/tsr-tracker/modules/tsr/domain/entities/timeline"
	"github.com/telvana/tsr-tracker/pkg/composables"
	"github.com/telvana/tsr-tracker/pkg/eventbus"
	"github.com/telvana/tsr-tracker/pkg/serrors"
)

var (
	// ErrCreatedWithoutEvent reports that the record was persisted but its
	// POST_CREATED timeline entry was not. The record is kept.
	ErrCreatedWithoutEvent = serrors.NewError(
		"TSR_CREATED_EVENT_FAILED",
		"TSR created but recording the creation event failed",
		"TSRs.Errors.CreatedWithoutEvent",
	)
	// ErrUpdateLagsTimeline reports that FIELD_CHANGED entries were written
	// but the record update itself failed, leaving the timeline ahead of the
	// record.
	ErrUpdateLagsTimeline = serrors.NewError(
		"TSR_UPDATE_LAGS_TIMELINE",
		"changes were recorded but updating the TSR failed",
		"TSRs.Errors.UpdateLagsTimeline",
	)
)

// UpdateResult reports what an update did. NoChanges is set when the
// proposed values matched the stored record and nothing was written.
type UpdateResult struct {
	TSR       tsr.TSR
	Changes   []tsr.Change
	NoChanges bool
}

type TSRService struct {
	repo      tsr.Repository
	events    timeline.Repository
	publisher eventbus.EventBus
}

func NewTSRService(
	repo tsr.Repository,
	events timeline.Repository,
	publisher eventbus.EventBus,
) *TSRService {
	return &TSRService{
		repo:      repo,
		events:    events,
		publisher: publisher,
	}
}

func (s *TSRService) GetAll(ctx context.Context, params tsr.FindParams) ([]tsr.TSR, error) {
	return s.repo.GetAll(ctx, params)
}

func (s *TSRService) GetByID(ctx context.Context, id uuid.UUID) (tsr.TSR, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TSRService) Timeline(ctx context.Context, postID uuid.UUID) ([]timeline.Event, error) {
	if _, err := s.repo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.events.GetByPostID(ctx, postID)
}

// Create persists the record first and appends the POST_CREATED entry
// second. When the entry fails the record stays and the caller receives the
// created record together with ErrCreatedWithoutEvent.
func (s *TSRService) Create(ctx context.Context, dto *tsr.CreateDTO) (tsr.TSR, error) {
	author, err := composables.UseUser(ctx)
	if err != nil {
		return tsr.TSR{}, serrors.ErrUnauthorized
	}

	created, err := s.repo.Create(ctx, dto.ToEntity(author.ID()))
	if err != nil {
		return tsr.TSR{}, err
	}

	event, err := timeline.NewCreatedEvent(created.ID(), dto.CreationNote(), author.ID())
	if err == nil {
		_, err = s.events.Create(ctx, event)
	}
	if err != nil {
		composables.UseLogger(ctx).WithError(err).WithField("post_id", created.ID()).
			Error("tsr created but creation event failed")
		return created, ErrCreatedWithoutEvent
	}

	s.publisher.Publish(tsr.CreatedEvent{Result: created})
	return created, nil
}

// Update diffs the proposed values against the stored record, appends one
// FIELD_CHANGED entry per difference and only then updates the record. When
// no difference exists the operation is a no-op.
func (s *TSRService) Update(ctx context.Context, postID uuid.UUID, dto *tsr.UpdateDTO) (*UpdateResult, error) {
	author, err := composables.UseUser(ctx)
	if err != nil {
		return nil, serrors.ErrUnauthorized
	}

	current, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	proposed := dto.ToProposedValues()
	changes := tsr.Diff(current, proposed)
	if len(changes) == 0 {
		return &UpdateResult{TSR: current, NoChanges: true}, nil
	}

	events := make([]timeline.Event, 0, len(changes))
	for _, change := range changes {
		event, err := timeline.NewFieldChangedEvent(
			postID,
			change.Label,
			change.OldValue,
			change.NewValue,
			author.ID(),
		)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if _, err := s.events.CreateMany(ctx, events); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.repo.Update(ctx, postID, proposed, now); err != nil {
		composables.UseLogger(ctx).WithError(err).WithField("post_id", postID).
			Error("timeline recorded changes but tsr update failed")
		return &UpdateResult{TSR: current, Changes: changes}, ErrUpdateLagsTimeline
	}

	updated := current.Apply(proposed, now)
	s.publisher.Publish(tsr.UpdatedEvent{Result: updated, Changes: changes})
	return &UpdateResult{TSR: updated, Changes: changes}, nil
}

// Comment appends a COMMENT entry and then bumps the record's updated_at. A
// failed bump is logged and otherwise ignored; the comment already exists.
func (s *TSRService) Comment(ctx context.Context, postID uuid.UUID, dto *tsr.CommentDTO) (timeline.Event, error) {
	author, err := composables.UseUser(ctx)
	if err != nil {
		return timeline.Event{}, serrors.ErrUnauthorized
	}

	event, err := timeline.NewCommentEvent(postID, dto.Body, author.ID())
	if err != nil {
		return timeline.Event{}, err
	}
	created, err := s.events.Create(ctx, event)
	if err != nil {
		return timeline.Event{}, err
	}

	if err := s.repo.TouchUpdatedAt(ctx, postID, time.Now()); err != nil {
		composables.UseLogger(ctx).WithError(err).WithField("post_id", postID).
			Warn("comment recorded but updated_at bump failed")
	}

	s.publisher.Publish(tsr.CommentedEvent{PostID: postID})
	return created, nil
}
