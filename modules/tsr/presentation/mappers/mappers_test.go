package mappers_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/telvana/tsr-tracker/modules/tsr/domain/aggregates/tsr"
	"github.com/telvana/tsr-tracker/modules/tsr/domain/entities/timeline"
	"github.com/telvana/tsr-tracker/modules/tsr/presentation/mappers"
)

func TestEventTypeLabel(t *testing.T) {
	assert.Equal(t, "Created", mappers.EventTypeLabel(timeline.EventTypePostCreated))
	assert.Equal(t, "Updated", mappers.EventTypeLabel(timeline.EventTypeFieldChanged))
	assert.Equal(t, "Comment", mappers.EventTypeLabel(timeline.EventTypeComment))
	assert.Equal(t, "SOMETHING_ELSE", mappers.EventTypeLabel(timeline.EventType("SOMETHING_ELSE")))
}

func TestEventToViewModel_UnknownAuthor(t *testing.T) {
	event := timeline.Hydrate(
		uuid.New(),
		uuid.New(),
		timeline.EventTypeComment,
		"hello",
		"", "", "",
		nil,
		time.Now(),
		"",
	)
	vm := mappers.EventToViewModel(event)
	assert.Equal(t, mappers.UnknownAuthor, vm.Author)
	assert.Equal(t, "Comment", vm.EventTypeLabel)
	assert.Equal(t, "hello", vm.Body)
}

func TestEventToViewModel_ResolvedAuthor(t *testing.T) {
	author := uuid.New()
	event := timeline.Hydrate(
		uuid.New(),
		uuid.New(),
		timeline.EventTypeFieldChanged,
		"",
		"End Z", "Chicago", "Denver",
		&author,
		time.Now(),
		"Test Engineer",
	)
	vm := mappers.EventToViewModel(event)
	assert.Equal(t, "Test Engineer", vm.Author)
	assert.Equal(t, "End Z", vm.FieldName)
	assert.Equal(t, "Chicago", vm.OldValue)
	assert.Equal(t, "Denver", vm.NewValue)
}

func TestTSRToViewModel(t *testing.T) {
	createdBy := uuid.New()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	entity := tsr.Hydrate(
		uuid.New(),
		"CKT-001",
		"TSR-2024-001",
		"2024-06-01",
		"New York",
		"Chicago",
		"10 Gbps",
		&createdBy,
		now,
		now,
	)
	vm := mappers.TSRToViewModel(entity)
	assert.Equal(t, entity.ID().String(), vm.ID)
	assert.Equal(t, "2024-06-01", vm.ResponseDue)
	assert.Equal(t, "2024-06-01T12:00:00Z", vm.UpdatedAt)
}
