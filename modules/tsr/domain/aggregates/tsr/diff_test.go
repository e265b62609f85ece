package tsr_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telvana/tsr-tracker/modules/tsr/domain/aggregates/tsr"
)

func ptr(s string) *string {
	return &s
}

func storedTSR() tsr.TSR {
	createdBy := uuid.New()
	return tsr.Hydrate(
		uuid.New(),
		"CKT-001",
		"TSR-2024-001",
		"2024-06-01",
		"New York",
		"Chicago",
		"10 Gbps",
		&createdBy,
		time.Now(),
		time.Now(),
	)
}

func TestDiff_NoSubmittedValues(t *testing.T) {
	changes := tsr.Diff(storedTSR(), tsr.ProposedValues{})
	assert.Empty(t, changes)
}

func TestDiff_EqualValuesProduceNoChanges(t *testing.T) {
	changes := tsr.Diff(storedTSR(), tsr.ProposedValues{
		Identifier:  ptr("CKT-001"),
		ResponseDue: ptr("2024-06-01"),
		EndZ:        ptr("Chicago"),
	})
	assert.Empty(t, changes)
}

func TestDiff_SingleChange(t *testing.T) {
	changes := tsr.Diff(storedTSR(), tsr.ProposedValues{
		EndZ: ptr("Denver"),
	})
	require.Len(t, changes, 1)
	assert.Equal(t, tsr.FieldEndZ, changes[0].Field)
	assert.Equal(t, "End Z", changes[0].Label)
	assert.Equal(t, "Chicago", changes[0].OldValue)
	assert.Equal(t, "Denver", changes[0].NewValue)
}

func TestDiff_WalksFieldsInFixedOrder(t *testing.T) {
	changes := tsr.Diff(storedTSR(), tsr.ProposedValues{
		DataRateRequired: ptr("100 Gbps"),
		Identifier:       ptr("CKT-002"),
		ResponseDue:      ptr("2024-07-15"),
	})
	require.Len(t, changes, 3)
	assert.Equal(t, tsr.FieldIdentifier, changes[0].Field)
	assert.Equal(t, tsr.FieldResponseDue, changes[1].Field)
	assert.Equal(t, tsr.FieldDataRateRequired, changes[2].Field)
}

func TestDiff_MixedChangedAndUnchanged(t *testing.T) {
	changes := tsr.Diff(storedTSR(), tsr.ProposedValues{
		Identifier: ptr("CKT-001"),
		TSRNumber:  ptr("TSR-2024-002"),
		EndA:       ptr("New York"),
	})
	require.Len(t, changes, 1)
	assert.Equal(t, tsr.FieldTSRNumber, changes[0].Field)
	assert.Equal(t, "TSR Number", changes[0].Label)
}

func TestDisplayLabels(t *testing.T) {
	assert.Equal(t, "Identifier", tsr.FieldIdentifier.DisplayLabel())
	assert.Equal(t, "TSR Number", tsr.FieldTSRNumber.DisplayLabel())
	assert.Equal(t, "Response Due", tsr.FieldResponseDue.DisplayLabel())
	assert.Equal(t, "End A", tsr.FieldEndA.DisplayLabel())
	assert.Equal(t, "End Z", tsr.FieldEndZ.DisplayLabel())
	assert.Equal(t, "Data Rate Required", tsr.FieldDataRateRequired.DisplayLabel())
	assert.Equal(t, "nonsense", tsr.Field("nonsense").DisplayLabel())
}

func TestApply_KeepsAbsentValues(t *testing.T) {
	current := storedTSR()
	now := time.Now().Add(time.Minute)
	updated := current.Apply(tsr.ProposedValues{
		EndZ: ptr("Denver"),
	}, now)

	assert.Equal(t, "Denver", updated.EndZ())
	assert.Equal(t, current.Identifier(), updated.Identifier())
	assert.Equal(t, current.TSRNumber(), updated.TSRNumber())
	assert.Equal(t, current.ResponseDue(), updated.ResponseDue())
	assert.Equal(t, now, updated.UpdatedAt())
}
