package tsr

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the normalized form of the response-due date. The value is
// diffed and displayed as this string, so normalization happens once at the
// validation gate.
const DateLayout = "2006-01-02"

// TSR is a Technical Service Request record. All six editable attributes are
// plain strings; response_due is kept in its normalized date-string form.
type TSR struct {
	id               uuid.UUID
	identifier       string
	tsrNumber        string
	responseDue      string
	endA             string
	endZ             string
	dataRateRequired string
	createdBy        *uuid.UUID
	createdAt        time.Time
	updatedAt        time.Time
}

func New(
	identifier string,
	tsrNumber string,
	responseDue string,
	endA string,
	endZ string,
	dataRateRequired string,
	createdBy uuid.UUID,
) TSR {
	t := TSR{
		identifier:       strings.TrimSpace(identifier),
		tsrNumber:        strings.TrimSpace(tsrNumber),
		responseDue:      strings.TrimSpace(responseDue),
		endA:             strings.TrimSpace(endA),
		endZ:             strings.TrimSpace(endZ),
		dataRateRequired: strings.TrimSpace(dataRateRequired),
	}
	if createdBy != uuid.Nil {
		t.createdBy = &createdBy
	}
	return t
}

func Hydrate(
	id uuid.UUID,
	identifier string,
	tsrNumber string,
	responseDue string,
	endA string,
	endZ string,
	dataRateRequired string,
	createdBy *uuid.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) TSR {
	return TSR{
		id:               id,
		identifier:       identifier,
		tsrNumber:        tsrNumber,
		responseDue:      responseDue,
		endA:             endA,
		endZ:             endZ,
		dataRateRequired: dataRateRequired,
		createdBy:        createdBy,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (t TSR) ID() uuid.UUID            { return t.id }
func (t TSR) Identifier() string       { return t.identifier }
func (t TSR) TSRNumber() string        { return t.tsrNumber }
func (t TSR) ResponseDue() string      { return t.responseDue }
func (t TSR) EndA() string             { return t.endA }
func (t TSR) EndZ() string             { return t.endZ }
func (t TSR) DataRateRequired() string { return t.dataRateRequired }
func (t TSR) CreatedBy() *uuid.UUID    { return t.createdBy }
func (t TSR) CreatedAt() time.Time     { return t.createdAt }
func (t TSR) UpdatedAt() time.Time     { return t.updatedAt }
func (t TSR) IsZero() bool             { return t.id == uuid.Nil && t.identifier == "" }

// Apply returns a copy of the record with the provided values set and
// updated_at advanced. Absent values keep their stored state.
func (t TSR) Apply(proposed ProposedValues, updatedAt time.Time) TSR {
	out := t
	if proposed.Identifier != nil {
		out.identifier = *proposed.Identifier
	}
	if proposed.TSRNumber != nil {
		out.tsrNumber = *proposed.TSRNumber
	}
	if proposed.ResponseDue != nil {
		out.responseDue = *proposed.ResponseDue
	}
	if proposed.EndA != nil {
		out.endA = *proposed.EndA
	}
	if proposed.EndZ != nil {
		out.endZ = *proposed.EndZ
	}
	if proposed.DataRateRequired != nil {
		out.dataRateRequired = *proposed.DataRateRequired
	}
	out.updatedAt = updatedAt
	return out
}
