package tsr

// Field identifies one editable attribute of a TSR record. The wire form
// matches what the timeline stores in field_name.
type Field string

const (
	FieldIdentifier       Field = "identifier"
	FieldTSRNumber        Field = "tsrNumber"
	FieldResponseDue      Field = "responseDue"
	FieldEndA             Field = "endA"
	FieldEndZ             Field = "endZ"
	FieldDataRateRequired Field = "dataRateRequired"
)

// fieldOrder fixes the order in which Diff walks the attributes, so a single
// update always yields FIELD_CHANGED events in a stable sequence.
var fieldOrder = []Field{
	FieldIdentifier,
	FieldTSRNumber,
	FieldResponseDue,
	FieldEndA,
	FieldEndZ,
	FieldDataRateRequired,
}

var displayLabels = map[Field]string{
	FieldIdentifier:       "Identifier",
	FieldTSRNumber:        "TSR Number",
	FieldResponseDue:      "Response Due",
	FieldEndA:             "End A",
	FieldEndZ:             "End Z",
	FieldDataRateRequired: "Data Rate Required",
}

// DisplayLabel returns the human-readable name stored alongside a field
// change. Unknown fields fall back to the raw field name.
func (f Field) DisplayLabel() string {
	if label, ok := displayLabels[f]; ok {
		return label
	}
	return string(f)
}

// ProposedValues carries the normalized candidate values of an update. A nil
// pointer means the caller did not submit the attribute and its stored value
// is kept as is.
type ProposedValues struct {
	Identifier       *string
	TSRNumber        *string
	ResponseDue      *string
	EndA             *string
	EndZ             *string
	DataRateRequired *string
}

// IsEmpty reports whether no attribute was submitted at all.
func (p ProposedValues) IsEmpty() bool {
	return p.Identifier == nil &&
		p.TSRNumber == nil &&
		p.ResponseDue == nil &&
		p.EndA == nil &&
		p.EndZ == nil &&
		p.DataRateRequired == nil
}

func (p ProposedValues) value(f Field) *string {
	switch f {
	case FieldIdentifier:
		return p.Identifier
	case FieldTSRNumber:
		return p.TSRNumber
	case FieldResponseDue:
		return p.ResponseDue
	case FieldEndA:
		return p.EndA
	case FieldEndZ:
		return p.EndZ
	case FieldDataRateRequired:
		return p.DataRateRequired
	}
	return nil
}

func (t TSR) value(f Field) string {
	switch f {
	case FieldIdentifier:
		return t.identifier
	case FieldTSRNumber:
		return t.tsrNumber
	case FieldResponseDue:
		return t.responseDue
	case FieldEndA:
		return t.endA
	case FieldEndZ:
		return t.endZ
	case FieldDataRateRequired:
		return t.dataRateRequired
	}
	return ""
}

// Change is one detected difference between a stored record and a proposed
// update, carrying both representations the timeline needs.
type Change struct {
	Field    Field
	Label    string
	OldValue string
	NewValue string
}

// Diff compares the stored record against the proposed values field by field
// in the fixed attribute order. Attributes that were not submitted or whose
// submitted value equals the stored one produce no change.
func Diff(current TSR, proposed ProposedValues) []Change {
	var changes []Change
	for _, f := range fieldOrder {
		next := proposed.value(f)
		if next == nil {
			continue
		}
		prev := current.value(f)
		if *next == prev {
			continue
		}
		changes = append(changes, Change{
			Field:    f,
			Label:    f.DisplayLabel(),
			OldValue: prev,
			NewValue: *next,
		})
	}
	return changes
}
