package tsr_test

import (
	"context"
	"strings"
	"testing"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telvana/tsr-tracker/modules/tsr/domain/aggregates/tsr"
	"github.com/telvana/tsr-tracker/pkg/application"
	"github.com/telvana/tsr-tracker/pkg/intl"
)

const testMessages = `{
	"ValidationErrors": {
		"required": "{{.Field}} is required",
		"max": "{{.Field}} is too long",
		"min": "{{.Field}} is too short",
		"date": "{{.Field}} must be a valid date"
	},
	"TSRs": {
		"Fields": {
			"Identifier": "Identifier",
			"TSRNumber": "TSR Number",
			"ResponseDue": "Response Due",
			"EndA": "End A",
			"EndZ": "End Z",
			"DataRateRequired": "Data Rate Required",
			"Comments": "Comments",
			"Body": "Comment"
		}
	}
}`

func localizedContext(t *testing.T) context.Context {
	t.Helper()
	bundle := application.LoadBundle()
	bundle.MustParseMessageFileBytes([]byte(testMessages), "en.json")
	return intl.WithLocalizer(context.Background(), i18n.NewLocalizer(bundle, "en"))
}

func validCreateDTO() tsr.CreateDTO {
	return tsr.CreateDTO{
		Identifier:       "CKT-001",
		TSRNumber:        "TSR-2024-001",
		ResponseDue:      "2024-06-01",
		EndA:             "New York",
		EndZ:             "Chicago",
		DataRateRequired: "10 Gbps",
	}
}

func TestCreateDTO_Ok(t *testing.T) {
	ctx := localizedContext(t)

	dto := validCreateDTO()
	errs, ok := dto.Ok(ctx)
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestCreateDTO_MissingFields(t *testing.T) {
	ctx := localizedContext(t)

	dto := tsr.CreateDTO{}
	errs, ok := dto.Ok(ctx)
	assert.False(t, ok)
	for _, field := range []string{"Identifier", "TSRNumber", "ResponseDue", "EndA", "EndZ", "DataRateRequired"} {
		assert.Contains(t, errs, field)
	}
	assert.NotContains(t, errs, "Comments")
}

func TestCreateDTO_IdentifierTooLong(t *testing.T) {
	ctx := localizedContext(t)

	dto := validCreateDTO()
	dto.Identifier = strings.Repeat("a", 51)
	errs, ok := dto.Ok(ctx)
	assert.False(t, ok)
	assert.Contains(t, errs, "Identifier")
}

func TestCreateDTO_InvalidDate(t *testing.T) {
	ctx := localizedContext(t)

	dto := validCreateDTO()
	dto.ResponseDue = "not-a-date"
	errs, ok := dto.Ok(ctx)
	assert.False(t, ok)
	assert.Contains(t, errs, "ResponseDue")
}

func TestCreateDTO_NormalizesTimestampDate(t *testing.T) {
	ctx := localizedContext(t)

	dto := validCreateDTO()
	dto.ResponseDue = "2024-06-01T15:04:05Z"
	_, ok := dto.Ok(ctx)
	require.True(t, ok)
	assert.Equal(t, "2024-06-01", dto.ResponseDue)
}

func TestCreateDTO_CreationNote(t *testing.T) {
	dto := validCreateDTO()
	assert.Equal(t, tsr.DefaultCreationNote, dto.CreationNote())

	dto.Comments = "expedite per customer"
	assert.Equal(t, "expedite per customer", dto.CreationNote())
}

func TestUpdateDTO_Ok(t *testing.T) {
	ctx := localizedContext(t)

	dto := tsr.UpdateDTO{EndZ: ptr("  Denver  ")}
	errs, ok := dto.Ok(ctx)
	require.True(t, ok)
	assert.Empty(t, errs)
	assert.Equal(t, "Denver", *dto.EndZ)
}

func TestUpdateDTO_EmptySubmittedValue(t *testing.T) {
	ctx := localizedContext(t)

	dto := tsr.UpdateDTO{Identifier: ptr("   ")}
	errs, ok := dto.Ok(ctx)
	assert.False(t, ok)
	assert.Contains(t, errs, "Identifier")
}

func TestUpdateDTO_InvalidDate(t *testing.T) {
	ctx := localizedContext(t)

	dto := tsr.UpdateDTO{ResponseDue: ptr("06/01/2024")}
	errs, ok := dto.Ok(ctx)
	assert.False(t, ok)
	assert.Contains(t, errs, "ResponseDue")
}

func TestCommentDTO_Ok(t *testing.T) {
	ctx := localizedContext(t)

	dto := tsr.CommentDTO{Body: "  looks good  "}
	errs, ok := dto.Ok(ctx)
	require.True(t, ok)
	assert.Empty(t, errs)
	assert.Equal(t, "looks good", dto.Body)
}

func TestCommentDTO_Invalid(t *testing.T) {
	ctx := localizedContext(t)

	dto := tsr.CommentDTO{Body: "   "}
	_, ok := dto.Ok(ctx)
	assert.False(t, ok)

	dto = tsr.CommentDTO{Body: strings.Repeat("a", tsr.MaxCommentLength+1)}
	_, ok = dto.Ok(ctx)
	assert.False(t, ok)
}

func TestNormalizeDate(t *testing.T) {
	normalized, err := tsr.NormalizeDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", normalized)

	normalized, err = tsr.NormalizeDate("2024-06-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", normalized)

	_, err = tsr.NormalizeDate("June 1st")
	assert.Error(t, err)
}
