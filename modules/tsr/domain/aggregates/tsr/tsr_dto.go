package tsr

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/telvana/tsr-tracker/pkg/constants"
	"github.com/telvana/tsr-tracker/pkg/intl"
)

// MaxCommentLength bounds both free-form comments and the optional creation
// note.
const MaxCommentLength = 2000

// DefaultCreationNote is recorded on the timeline when a record is created
// without an accompanying note.
const DefaultCreationNote = "TSR created"

type CreateDTO struct {
	Identifier       string `validate:"required,max=50"`
	TSRNumber        string `validate:"required"`
	ResponseDue      string `validate:"required"`
	EndA             string `validate:"required"`
	EndZ             string `validate:"required"`
	DataRateRequired string `validate:"required"`
	Comments         string `validate:"omitempty,max=2000"`
}

func (d *CreateDTO) Ok(ctx context.Context) (map[string]string, bool) {
	d.Identifier = strings.TrimSpace(d.Identifier)
	d.TSRNumber = strings.TrimSpace(d.TSRNumber)
	d.ResponseDue = strings.TrimSpace(d.ResponseDue)
	d.EndA = strings.TrimSpace(d.EndA)
	d.EndZ = strings.TrimSpace(d.EndZ)
	d.DataRateRequired = strings.TrimSpace(d.DataRateRequired)
	d.Comments = strings.TrimSpace(d.Comments)

	l, ok := intl.UseLocalizer(ctx)
	if !ok {
		panic(intl.ErrNoLocalizer)
	}
	errorMessages := map[string]string{}
	errs := constants.Validate.Struct(d)
	if errs != nil {
		for _, err := range errs.(validator.ValidationErrors) {
			errorMessages[err.Field()] = translatedValidationError(l, err.Field(), err.Tag())
		}
	}
	if _, ok := errorMessages["ResponseDue"]; !ok && d.ResponseDue != "" {
		normalized, err := NormalizeDate(d.ResponseDue)
		if err != nil {
			errorMessages["ResponseDue"] = translatedValidationError(l, "ResponseDue", "date")
		} else {
			d.ResponseDue = normalized
		}
	}
	return errorMessages, len(errorMessages) == 0
}

func (d *CreateDTO) ToEntity(createdBy uuid.UUID) TSR {
	return New(
		d.Identifier,
		d.TSRNumber,
		d.ResponseDue,
		d.EndA,
		d.EndZ,
		d.DataRateRequired,
		createdBy,
	)
}

// CreationNote returns the note the timeline records for a fresh TSR,
// falling back to the default when none was provided.
func (d *CreateDTO) CreationNote() string {
	if d.Comments == "" {
		return DefaultCreationNote
	}
	return d.Comments
}

// UpdateDTO carries a partial update. Pointer fields distinguish an absent
// attribute from a submitted one.
type UpdateDTO struct {
	Identifier       *string `validate:"omitempty,max=50"`
	TSRNumber        *string
	ResponseDue      *string
	EndA             *string
	EndZ             *string
	DataRateRequired *string
}

func (d *UpdateDTO) Ok(ctx context.Context) (map[string]string, bool) {
	trim := func(s *string) {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	trim(d.Identifier)
	trim(d.TSRNumber)
	trim(d.ResponseDue)
	trim(d.EndA)
	trim(d.EndZ)
	trim(d.DataRateRequired)

	l, ok := intl.UseLocalizer(ctx)
	if !ok {
		panic(intl.ErrNoLocalizer)
	}
	errorMessages := map[string]string{}
	errs := constants.Validate.Struct(d)
	if errs != nil {
		for _, err := range errs.(validator.ValidationErrors) {
			errorMessages[err.Field()] = translatedValidationError(l, err.Field(), err.Tag())
		}
	}
	// validator's omitempty cannot tell a submitted empty string from an
	// absent field, so emptiness is checked by hand.
	requireNonEmpty := func(field string, value *string) {
		if _, taken := errorMessages[field]; taken {
			return
		}
		if value != nil && *value == "" {
			errorMessages[field] = translatedValidationError(l, field, "required")
		}
	}
	requireNonEmpty("Identifier", d.Identifier)
	requireNonEmpty("TSRNumber", d.TSRNumber)
	requireNonEmpty("ResponseDue", d.ResponseDue)
	requireNonEmpty("EndA", d.EndA)
	requireNonEmpty("EndZ", d.EndZ)
	requireNonEmpty("DataRateRequired", d.DataRateRequired)
	if _, ok := errorMessages["ResponseDue"]; !ok && d.ResponseDue != nil {
		normalized, err := NormalizeDate(*d.ResponseDue)
		if err != nil {
			errorMessages["ResponseDue"] = translatedValidationError(l, "ResponseDue", "date")
		} else {
			*d.ResponseDue = normalized
		}
	}
	return errorMessages, len(errorMessages) == 0
}

func (d *UpdateDTO) ToProposedValues() ProposedValues {
	return ProposedValues{
		Identifier:       d.Identifier,
		TSRNumber:        d.TSRNumber,
		ResponseDue:      d.ResponseDue,
		EndA:             d.EndA,
		EndZ:             d.EndZ,
		DataRateRequired: d.DataRateRequired,
	}
}

type CommentDTO struct {
	Body string `validate:"required,max=2000"`
}

func (d *CommentDTO) Ok(ctx context.Context) (map[string]string, bool) {
	d.Body = strings.TrimSpace(d.Body)

	l, ok := intl.UseLocalizer(ctx)
	if !ok {
		panic(intl.ErrNoLocalizer)
	}
	errorMessages := map[string]string{}
	errs := constants.Validate.Struct(d)
	if errs != nil {
		for _, err := range errs.(validator.ValidationErrors) {
			errorMessages[err.Field()] = translatedValidationError(l, err.Field(), err.Tag())
		}
	}
	return errorMessages, len(errorMessages) == 0
}

// NormalizeDate accepts a date either in the normalized layout or as an
// RFC 3339 timestamp and reduces it to the normalized form.
func NormalizeDate(value string) (string, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t.Format(DateLayout), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return "", err
	}
	return t.Format(DateLayout), nil
}

func translatedValidationError(l *i18n.Localizer, field, tag string) string {
	translatedFieldName := l.MustLocalize(&i18n.LocalizeConfig{
		MessageID: fmt.Sprintf("TSRs.Fields.%s", field),
	})
	return l.MustLocalize(&i18n.LocalizeConfig{
		MessageID: fmt.Sprintf("ValidationErrors.%s", tag),
		TemplateData: map[string]string{
			"Field": translatedFieldName,
		},
	})
}
