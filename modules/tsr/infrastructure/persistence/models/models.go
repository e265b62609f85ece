package models

import "time"

type TSR struct {
	ID               string
	Identifier       string
	TSRNumber        string
	ResponseDue      time.Time
	EndA             string
	EndZ             string
	DataRateRequired string
	CreatedBy        *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type TimelineEvent struct {
	ID         string
	PostID     string
	EventType  string
	Body       *string
	FieldName  *string
	OldValue   *string
	NewValue   *string
	CreatedBy  *string
	CreatedAt  time.Time
	AuthorName *string
}
