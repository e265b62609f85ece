package viewmodels

type TSR struct {
	ID               string `json:"id"`
	Identifier       string `json:"identifier"`
	TSRNumber        string `json:"tsrNumber"`
	ResponseDue      string `json:"responseDue"`
	EndA             string `json:"endA"`
	EndZ             string `json:"endZ"`
	DataRateRequired string `json:"dataRateRequired"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

type TimelineEvent struct {
	ID             string `json:"id"`
	EventType      string `json:"eventType"`
	EventTypeLabel string `json:"eventTypeLabel"`
	Author         string `json:"author"`
	Body           string `json:"body,omitempty"`
	FieldName      string `json:"fieldName,omitempty"`
	OldValue       string `json:"oldValue,omitempty"`
	NewValue       string `json:"newValue,omitempty"`
	CreatedAt      string `json:"createdAt"`
}

type FieldChange struct {
	Field    string `json:"field"`
	Label    string `json:"label"`
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}
