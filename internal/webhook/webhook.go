package webhook

import "context"

const SummaryWebhookSchemaVersion = "2026-10-19"

type SummaryWebhookUpload struct {
	AuthorID string   `json:"author_id"`
	Files    []string `json:"files"`
}

type SummaryWebhookArea struct {
	Area    string                 `json:"area"`
	Uploads []SummaryWebhookUpload `json:"uploads"`
}

type SummaryWebhookPayload struct {
	SchemaVersion string               `json:"schema_version"`
	GeneratedAt   string               `json:"generated_at"`
	Timezone      string               `json:"timezone"`
	Report        string               `json:"report"`
	Areas         []SummaryWebhookArea `json:"areas"`
}

type Sender interface {
	SendSummary(ctx context.Context, payload SummaryWebhookPayload) error
}
