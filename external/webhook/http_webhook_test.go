package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foxseedlab/practicasbot/internal/webhook"
	"github.com/stretchr/testify/require"
)

func TestSendSummary_EmptyWebhookURL(t *testing.T) {
	sender := NewHTTPSender("")
	require.NoError(t, sender.SendSummary(context.Background(), webhook.SummaryWebhookPayload{}))
}

func TestSendSummary_Success(t *testing.T) {
	var got webhook.SummaryWebhookPayload
	var gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	payload := webhook.SummaryWebhookPayload{
		SchemaVersion: webhook.SummaryWebhookSchemaVersion,
		GeneratedAt:   "2026-10-19T16:30:00+01:00",
		Timezone:      "Atlantic/Canary",
		Report:        "\n**AREA WEB**\n--> Se subió(s) archivo(s) a.png por <@U>\n",
		Areas: []webhook.SummaryWebhookArea{
			{Area: "web", Uploads: []webhook.SummaryWebhookUpload{{AuthorID: "U", Files: []string{"a.png"}}}},
		},
	}
	sender := NewHTTPSender(server.URL)
	require.NoError(t, sender.SendSummary(context.Background(), payload))
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, payload, got)
}

func TestSendSummary_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	sender := NewHTTPSender(server.URL)
	require.Error(t, sender.SendSummary(context.Background(), webhook.SummaryWebhookPayload{}))
}
