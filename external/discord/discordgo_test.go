package discord

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	discordpkg "github.com/foxseedlab/practicasbot/internal/discord"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestSession(t *testing.T, rt roundTripFunc) *discordgo.Session {
	t.Helper()
	s, err := discordgo.New("Bot test-token")
	require.NoError(t, err)
	if rt != nil {
		s.Client = &http.Client{Transport: rt}
	}
	return s
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestResolveChannel_UsesStateCacheFirst(t *testing.T) {
	s := newTestSession(t, func(req *http.Request) (*http.Response, error) {
		t.Fatalf("unexpected REST call: %s %s", req.Method, req.URL.String())
		return nil, nil
	})
	require.NoError(t, s.State.GuildAdd(&discordgo.Guild{
		ID: "guild-1",
		Channels: []*discordgo.Channel{
			{ID: "chan-1", GuildID: "guild-1", Name: "web"},
		},
	}))

	c := &Client{session: s}
	ch, err := c.ResolveChannel("chan-1")
	require.NoError(t, err)
	require.NotNil(t, ch)
	require.Equal(t, "web", ch.Name)
}

func TestResolveChannel_FallsBackToREST(t *testing.T) {
	s := newTestSession(t, func(req *http.Request) (*http.Response, error) {
		require.True(t, strings.HasSuffix(req.URL.Path, "/channels/chan-rest"), "unexpected request path: %s", req.URL.Path)
		return jsonResponse(http.StatusOK, `{"id":"chan-rest","name":"comercial","type":0}`), nil
	})

	c := &Client{session: s}
	ch, err := c.ResolveChannel("chan-rest")
	require.NoError(t, err)
	require.Equal(t, &discordpkg.Channel{ID: "chan-rest", Name: "comercial"}, ch)
}

func TestResolveChannel_ReturnsNilOnRESTNotFound(t *testing.T) {
	s := newTestSession(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusNotFound, `{"message":"Unknown Channel","code":10003}`), nil
	})

	c := &Client{session: s}
	ch, err := c.ResolveChannel("missing")
	require.NoError(t, err)
	require.Nil(t, ch)
}

func TestResolveChannel_PropagatesOtherErrors(t *testing.T) {
	s := newTestSession(t, func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusForbidden, `{"message":"Missing Access","code":50001}`), nil
	})

	c := &Client{session: s}
	_, err := c.ResolveChannel("forbidden")
	require.Error(t, err)
}

func TestFetchRecentMessages_MapsAttachmentsAndAuthor(t *testing.T) {
	var gotLimit string
	s := newTestSession(t, func(req *http.Request) (*http.Response, error) {
		require.True(t, strings.HasSuffix(req.URL.Path, "/channels/chan-1/messages"), "unexpected request path: %s", req.URL.Path)
		gotLimit = req.URL.Query().Get("limit")
		return jsonResponse(http.StatusOK, `[
			{"id":"m2","channel_id":"chan-1","content":"","timestamp":"2026-10-19T10:00:00+00:00",
			 "author":{"id":"u1","username":"ana"},
			 "attachments":[{"id":"a1","filename":"a.png","url":"https://cdn/a.png"},{"id":"a2","filename":"b.png","url":"https://cdn/b.png"}]},
			{"id":"m1","channel_id":"chan-1","content":"hola","timestamp":"2026-10-18T09:00:00+00:00",
			 "author":{"id":"u2","username":"bot","bot":true},"attachments":[]}
		]`), nil
	})

	c := &Client{session: s}
	msgs, err := c.FetchRecentMessages("chan-1", 500)
	require.NoError(t, err)
	require.Equal(t, "100", gotLimit)
	require.Len(t, msgs, 2)

	require.Equal(t, "m2", msgs[0].ID)
	require.Equal(t, "u1", msgs[0].AuthorID)
	require.Equal(t, time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC), msgs[0].Timestamp.UTC())
	require.Equal(t, []discordpkg.Attachment{
		{ID: "a1", Filename: "a.png", URL: "https://cdn/a.png"},
		{ID: "a2", Filename: "b.png", URL: "https://cdn/b.png"},
	}, msgs[0].Attachments)

	require.True(t, msgs[1].AuthorIsBot)
	require.Empty(t, msgs[1].Attachments)
}

func TestSendChannelEmbed_SendsFields(t *testing.T) {
	var gotBody string
	s := newTestSession(t, func(req *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, req.Method)
		b, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		gotBody = string(b)
		return jsonResponse(http.StatusOK, `{"id":"m1","channel_id":"chan-1"}`), nil
	})

	c := &Client{session: s}
	err := c.SendChannelEmbed("chan-1", discordpkg.Embed{
		Title:  "Reuniones",
		Color:  0x0099ff,
		Fields: []discordpkg.EmbedField{{Name: "Reunión 1", Value: "Lunes"}},
	})
	require.NoError(t, err)
	require.Contains(t, gotBody, `"title":"Reuniones"`)
	require.Contains(t, gotBody, `"color":39423`)
	require.Contains(t, gotBody, `"value":"Lunes"`)
}
