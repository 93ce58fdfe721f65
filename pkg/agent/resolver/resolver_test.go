package resolver

import (
	"strings"
	"testing"

	"microlearn-agent-be/pkg/agent/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstParagraph(t *testing.T, id string) string {
	t.Helper()
	entry, ok := content.Lookup(id)
	require.True(t, ok, "entry %s missing", id)
	return entry.Paragraphs[0]
}

func TestResolveSpecialCases(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "roi alone", query: "What is the ROI?", want: ReplyROI},
		{name: "roi beats keywords", query: "roi of agile frameworks and data", want: ReplyROI},
		{name: "roi beats raci", query: "Tell me about RACI and ROI", want: ReplyROI},
		{name: "open government beats keyword", query: "open government data", want: ReplyOpenGovernment},
		{name: "free ai", query: "is there a free ai course", want: ReplyFreeTraining},
		{name: "free leadership", query: "Free leadership programmes", want: ReplyFreeTraining},
		{name: "free beats framework agile", query: "free agile framework training", want: ReplyFreeTraining},
		{name: "framework and agile", query: "compare agile and a framework", want: ReplyFrameworkAgile},
		{name: "raci", query: "what is a raci matrix", want: ReplyRACI},
		{name: "racu", query: "racu chart", want: ReplyRACI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.query)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveKeywordIndex(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		entryID string
	}{
		{name: "agile alone", query: "what is agile", entryID: content.EntryTrustedFrameworks},
		{name: "framework alone", query: "which framework should we use", entryID: content.EntryTrustedFrameworks},
		{name: "data quality", query: "  Data QUALITY  ", entryID: content.EntryDataReadiness},
		{name: "table order wins over keyword order", query: "risk of generative models", entryID: content.EntryAIFundamentals},
		{name: "union picks earliest entry", query: "ethics and bias in data", entryID: content.EntryDataReadiness},
		{name: "adoption", query: "how do we drive adoption", entryID: content.EntryChangeManagement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Explain(tt.query)
			assert.Equal(t, OutcomeKeyword, res.Outcome)
			assert.Equal(t, tt.entryID, res.EntryID)
			assert.True(t, strings.HasPrefix(res.Reply, firstParagraph(t, tt.entryID)))
			assert.True(t, strings.HasSuffix(res.Reply, ClosingQuestion))
		})
	}
}

func TestResolveTitleFallback(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		entryID string
	}{
		{name: "query contains title word", query: "tell me about training", entryID: content.EntryTrainingPathways},
		{name: "title word contains query", query: "measur", entryID: content.EntryROIMeasurement},
		{name: "open alone", query: "open", entryID: content.EntryOpenGovernment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Explain(tt.query)
			assert.Equal(t, OutcomeTitle, res.Outcome)
			assert.Equal(t, tt.entryID, res.EntryID)
			assert.True(t, strings.HasPrefix(res.Reply, firstParagraph(t, tt.entryID)))
		})
	}
}

func TestResolveNoMatch(t *testing.T) {
	for _, q := range []string{"", "   ", "hello there", "xyz"} {
		got, ok := Resolve(q)
		assert.False(t, ok, "query %q", q)
		assert.Empty(t, got, "query %q", q)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	for _, q := range []string{"what is agile", "roi", "hello there", "data"} {
		first, ok1 := Resolve(q)
		second, ok2 := Resolve(q)
		assert.Equal(t, first, second)
		assert.Equal(t, ok1, ok2)
	}
}

func TestBuildReply(t *testing.T) {
	entry, ok := content.Lookup(content.EntryTrustedFrameworks)
	require.True(t, ok)

	got := BuildReply(entry)

	want := entry.Paragraphs[0] +
		"\n\n💡 " + entry.Callouts[0].Text + " (Source: " + entry.Callouts[0].Source + ")" +
		"\n\n**" + entry.Lists[0].Title + "**" +
		"\n• " + entry.Lists[0].Items[0] +
		"\n• " + entry.Lists[0].Items[1] +
		"\n\n" + ClosingQuestion
	assert.Equal(t, want, got)
	assert.NotContains(t, got, entry.Lists[0].Items[2])
}

func TestBuildReplyWithoutExtras(t *testing.T) {
	entry := content.Entry{ID: "bare", Title: "Bare", Paragraphs: []string{"Only text."}}
	assert.Equal(t, "Only text.\n\n"+ClosingQuestion, BuildReply(entry))
}
