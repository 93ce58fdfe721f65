package resolver

import (
	"sort"
	"strings"

	"microlearn-agent-be/pkg/agent/content"
)

// Match outcomes, reported alongside the reply for analytics.
const (
	OutcomeSpecialCase = "special_case"
	OutcomeKeyword     = "keyword"
	OutcomeTitle       = "title"
	OutcomeNotFound    = "not_found"
)

// specialCase is a hardcoded check evaluated before the keyword index.
type specialCase struct {
	name  string
	match func(q string) bool
	reply string
}

// specialCases is evaluated top to bottom and the first hit wins.
// "roi" must stay first: it short-circuits everything else.
var specialCases = []specialCase{
	{
		name:  "roi",
		match: func(q string) bool { return strings.Contains(q, "roi") },
		reply: ReplyROI,
	},
	{
		name:  "open_government",
		match: func(q string) bool { return strings.Contains(q, "open government") },
		reply: ReplyOpenGovernment,
	},
	{
		name: "free_training",
		match: func(q string) bool {
			return strings.Contains(q, "free") &&
				containsAny(q, "ai", "leadership", "training")
		},
		reply: ReplyFreeTraining,
	},
	{
		name: "framework_agile",
		match: func(q string) bool {
			return strings.Contains(q, "framework") && strings.Contains(q, "agile")
		},
		reply: ReplyFrameworkAgile,
	},
	{
		name:  "raci",
		match: func(q string) bool { return containsAny(q, "raci", "racu") },
		reply: ReplyRACI,
	},
}

// Result carries a resolved reply and how it was found.
type Result struct {
	Reply   string
	Outcome string
	EntryID string
	Rule    string
}

// Resolve maps free text to a reply. The bool is false when nothing matched;
// callers substitute Fallback in that case.
func Resolve(query string) (string, bool) {
	res := Explain(query)
	return res.Reply, res.Outcome != OutcomeNotFound
}

// Explain is Resolve with the match details kept.
func Explain(query string) Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Result{Outcome: OutcomeNotFound}
	}

	for _, sc := range specialCases {
		if sc.match(q) {
			return Result{Reply: sc.reply, Outcome: OutcomeSpecialCase, Rule: sc.name}
		}
	}

	if ids := keywordCandidates(q); len(ids) > 0 {
		entry, _ := content.Lookup(ids[0])
		return Result{Reply: BuildReply(entry), Outcome: OutcomeKeyword, EntryID: entry.ID}
	}

	if entry, ok := titleCandidate(q); ok {
		return Result{Reply: BuildReply(entry), Outcome: OutcomeTitle, EntryID: entry.ID}
	}

	return Result{Outcome: OutcomeNotFound}
}

// keywordCandidates unions the entries of every keyword contained in q and
// returns them in content table order.
func keywordCandidates(q string) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, km := range content.Keywords() {
		if !strings.Contains(q, km.Keyword) {
			continue
		}
		for _, id := range km.EntryIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			if content.Position(id) < 0 {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return content.Position(ids[i]) < content.Position(ids[j])
	})
	return ids
}

// titleCandidate compares q with the first word of each title, in both directions.
func titleCandidate(q string) (content.Entry, bool) {
	for _, entry := range content.Entries() {
		fields := strings.Fields(strings.ToLower(entry.Title))
		if len(fields) == 0 {
			continue
		}
		word := fields[0]
		if strings.Contains(q, word) || strings.Contains(word, q) {
			return entry, true
		}
	}
	return content.Entry{}, false
}

// BuildReply assembles a reply from an entry: first paragraph, first callout,
// first list with at most two items, then the closing question.
func BuildReply(entry content.Entry) string {
	var b strings.Builder
	if len(entry.Paragraphs) > 0 {
		b.WriteString(entry.Paragraphs[0])
	}

	if len(entry.Callouts) > 0 {
		c := entry.Callouts[0]
		b.WriteString("\n\n💡 ")
		b.WriteString(c.Text)
		if c.Source != "" {
			b.WriteString(" (Source: ")
			b.WriteString(c.Source)
			b.WriteString(")")
		}
	}

	if len(entry.Lists) > 0 {
		l := entry.Lists[0]
		b.WriteString("\n\n**")
		b.WriteString(l.Title)
		b.WriteString("**")
		for i, item := range l.Items {
			if i == 2 {
				break
			}
			b.WriteString("\n• ")
			b.WriteString(item)
		}
	}

	b.WriteString("\n\n")
	b.WriteString(ClosingQuestion)
	return b.String()
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
