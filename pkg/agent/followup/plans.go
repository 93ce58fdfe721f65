package followup

import (
	"time"

	"microlearn-agent-be/pkg/agent/topic"
)

// FollowUp is one delayed reply. At is measured from the moment the primary
// reply was dispatched, not from the previous follow-up.
type FollowUp struct {
	At   time.Duration `json:"at"`
	Text string        `json:"text"`
}

// Plan is an ordered list of follow-ups with non-decreasing offsets.
type Plan []FollowUp

// UniversalResource closes every follow-up plan.
const UniversalResource = "📚 Want to keep going? Forbes has a great collection on building AI capability in organisations: [Forbes Tech Council on AI](https://www.forbes.com/sites/forbestechcouncil/). Come back any time to continue the course."

var defaultPlans = map[string]Plan{
	topic.LabelTraining: {
		{At: 5 * time.Second, Text: "MIT Sloan research also finds that managers who learn alongside their teams adopt AI tools faster. Their free articles at [MIT Sloan Ideas Made to Matter](https://mitsloan.mit.edu/ideas-made-to-matter) are a good next read."},
		{At: 15 * time.Second, Text: UniversalResource},
	},
	topic.LabelFrameworks: {
		{At: 10 * time.Second, Text: "Tip: the NIST AI RMF Playbook lists suggested actions for each of the Govern, Map, Measure and Manage functions. Pick two actions to add to your next sprint."},
		{At: 25 * time.Second, Text: UniversalResource},
	},
	topic.LabelLeadership: {
		{At: 5 * time.Second, Text: "First, name a single business problem AI should help with this quarter."},
		{At: 10 * time.Second, Text: "Second, give a small team permission to experiment and a date to report back."},
		{At: 15 * time.Second, Text: "Third, agree who is accountable for the system once it is live. The RACI topic can help with that."},
		{At: 25 * time.Second, Text: UniversalResource},
	},
	topic.LabelROI: {
		{At: 10 * time.Second, Text: "A quick rule of thumb: if you cannot describe the baseline in one sentence, you are not ready to measure ROI yet."},
		{At: 15 * time.Second, Text: UniversalResource},
	},
}

// DefaultPlans returns a copy of the built-in follow-up plans keyed by topic label.
func DefaultPlans() map[string]Plan {
	out := make(map[string]Plan, len(defaultPlans))
	for label, plan := range defaultPlans {
		out[label] = append(Plan(nil), plan...)
	}
	return out
}

// Total is the offset of the last follow-up.
func (p Plan) Total() time.Duration {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].At
}
