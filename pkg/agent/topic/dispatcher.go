package topic

// Topic labels as shown on the pill buttons. Matching is exact and case-sensitive.
const (
	LabelGettingStarted = "Getting Started"
	LabelTraining       = "Training"
	LabelFrameworks     = "Frameworks"
	LabelLeadership     = "Leadership"
	LabelROI            = "ROI"
	LabelOpenGovernment = "Open Government"
	LabelRACI           = "RACI"
)

// Placeholder is returned for labels that are not in the reply table.
const Placeholder = "I'm still learning about that topic. Try another topic button or ask me a question in your own words."

// Greeting opens every conversation.
const Greeting = "Hi! I'm your AI learning assistant for this course. Pick a topic below or ask me anything about leading AI initiatives."

var labels = []string{
	LabelGettingStarted,
	LabelTraining,
	LabelFrameworks,
	LabelLeadership,
	LabelROI,
	LabelOpenGovernment,
	LabelRACI,
}

var replies = map[string]string{
	LabelGettingStarted: "Welcome aboard! This course is made of short lessons you can finish in a few minutes each. Start with [AI Fundamentals](/lessons/ai-fundamentals), then work through frameworks, value and governance. " +
		"You can press a topic button at any time or type a question.",

	LabelTraining: "Investing in AI training pays off. Forbes reports that organisations building AI literacy across all levels move from pilots to production faster, and ORA research shows leaders who complete structured training are more confident sponsoring AI projects. " +
		"Read more on [Forbes](https://www.forbes.com/sites/forbestechcouncil/) and explore the [ORA learning resources](https://www.ora.gov.au/).",

	LabelFrameworks: "Trusted frameworks keep AI delivery safe and repeatable. Pair agile delivery with the [NIST AI Risk Management Framework](https://www.nist.gov/itl/ai-risk-management-framework) so that each sprint maps, measures and manages risk alongside the features it ships.",

	LabelLeadership: "Leading AI is less about technology and more about direction. Set a clear problem statement, protect time for experimentation and make accountability explicit. " +
		"Harvard Business Review's [AI leadership collection](https://hbr.org/topic/subject/ai-and-machine-learning) is a good companion to this lesson.",

	LabelROI: "ROI for AI starts with a baseline. Measure cost, time and error rates before launch, then track the same measures after go-live together with the cost of monitoring and retraining. " +
		"See [Measuring AI value](/lessons/roi-measurement) for worked examples.",

	LabelOpenGovernment: "Open government means being transparent about where and how AI is used. Publish an inventory of AI use cases, explain the data behind them and offer a clear route to challenge decisions. " +
		"The [Open Government Partnership](https://www.opengovpartnership.org/) tracks commitments from member countries.",

	LabelRACI: "Use a RACI matrix to make AI accountability visible: who is Responsible, Accountable, Consulted and Informed for data approval, model release and ongoing monitoring. " +
		"Download the [RACI template](/lessons/raci-governance/template) to get started.",
}

// Dispatch returns the fixed reply for a topic label, or Placeholder.
func Dispatch(label string) string {
	if reply, ok := replies[label]; ok {
		return reply
	}
	return Placeholder
}

// Known reports whether label has a configured reply.
func Known(label string) bool {
	_, ok := replies[label]
	return ok
}

// Labels returns the topic labels in button order.
func Labels() []string {
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}
