package content

// Entry ids
const (
	EntryAIFundamentals    = "ai-fundamentals"
	EntryTrustedFrameworks = "trusted-frameworks"
	EntryROIMeasurement    = "roi-measurement"
	EntryOpenGovernment    = "open-government"
	EntryRACIGovernance    = "raci-governance"
	EntryChangeManagement  = "change-management"
	EntryDataReadiness     = "data-readiness"
	EntryEthicsRisk        = "ethics-risk"
	EntryTrainingPathways  = "training-pathways"
)

// table is the course content in presentation order. Order matters: the resolver
// picks the first candidate in this order when several entries match.
var table = []Entry{
	{
		ID:    EntryAIFundamentals,
		Title: "Artificial Intelligence Fundamentals for Leaders",
		Paragraphs: []string{
			"Artificial intelligence is a family of techniques that let software learn patterns from data instead of following hand-written rules. For leaders, the important question is not how the models work internally but which decisions they can support and where human judgment must stay in the loop.",
			"Generative models such as large language models produce new text, images or code from a prompt. They are powerful drafting partners but they can state wrong facts with confidence, so outputs need review before they reach the public.",
		},
		Callouts: []Callout{
			{Text: "Most organisations that succeed with AI start with a narrow, well-understood business problem rather than a technology-first pilot.", Source: "MIT Sloan Management Review"},
		},
		Lists: []List{
			{Title: "Questions to ask before any AI project", Items: []string{
				"What decision or task will this improve?",
				"What data do we have, and who owns it?",
				"How will we know if the system is wrong?",
			}},
		},
	},
	{
		ID:    EntryTrustedFrameworks,
		Title: "Trusted Frameworks for Delivering AI",
		Paragraphs: []string{
			"Trusted frameworks give teams a shared way to plan, build and govern AI work. Agile delivery keeps scope small and feedback frequent, while risk frameworks such as the NIST AI Risk Management Framework make sure each increment is mapped, measured and managed.",
			"Combining the two means every sprint ends with a working slice of the solution and an updated view of its risks, rather than leaving governance to a final review.",
		},
		Callouts: []Callout{
			{Text: "Govern, Map, Measure and Manage are the four core functions of the NIST AI RMF.", Source: "NIST AI 100-1"},
		},
		Lists: []List{
			{Title: "Framework building blocks", Items: []string{
				"Short delivery cycles with a demo at the end of each",
				"A living risk register reviewed every sprint",
				"Clear acceptance criteria that include fairness and accuracy",
			}},
		},
	},
	{
		ID:    EntryROIMeasurement,
		Title: "Measuring Return on AI Initiatives",
		Paragraphs: []string{
			"Return on an AI initiative is measured against a baseline captured before the system goes live. Track time saved, error rates and service outcomes alongside the full cost of data preparation, integration and ongoing monitoring.",
		},
		Callouts: []Callout{
			{Text: "Projects that define success metrics up front are far more likely to report measurable value.", Source: "Forbes"},
		},
		Lists: []List{
			{Title: "Common value measures", Items: []string{
				"Hours of manual processing avoided",
				"Reduction in case backlog",
				"Improvement in citizen satisfaction scores",
			}},
		},
	},
	{
		ID:    EntryOpenGovernment,
		Title: "Open Government and Transparency",
		Paragraphs: []string{
			"Open government principles ask agencies to be transparent about where automated systems are used, what data they rely on and how people can challenge an outcome. Publishing an inventory of AI use cases is a practical first step.",
		},
		Callouts: []Callout{
			{Text: "Transparency builds the public trust that AI adoption in government depends on.", Source: "Open Government Partnership"},
		},
	},
	{
		ID:    EntryRACIGovernance,
		Title: "RACI Accountability in AI Projects",
		Paragraphs: []string{
			"A RACI matrix names who is Responsible, Accountable, Consulted and Informed for each activity. In AI projects it prevents the common gap where nobody owns model monitoring once the delivery team moves on.",
		},
		Lists: []List{
			{Title: "Activities that need a clear owner", Items: []string{
				"Approving training data sources",
				"Signing off model releases",
				"Responding to complaints about automated decisions",
			}},
		},
	},
	{
		ID:    EntryChangeManagement,
		Title: "Change Management and Adoption",
		Paragraphs: []string{
			"Adoption is where most AI value is won or lost. Staff need to understand what the tool does, what it does not do, and how their role changes. Early involvement of frontline teams turns sceptics into advocates.",
		},
		Callouts: []Callout{
			{Text: "People adopt tools they helped shape.", Source: "Prosci"},
		},
	},
	{
		ID:    EntryDataReadiness,
		Title: "Data Readiness and Quality",
		Paragraphs: []string{
			"AI systems inherit the strengths and flaws of their data. Before building, check that data is complete, current, lawfully collected and representative of the people the service will affect.",
		},
		Lists: []List{
			{Title: "Data readiness checklist", Items: []string{
				"Documented lineage for every source",
				"Known gaps and how they are handled",
				"A named data steward",
			}},
		},
	},
	{
		ID:    EntryEthicsRisk,
		Title: "Ethics and Risk Management",
		Paragraphs: []string{
			"Ethical AI means identifying who could be harmed, testing for bias across groups and keeping a human able to override the system. Risk management turns those principles into checks that run throughout the project.",
		},
		Callouts: []Callout{
			{Text: "Bias testing should be repeated whenever the model or its data changes.", Source: "NIST"},
		},
	},
	{
		ID:    EntryTrainingPathways,
		Title: "Training Pathways for AI Leadership",
		Paragraphs: []string{
			"Building AI capability is a team effort. Leaders benefit from short executive courses, while delivery teams need hands-on practice with data, prompting and evaluation. This course is the first step on that pathway.",
		},
		Lists: []List{
			{Title: "Suggested next steps", Items: []string{
				"Complete every micro-lesson in this course",
				"Join a community of practice",
				"Run a small pilot with a clear success measure",
			}},
		},
	},
}

// keywordIndex maps lowercase substrings to entry ids. Scanned in order, every match
// contributes its entries to the candidate set.
var keywordIndex = []KeywordMapping{
	{Keyword: "agile", EntryIDs: []string{EntryTrustedFrameworks}},
	{Keyword: "framework", EntryIDs: []string{EntryTrustedFrameworks}},
	{Keyword: "nist", EntryIDs: []string{EntryTrustedFrameworks, EntryEthicsRisk}},
	{Keyword: "sprint", EntryIDs: []string{EntryTrustedFrameworks}},
	{Keyword: "governance", EntryIDs: []string{EntryRACIGovernance, EntryTrustedFrameworks}},
	{Keyword: "accountab", EntryIDs: []string{EntryRACIGovernance}},
	{Keyword: "responsib", EntryIDs: []string{EntryRACIGovernance}},
	{Keyword: "return", EntryIDs: []string{EntryROIMeasurement}},
	{Keyword: "value", EntryIDs: []string{EntryROIMeasurement}},
	{Keyword: "measure", EntryIDs: []string{EntryROIMeasurement}},
	{Keyword: "transparen", EntryIDs: []string{EntryOpenGovernment}},
	{Keyword: "public trust", EntryIDs: []string{EntryOpenGovernment}},
	{Keyword: "adoption", EntryIDs: []string{EntryChangeManagement}},
	{Keyword: "change", EntryIDs: []string{EntryChangeManagement}},
	{Keyword: "culture", EntryIDs: []string{EntryChangeManagement}},
	{Keyword: "data", EntryIDs: []string{EntryDataReadiness}},
	{Keyword: "quality", EntryIDs: []string{EntryDataReadiness}},
	{Keyword: "ethic", EntryIDs: []string{EntryEthicsRisk}},
	{Keyword: "bias", EntryIDs: []string{EntryEthicsRisk}},
	{Keyword: "risk", EntryIDs: []string{EntryEthicsRisk, EntryTrustedFrameworks}},
	{Keyword: "machine learning", EntryIDs: []string{EntryAIFundamentals}},
	{Keyword: "generative", EntryIDs: []string{EntryAIFundamentals}},
	{Keyword: "llm", EntryIDs: []string{EntryAIFundamentals}},
	{Keyword: "course", EntryIDs: []string{EntryTrainingPathways}},
	{Keyword: "learn more", EntryIDs: []string{EntryTrainingPathways}},
}

var byID = func() map[string]int {
	m := make(map[string]int, len(table))
	for i, e := range table {
		m[e.ID] = i
	}
	return m
}()

// Entries returns the content table in presentation order.
func Entries() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

// Keywords returns the keyword index in scan order.
func Keywords() []KeywordMapping {
	out := make([]KeywordMapping, len(keywordIndex))
	copy(out, keywordIndex)
	return out
}

// Lookup returns the entry with the given id.
func Lookup(id string) (Entry, bool) {
	i, ok := byID[id]
	if !ok {
		return Entry{}, false
	}
	return table[i], true
}

// Position returns the table position of an entry id, or -1.
func Position(id string) int {
	if i, ok := byID[id]; ok {
		return i
	}
	return -1
}
