package resolver

// Fixed replies for queries that short-circuit the keyword index.
const (
	ReplyROI = "Great question about ROI! Measuring return on AI starts with a baseline: capture how long the task takes, what it costs and how often it goes wrong before anything changes. Then track the same measures after launch, including the ongoing cost of monitoring the model. " +
		"Forbes has a practical guide: [How To Measure The ROI Of AI](https://www.forbes.com/sites/forbestechcouncil/). Would you like to see which value measures public agencies use most?"

	ReplyOpenGovernment = "Open government and AI go hand in hand. Agencies are expected to publish where automated systems are used, explain the data behind them and give people a way to challenge decisions. " +
		"See the [Open Government Partnership](https://www.opengovpartnership.org/) for examples of AI transparency commitments. Would you like tips on starting an AI use-case inventory?"

	ReplyFreeTraining = "Yes, there are excellent free options! Try [Elements of AI](https://www.elementsofai.com/) for fundamentals and the [MIT Sloan Ideas Made to Matter](https://mitsloan.mit.edu/ideas-made-to-matter) articles for leadership perspectives. " +
		"This course itself is free to complete. Would you like a suggested learning path?"

	ReplyFrameworkAgile = "Agile and AI risk frameworks work best together. Agile gives you short cycles and fast feedback; a framework like the [NIST AI RMF](https://www.nist.gov/itl/ai-risk-management-framework) makes sure every cycle also maps, measures and manages risk. " +
		"Treat the risk register as part of the sprint backlog. Would you like an example sprint checklist?"

	ReplyRACI = "A RACI matrix is one of the simplest governance tools for AI. For each activity, name who is Responsible, Accountable, Consulted and Informed. Some teams use RACU, swapping Informed for Used-by, to capture who relies on the model's outputs. " +
		"The most common gap is ownership of model monitoring after go-live. Would you like a sample RACI for an AI pilot?"
)

// ClosingQuestion ends every reply assembled from the content table.
const ClosingQuestion = "Would you like to explore another topic or go deeper on this one?"

// Fallback is what callers show when Resolve finds no match.
const Fallback = "That's a great question! I don't have a specific answer for that yet. Try one of the topics below, or rephrase your question using a keyword such as frameworks, ROI, data or ethics."
