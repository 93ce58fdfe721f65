package content

// Callout is a highlighted quote or statistic attached to an entry.
type Callout struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// List is a titled bullet list attached to an entry.
type List struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Entry is one lesson card of the course content table.
type Entry struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Paragraphs []string  `json:"paragraphs"`
	Callouts   []Callout `json:"callouts,omitempty"`
	Lists      []List    `json:"lists,omitempty"`
}

// KeywordMapping links a lowercase keyword substring to content entry ids.
type KeywordMapping struct {
	Keyword  string
	EntryIDs []string
}
