package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractLinks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Link
	}{
		{
			name: "no links",
			in:   "Plain reply without links.",
			want: nil,
		},
		{
			name: "single link",
			in:   "Read more on [Forbes](https://www.forbes.com/).",
			want: []Link{{Text: "Forbes", URL: "https://www.forbes.com/"}},
		},
		{
			name: "relative and absolute",
			in:   "Start with [AI Fundamentals](/lessons/ai-fundamentals) then [NIST](https://www.nist.gov/).",
			want: []Link{
				{Text: "AI Fundamentals", URL: "/lessons/ai-fundamentals"},
				{Text: "NIST", URL: "https://www.nist.gov/"},
			},
		},
		{
			name: "bracket without url",
			in:   "See [this] (not a link).",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ExtractLinks(tt.in)); diff != "" {
				t.Errorf("ExtractLinks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPlainText(t *testing.T) {
	got := PlainText("Read [Forbes](https://www.forbes.com/) and [NIST](https://www.nist.gov/).")
	want := "Read Forbes and NIST."
	if got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
}
