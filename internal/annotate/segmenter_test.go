package annotate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRuleSegmenter(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty content",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "   \n ",
			want: nil,
		},
		{
			name: "single sentence",
			text: "hi there",
			want: []string{"hi there"},
		},
		{
			name: "two sentences",
			text: "hi. bye.",
			want: []string{"hi", "bye"},
		},
		{
			name: "mixed terminators",
			text: "hi how are you?! sing something...",
			want: []string{"hi how are you", "sing something"},
		},
		{
			name: "line breaks",
			text: "hello bot\ngoodbye",
			want: []string{"hello bot", "goodbye"},
		},
		{
			name: "inner punctuation dropped",
			text: "Hello, bot!",
			want: []string{"Hello bot"},
		},
		{
			name: "punctuation only",
			text: "?!.",
			want: nil,
		},
	}

	var s RuleSegmenter
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, s.Segment(tt.text)); diff != "" {
				t.Errorf("Segment() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
