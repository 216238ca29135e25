package pwaux_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/auxtools/pwaux"
)

func TestParseDataLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []pwaux.Field
	}{
		{
			name: "quoted field with spaces",
			line: `A "B C" D`,
			want: []pwaux.Field{
				{Text: "A", Start: 0, End: 1},
				{Text: `"B C"`, Start: 2, End: 7},
				{Text: "D", Start: 8, End: 9},
			},
		},
		{
			name: "escaped quote does not close the field",
			line: `"say \"hi\"" next`,
			want: []pwaux.Field{
				{Text: `"say \"hi\""`, Start: 0, End: 12},
				{Text: "next", Start: 13, End: 17},
			},
		},
		{
			name: "embedded quotes form one field",
			line: `pre"a b"post`,
			want: []pwaux.Field{
				{Text: `pre"a b"post`, Start: 0, End: 12},
			},
		},
		{
			name: "tabs separate fields",
			line: "1\t\"Alpha\"\t138.0",
			want: []pwaux.Field{
				{Text: "1", Start: 0, End: 1},
				{Text: `"Alpha"`, Start: 2, End: 9},
				{Text: "138.0", Start: 10, End: 15},
			},
		},
		{
			name: "unterminated quote runs to end of line",
			line: `1 "Alpha Bravo`,
			want: []pwaux.Field{
				{Text: "1", Start: 0, End: 1},
				{Text: `"Alpha Bravo`, Start: 2, End: 14},
			},
		},
		{
			name: "leading and trailing whitespace",
			line: "  1 2  ",
			want: []pwaux.Field{
				{Text: "1", Start: 2, End: 3},
				{Text: "2", Start: 4, End: 5},
			},
		},
		{
			name: "blank line",
			line: "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := pwaux.ParseDataLine(tt.line)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseDataLine() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRemoveEOLComment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "comment stripped and whitespace trimmed",
			line: `1 "Alpha"   // trailing note`,
			want: `1 "Alpha"`,
		},
		{
			name: "slashes inside quotes are kept",
			line: `1 "http://example" 2`,
			want: `1 "http://example" 2`,
		},
		{
			name: "comment after quoted field",
			line: `"a // b" // real comment`,
			want: `"a // b"`,
		},
		{
			name: "no comment",
			line: "1 2 3",
			want: "1 2 3",
		},
		{
			name: "whole line comment",
			line: "// note",
			want: "",
		},
		{
			name: "single slash is not a comment",
			line: "1/2",
			want: "1/2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := pwaux.RemoveEOLComment(tt.line)
			if got != tt.want {
				t.Errorf("RemoveEOLComment(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestIsCommentLine(t *testing.T) {
	t.Parallel()

	if !pwaux.IsCommentLine("  // note") {
		t.Error("expected comment line")
	}

	if pwaux.IsCommentLine(`1 "Alpha" // note`) {
		t.Error("data row with trailing comment is not a comment line")
	}
}
