package pwaux_test

import (
	"testing"

	"github.com/auxtools/pwaux"
)

func TestDetectScriptBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		wantKind pwaux.ScriptKind
		wantName string
	}{
		{
			name:     "named with brace",
			line:     "SCRIPT MyScript {",
			wantKind: pwaux.ScriptSameLineOpen,
			wantName: "MyScript",
		},
		{
			name:     "unnamed with brace",
			line:     "SCRIPT {",
			wantKind: pwaux.ScriptSameLineOpen,
		},
		{
			name:     "complete on one line",
			line:     "SCRIPT Test { SolvePowerFlow(); }",
			wantKind: pwaux.ScriptSameLineComplete,
			wantName: "Test",
		},
		{
			name:     "bare header",
			line:     "SCRIPT Test",
			wantKind: pwaux.ScriptNextLine,
			wantName: "Test",
		},
		{
			name:     "bare unnamed header",
			line:     "SCRIPT",
			wantKind: pwaux.ScriptNextLine,
		},
		{
			name:     "case insensitive",
			line:     "script test {",
			wantKind: pwaux.ScriptSameLineOpen,
			wantName: "test",
		},
		{
			name:     "leading whitespace",
			line:     "  SCRIPT Indented {",
			wantKind: pwaux.ScriptSameLineOpen,
			wantName: "Indented",
		},
		{
			name:     "not a script header",
			line:     "MyScript {",
			wantKind: pwaux.ScriptNone,
		},
		{
			name:     "script with parens is not a header",
			line:     "SCRIPT(Bus)",
			wantKind: pwaux.ScriptNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := pwaux.DetectScriptBlock(tt.line, 0)
			if d.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", d.Kind, tt.wantKind)
			}

			if d.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", d.Name, tt.wantName)
			}
		})
	}
}

func TestDetectScriptBlock_NameOffsets(t *testing.T) {
	t.Parallel()

	d := pwaux.DetectScriptBlock("SCRIPT MyScript {", 0)

	if d.NameStart != 7 || d.NameEnd != 15 {
		t.Errorf("name offsets = [%d:%d], want [7:15]", d.NameStart, d.NameEnd)
	}

	if !pwaux.DetectScriptBlock("SCRIPT Test { }", 0).Complete {
		t.Error("expected complete detection for brace-complete line")
	}
}

func TestDetectDataBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		wantKind pwaux.DataKind
		wantName string
	}{
		{
			name:     "data header",
			line:     "DATA (Bus, [BusNum, BusName])",
			wantKind: pwaux.DataBlock,
			wantName: "DATA",
		},
		{
			name:     "data lowercase",
			line:     "data (Bus, [BusNum])",
			wantKind: pwaux.DataBlock,
			wantName: "DATA",
		},
		{
			name:     "function header at column zero",
			line:     "Bus (Number, Name)",
			wantKind: pwaux.DataFunction,
			wantName: "Bus",
		},
		{
			name:     "indented identifier is a data row",
			line:     "  Bus (Number, Name)",
			wantKind: pwaux.DataNone,
		},
		{
			name:     "bare data without paren",
			line:     "DATA",
			wantKind: pwaux.DataNone,
		},
		{
			name:     "plain data row",
			line:     `1 "Alpha" 138.0`,
			wantKind: pwaux.DataNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := pwaux.DetectDataBlock(tt.line)
			if d.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", d.Kind, tt.wantKind)
			}

			if tt.wantName != "" && d.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", d.Name, tt.wantName)
			}
		})
	}
}

func TestFindClosingBrace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		start int
		want  int
	}{
		{
			name:  "simple block",
			lines: []string{"SCRIPT Test {", "SolvePowerFlow();", "}"},
			start: 0,
			want:  2,
		},
		{
			name:  "brace on following line",
			lines: []string{"DATA (Bus, [BusNum])", "{", `1`, "}"},
			start: 0,
			want:  3,
		},
		{
			name:  "single line",
			lines: []string{"SCRIPT Test { SolvePowerFlow(); }"},
			start: 0,
			want:  0,
		},
		{
			name:  "unclosed returns last line",
			lines: []string{"SCRIPT Test {", "SolvePowerFlow();", "LogClear;"},
			start: 0,
			want:  2,
		},
		{
			name:  "never opened returns last line",
			lines: []string{"SCRIPT Test", "no brace here"},
			start: 0,
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := pwaux.FindClosingBrace(tt.lines, tt.start)
			if got != tt.want {
				t.Errorf("FindClosingBrace() = %d, want %d", got, tt.want)
			}
		})
	}
}
