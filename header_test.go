package pwaux_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auxtools/pwaux"
)

func TestFindDataBlockHeader(t *testing.T) {
	t.Parallel()

	lines := []string{
		"DATA (Bus, [BusNum, BusName, NomKV])",
		"{",
		`1 "Alpha" 138.0`,
		`2 "Bravo" 138.0`,
		"}",
	}

	h := pwaux.FindDataBlockHeader(lines, 3)
	require.NotNil(t, h)
	assert.Equal(t, "Bus", h.BlockName)
	assert.Equal(t, []string{"BusNum", "BusName", "NomKV"}, h.Parameters)
	assert.Equal(t, 0, h.Line)
}

func TestFindDataBlockHeader_UnnamedData(t *testing.T) {
	t.Parallel()

	lines := []string{
		"DATA ([BusNum, BusName])",
		"{",
		`1 "Alpha"`,
	}

	h := pwaux.FindDataBlockHeader(lines, 2)
	require.NotNil(t, h)
	assert.Equal(t, "DATA", h.BlockName)
	assert.Equal(t, []string{"BusNum", "BusName"}, h.Parameters)
}

func TestFindDataBlockHeader_FunctionStyle(t *testing.T) {
	t.Parallel()

	lines := []string{
		"Bus (Number, Name)",
		"{",
		`1 "Alpha"`,
	}

	h := pwaux.FindDataBlockHeader(lines, 2)
	require.NotNil(t, h)
	assert.Equal(t, "Bus", h.BlockName)
	assert.Equal(t, []string{"Number", "Name"}, h.Parameters)
}

func TestFindDataBlockHeader_MultiLineParameters(t *testing.T) {
	t.Parallel()

	lines := []string{
		"Branch (BusNumFrom, BusNumTo,",
		"        Circuit, Status)",
		"{",
		"1 2 1 Closed",
	}

	h := pwaux.FindDataBlockHeader(lines, 3)
	require.NotNil(t, h)
	assert.Equal(t, "Branch", h.BlockName)
	assert.Equal(t, []string{"BusNumFrom", "BusNumTo", "Circuit", "Status"}, h.Parameters)
}

func TestFindDataBlockHeader_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		from  int
	}{
		{
			name: "closing brace stops the scan",
			lines: []string{
				"DATA (Bus, [BusNum])",
				"{",
				"1",
				"}",
				"orphan row",
			},
			from: 4,
		},
		{
			name: "data without bracket list is a boundary",
			lines: []string{
				"DATA (Bus)",
				"row below unresolvable header",
			},
			from: 1,
		},
		{
			name: "header with empty parameters is a boundary",
			lines: []string{
				"Bus ()",
				"1",
			},
			from: 1,
		},
		{
			name: "nothing above",
			lines: []string{
				"1 2 3",
			},
			from: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Nil(t, pwaux.FindDataBlockHeader(tt.lines, tt.from))
		})
	}
}

func TestExtractParameters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		start int
		want  []string
	}{
		{
			name:  "single line",
			lines: []string{"Bus (Number, Name)"},
			start: 0,
			want:  []string{"Number", "Name"},
		},
		{
			name: "spread over lines",
			lines: []string{
				"Gen (BusNum,",
				"     ID,",
				"     MW)",
			},
			start: 0,
			want:  []string{"BusNum", "ID", "MW"},
		},
		{
			name:  "nested parens stay inside one parameter",
			lines: []string{"Load (BusNum, Field(kV))"},
			start: 0,
			want:  []string{"BusNum", "Field(kV)"},
		},
		{
			name:  "unterminated list",
			lines: []string{"Bus (Number, Name"},
			start: 0,
			want:  nil,
		},
		{
			name:  "no paren on line",
			lines: []string{"Bus"},
			start: 0,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, pwaux.ExtractParameters(tt.lines, tt.start))
		})
	}
}
