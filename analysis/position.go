package analysis

import (
	"github.com/auxtools/pwaux"
)

// BlockAt returns the symbol of the block containing the given
// 0-indexed line, or nil.
func BlockAt(f *AnalyzedFile, line int) *BlockSymbol {
	b := f.Doc.BlockAt(line)
	if b == nil {
		return nil
	}

	for _, sym := range f.Symbols.Blocks {
		if sym.Block == b {
			return sym
		}
	}

	return nil
}

// FieldAt returns the index and field containing the 0-based byte
// column, or (-1, nil) when the column falls between fields.
func FieldAt(fields []pwaux.Field, col int) (int, *pwaux.Field) {
	for i := range fields {
		if col >= fields[i].Start && col < fields[i].End {
			return i, &fields[i]
		}
	}

	return -1, nil
}
