package analysis

import (
	"github.com/auxtools/pwaux"
)

// Analyzer runs the structural scan and the validation rules over one
// buffer snapshot at a time. It keeps no per-document state: repeated
// calls on an unchanged buffer yield identical results.
type Analyzer struct {
	rules []*Rule

	// maxProblems caps emitted diagnostics; zero means unlimited.
	maxProblems int
}

// NewAnalyzer creates an analyzer with the default rules.
func NewAnalyzer() *Analyzer {
	return &Analyzer{rules: DefaultRules()}
}

// NewAnalyzerWithRules creates an analyzer with a custom rule set.
func NewAnalyzerWithRules(rules []*Rule) *Analyzer {
	return &Analyzer{rules: rules}
}

// NewAnalyzerFromConfig creates an analyzer honoring the config's
// disabled rules and problem cap. A nil config yields the defaults.
func NewAnalyzerFromConfig(cfg *pwaux.Config) *Analyzer {
	a := NewAnalyzer()
	if cfg == nil {
		return a
	}

	var kept []*Rule

	for _, r := range a.rules {
		if !cfg.RuleDisabled(r.Name) {
			kept = append(kept, r)
		}
	}

	a.rules = kept
	a.maxProblems = cfg.MaxProblems

	return a
}

// Analyze scans and validates an aux buffer. Malformed input never
// produces an error: any line the scanner cannot place is skipped and
// at worst suppresses validation for its region.
func (a *Analyzer) Analyze(path string, content []byte) *AnalyzedFile {
	f := &AnalyzedFile{
		Path:        path,
		Doc:         pwaux.Scan(content),
		Diagnostics: []Diagnostic{},
		Symbols:     NewSymbolTable(),
	}

	buildSymbols(f)

	for _, rule := range a.rules {
		rule.Run(f)
	}

	if a.maxProblems > 0 && len(f.Diagnostics) > a.maxProblems {
		f.Diagnostics = f.Diagnostics[:a.maxProblems]
	}

	return f
}

// buildSymbols extracts block symbols from the scanned structure.
func buildSymbols(f *AnalyzedFile) {
	for _, b := range f.Doc.Blocks {
		name := b.Name
		if name == "" {
			name = b.Kind.String()
		}

		sym := &BlockSymbol{
			Name:     name,
			Kind:     b.Kind,
			Span:     blockSpan(f.Doc, b),
			NameSpan: b.NameSpan(f.Doc.Lines),
			Block:    b,
		}

		f.Symbols.Blocks = append(f.Symbols.Blocks, sym)
		f.Symbols.ByName[name] = append(f.Symbols.ByName[name], sym)
	}
}

// blockSpan covers a block from its header through its outline end.
func blockSpan(doc *pwaux.Document, b *pwaux.Block) pwaux.Span {
	start := b.HeaderSpan(doc.Lines)

	endLine := b.End
	if endLine >= len(doc.Lines) {
		endLine = len(doc.Lines) - 1
	}

	endCol := 0
	if endLine >= 0 && endLine < len(doc.Lines) {
		endCol = len(doc.Lines[endLine])
	}

	end := pwaux.LineSpan(endLine, 0, endCol)

	return pwaux.Span{Start: start.Start, End: end.End}
}
