package quality

import (
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"math"
	"os"
	"strings"
)

// GoAnalyzer analyzes Go source with the standard parser. It is the
// language-aware analysis path: per-function cyclomatic complexity averaged
// over the file, plus a maintainability index derived from Halstead-style
// volume, complexity, and size.
type GoAnalyzer struct{}

// Analyze parses the file and returns its quality reading, or nil when the
// file declares no functions.
func (GoAnalyzer) Analyze(path string) (*FileQuality, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, 0)
	if err != nil {
		return nil, err
	}

	var complexities []int
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		complexities = append(complexities, cyclomatic(fn))
	}
	if len(complexities) == 0 {
		return nil, nil
	}

	sum := 0
	for _, c := range complexities {
		sum += c
	}
	avg := float64(sum) / float64(len(complexities))

	loc := countNonBlankLines(src)
	mi := maintainabilityIndex(halsteadVolume(src), avg, loc)

	return &FileQuality{
		FilePath:                  path,
		LOC:                       loc,
		Complexity:                avg,
		Maintainability:           mi,
		ComplexityRank:            rankComplexity(avg),
		MaintainabilityRank:       rankMaintainability(mi),
		FunctionsCount:            len(complexities),
		AverageFunctionComplexity: avg,
	}, nil
}

// cyclomatic counts independent paths through a function body: one plus one
// per branch point.
func cyclomatic(fn *ast.FuncDecl) int {
	if fn.Body == nil {
		return 1
	}
	complexity := 1
	ast.Inspect(fn.Body, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.IfStmt, *ast.ForStmt, *ast.RangeStmt:
			complexity++
		case *ast.CaseClause, *ast.CommClause:
			complexity++
		case *ast.BinaryExpr:
			if node.Op == token.LAND || node.Op == token.LOR {
				complexity++
			}
		}
		return true
	})
	return complexity
}

// halsteadVolume approximates Halstead volume from the token stream:
// V = N * log2(n), with N the total and n the distinct token count.
func halsteadVolume(src []byte) float64 {
	var sc scanner.Scanner
	fset := token.NewFileSet()
	f := fset.AddFile("", fset.Base(), len(src))
	sc.Init(f, src, nil, 0)

	distinct := make(map[string]bool)
	total := 0
	for {
		_, tok, lit := sc.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.COMMENT || tok == token.SEMICOLON {
			continue
		}
		key := tok.String()
		if lit != "" {
			key = lit
		}
		distinct[key] = true
		total++
	}
	if total == 0 || len(distinct) < 2 {
		return 0
	}
	return float64(total) * math.Log2(float64(len(distinct)))
}

// maintainabilityIndex computes the classic MI, rescaled to 0-100.
func maintainabilityIndex(volume, complexity float64, loc int) float64 {
	if loc == 0 {
		return 100
	}
	lnV := 0.0
	if volume > 0 {
		lnV = math.Log(volume)
	}
	mi := 171 - 5.2*lnV - 0.23*complexity - 16.2*math.Log(float64(loc))
	mi = mi * 100 / 171
	if mi < 0 {
		return 0
	}
	if mi > 100 {
		return 100
	}
	return mi
}

// rankComplexity letter-ranks an average cyclomatic complexity.
func rankComplexity(c float64) string {
	switch {
	case c <= 5:
		return "A"
	case c <= 10:
		return "B"
	case c <= 20:
		return "C"
	case c <= 30:
		return "D"
	case c <= 40:
		return "E"
	default:
		return "F"
	}
}

// rankMaintainability letter-ranks a maintainability index.
func rankMaintainability(mi float64) string {
	switch {
	case mi >= 20:
		return "A"
	case mi >= 10:
		return "B"
	default:
		return "C"
	}
}

// countNonBlankLines counts lines containing any non-whitespace character.
func countNonBlankLines(src []byte) int {
	n := 0
	for _, line := range strings.Split(string(src), "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
