package quality

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// HeuristicAnalyzer is the generic analysis path for languages without a
// real parser here. It estimates function counts and decision points by
// keyword scanning, the same role the multi-language analyzer plays for the
// language-aware path. It reports no maintainability index (0), which the
// aggregator's strictly-positive filter excludes from averages.
type HeuristicAnalyzer struct{}

// functionPatterns detect function declarations per extension family.
var functionPatterns = map[string]*regexp.Regexp{
	".py":   regexp.MustCompile(`(?m)^\s*def\s+\w+\s*\(`),
	".rb":   regexp.MustCompile(`(?m)^\s*def\s+\w+`),
	".js":   regexp.MustCompile(`\bfunction\b|=>`),
	".ts":   regexp.MustCompile(`\bfunction\b|=>`),
	".php":  regexp.MustCompile(`\bfunction\s+\w+\s*\(`),
	".rs":   regexp.MustCompile(`(?m)^\s*(pub\s+)?fn\s+\w+`),
	".java": regexp.MustCompile(`(?m)^\s*(public|private|protected|static|final|\s)+[\w<>\[\]]+\s+\w+\s*\([^;]*\)\s*\{`),
	".c":    regexp.MustCompile(`(?m)^[\w\*\s]+\s\*?\w+\s*\([^;]*\)\s*\{`),
	".cpp":  regexp.MustCompile(`(?m)^[\w\*\s:<>,&]+\s\*?[\w:]+\s*\([^;]*\)\s*\{`),
}

// decisionPattern matches branch keywords and short-circuit operators that
// add independent paths.
var decisionPattern = regexp.MustCompile(`\b(if|elif|else if|for|while|case|when|catch|except|rescue)\b|&&|\|\|`)

// Analyze scans the file by keywords and returns its quality reading, or
// nil when no function declarations are found.
func (HeuristicAnalyzer) Analyze(path string) (*FileQuality, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := string(src)

	ext := strings.ToLower(filepath.Ext(path))
	pattern, ok := functionPatterns[ext]
	if !ok {
		return nil, nil
	}

	functions := len(pattern.FindAllStringIndex(content, -1))
	if functions == 0 {
		return nil, nil
	}

	decisions := len(decisionPattern.FindAllStringIndex(content, -1))
	avg := 1 + float64(decisions)/float64(functions)

	return &FileQuality{
		FilePath:                  path,
		LOC:                       countNonBlankLines(src),
		Complexity:                avg,
		ComplexityRank:            rankComplexity(avg),
		FunctionsCount:            functions,
		AverageFunctionComplexity: avg,
	}, nil
}
