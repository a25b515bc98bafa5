package quality

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGoAnalyzer_SimpleFunction(t *testing.T) {
	path := writeTempSource(t, "simple.go", `package x

func Add(a, b int) int {
	return a + b
}
`)

	fq, err := GoAnalyzer{}.Analyze(path)
	if err != nil {
		t.Fatal(err)
	}
	if fq == nil {
		t.Fatal("expected a reading")
	}
	if fq.Complexity != 1 {
		t.Errorf("Complexity = %v, want 1 for a branchless function", fq.Complexity)
	}
	if fq.FunctionsCount != 1 {
		t.Errorf("FunctionsCount = %d, want 1", fq.FunctionsCount)
	}
	if fq.ComplexityRank != "A" {
		t.Errorf("ComplexityRank = %q, want A", fq.ComplexityRank)
	}
	if fq.Maintainability <= 0 || fq.Maintainability > 100 {
		t.Errorf("Maintainability = %v, want within (0, 100]", fq.Maintainability)
	}
}

func TestGoAnalyzer_CountsBranchPoints(t *testing.T) {
	path := writeTempSource(t, "branchy.go", `package x

func Classify(n int, ok bool) string {
	if n > 0 && ok {
		return "pos"
	}
	for i := 0; i < n; i++ {
		switch i {
		case 1:
			return "one"
		case 2:
			return "two"
		}
	}
	return "other"
}
`)

	fq, err := GoAnalyzer{}.Analyze(path)
	if err != nil {
		t.Fatal(err)
	}
	// 1 base + if + && + for + 2 case clauses = 6
	if fq.Complexity != 6 {
		t.Errorf("Complexity = %v, want 6", fq.Complexity)
	}
}

func TestGoAnalyzer_AveragesOverFunctions(t *testing.T) {
	path := writeTempSource(t, "two.go", `package x

func plain() {}

func branchy(n int) int {
	if n > 0 {
		return n
	}
	return -n
}
`)

	fq, err := GoAnalyzer{}.Analyze(path)
	if err != nil {
		t.Fatal(err)
	}
	// (1 + 2) / 2
	if fq.Complexity != 1.5 {
		t.Errorf("Complexity = %v, want 1.5", fq.Complexity)
	}
	if fq.FunctionsCount != 2 {
		t.Errorf("FunctionsCount = %d, want 2", fq.FunctionsCount)
	}
}

func TestGoAnalyzer_NoFunctionsNoSignal(t *testing.T) {
	path := writeTempSource(t, "types.go", `package x

type T struct{ A int }

var V = T{A: 1}
`)

	fq, err := GoAnalyzer{}.Analyze(path)
	if err != nil {
		t.Fatal(err)
	}
	if fq != nil {
		t.Errorf("expected nil reading for a file without functions, got %+v", fq)
	}
}

func TestGoAnalyzer_ParseErrorReturnsError(t *testing.T) {
	path := writeTempSource(t, "broken.go", "package x\n\nfunc {")

	if _, err := (GoAnalyzer{}).Analyze(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestMaintainabilityIndex_Bounds(t *testing.T) {
	if got := maintainabilityIndex(0, 0, 0); got != 100 {
		t.Errorf("zero LOC should yield 100, got %v", got)
	}
	if got := maintainabilityIndex(1e9, 100, 100000); got != 0 {
		t.Errorf("hostile inputs should clamp to 0, got %v", got)
	}
}

func TestRankComplexity(t *testing.T) {
	cases := []struct {
		c    float64
		want string
	}{
		{1, "A"}, {5, "A"}, {6, "B"}, {10, "B"},
		{11, "C"}, {20, "C"}, {21, "D"}, {30, "D"},
		{31, "E"}, {40, "E"}, {41, "F"},
	}
	for _, c := range cases {
		if got := rankComplexity(c.c); got != c.want {
			t.Errorf("rankComplexity(%v) = %q, want %q", c.c, got, c.want)
		}
	}
}

func TestCountNonBlankLines(t *testing.T) {
	if got := countNonBlankLines([]byte("a\n\n  \nb\n")); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}
