package quality

import (
	"testing"
)

func TestHeuristicAnalyzer_PythonFunctions(t *testing.T) {
	path := writeTempSource(t, "app.py", `def handler(request):
    if request.ok:
        return request.body
    return None

def helper():
    for item in items:
        print(item)
`)

	fq, err := HeuristicAnalyzer{}.Analyze(path)
	if err != nil {
		t.Fatal(err)
	}
	if fq == nil {
		t.Fatal("expected a reading")
	}
	if fq.FunctionsCount != 2 {
		t.Errorf("FunctionsCount = %d, want 2", fq.FunctionsCount)
	}
	// 1 + decisions/functions = 1 + 2/2
	if fq.Complexity != 2 {
		t.Errorf("Complexity = %v, want 2", fq.Complexity)
	}
	if fq.Maintainability != 0 {
		t.Errorf("heuristic path must not report maintainability, got %v", fq.Maintainability)
	}
}

func TestHeuristicAnalyzer_NoFunctionsNoSignal(t *testing.T) {
	path := writeTempSource(t, "settings.py", "DEBUG = True\nNAME = 'x'\n")

	fq, err := HeuristicAnalyzer{}.Analyze(path)
	if err != nil {
		t.Fatal(err)
	}
	if fq != nil {
		t.Errorf("expected nil reading, got %+v", fq)
	}
}

func TestHeuristicAnalyzer_UnknownExtensionNoSignal(t *testing.T) {
	path := writeTempSource(t, "script.lua", "function f() end\n")

	fq, err := HeuristicAnalyzer{}.Analyze(path)
	if err != nil {
		t.Fatal(err)
	}
	if fq != nil {
		t.Errorf("expected nil reading for unsupported extension, got %+v", fq)
	}
}

func TestHeuristicAnalyzer_JavaScriptArrowFunctions(t *testing.T) {
	path := writeTempSource(t, "app.js", `const f = (x) => x + 1
function g(y) {
	if (y > 0 || y < -10) {
		return y
	}
	return 0
}
`)

	fq, err := HeuristicAnalyzer{}.Analyze(path)
	if err != nil {
		t.Fatal(err)
	}
	if fq.FunctionsCount != 2 {
		t.Errorf("FunctionsCount = %d, want 2 (arrow + function)", fq.FunctionsCount)
	}
	// decisions: if, || -> 1 + 2/2 = 2
	if fq.Complexity != 2 {
		t.Errorf("Complexity = %v, want 2", fq.Complexity)
	}
}

func TestHeuristicAnalyzer_RustFunctions(t *testing.T) {
	path := writeTempSource(t, "lib.rs", `pub fn run(n: i32) -> i32 {
    if n > 0 {
        n
    } else {
        -n
    }
}
`)

	fq, err := HeuristicAnalyzer{}.Analyze(path)
	if err != nil {
		t.Fatal(err)
	}
	if fq.FunctionsCount != 1 {
		t.Errorf("FunctionsCount = %d, want 1", fq.FunctionsCount)
	}
}
