package stats

// languageByExtension maps lower-cased file extensions to human-readable
// language names. Membership in ProjectStats.Languages is informational only.
var languageByExtension = map[string]string{
	".py":    "Python",
	".js":    "JavaScript",
	".ts":    "TypeScript",
	".java":  "Java",
	".cpp":   "C++",
	".c":     "C",
	".cs":    "C#",
	".go":    "Go",
	".rs":    "Rust",
	".rb":    "Ruby",
	".php":   "PHP",
	".swift": "Swift",
	".kt":    "Kotlin",
	".scala": "Scala",
	".r":     "R",
	".m":     "MATLAB",
	".sh":    "Shell",
	".sql":   "SQL",
	".html":  "HTML",
	".css":   "CSS",
	".jsx":   "React",
	".tsx":   "React TypeScript",
	".vue":   "Vue",
	".ipynb": "Jupyter Notebook",
}
