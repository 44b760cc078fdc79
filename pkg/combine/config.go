// File: pkg/combine/config.go
package combine

// Set is a set of names or extensions.
type Set map[string]struct{}

// NewSet builds a Set from the given items.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Has reports whether item is in the set. The empty string is never a member.
func (s Set) Has(item string) bool {
	if item == "" {
		return false
	}
	_, ok := s[item]
	return ok
}

// Config holds the filtering and labelling rules for a run.
// It is not modified after construction.
type Config struct {
	IncludedExtensions        Set               // Extensions (".go") or literal file names ("Dockerfile") to include.
	ExcludedDirectories       Set               // Directory names pruned from traversal.
	ExcludedNamesOrExtensions Set               // File names or extensions that are never included.
	LanguageMap               map[string]string // Extension or file name to code fence language tag.
}

// Language returns the fence tag for a file: the literal name first,
// then the lower-cased extension, then the empty tag.
func (c Config) Language(name string) string {
	if lang, ok := c.LanguageMap[name]; ok {
		return lang
	}
	if lang, ok := c.LanguageMap[Extension(name)]; ok {
		return lang
	}
	return ""
}

// DefaultConfig returns a fresh copy of the default rules.
func DefaultConfig() Config {
	languages := make(map[string]string, len(defaultLanguages))
	for k, v := range defaultLanguages {
		languages[k] = v
	}
	return Config{
		IncludedExtensions:        NewSet(defaultIncluded...),
		ExcludedDirectories:       NewSet(defaultExcludedDirs...),
		ExcludedNamesOrExtensions: NewSet(defaultExcluded...),
		LanguageMap:               languages,
	}
}

var defaultIncluded = []string{
	".py", ".js", ".jsx", ".ts", ".tsx", ".html", ".htm", ".css", ".scss",
	".java", ".kt", ".swift", ".c", ".cpp", ".h", ".hpp", ".cs", ".go",
	".php", ".rb", ".pl", ".sh", ".bat", ".ps1",
	".json", ".yaml", ".yml", ".xml", ".toml", ".ini", ".cfg",
	".md", ".txt", ".rst", ".tex",
	".sql", ".dockerfile", "Dockerfile", ".env", ".gitignore", ".gitattributes",
}

var defaultExcludedDirs = []string{
	".git", "node_modules", "venv", ".venv", "env", ".env",
	"__pycache__", "dist", "build", "target", "out",
	".vscode", ".idea", ".project", ".settings",
	"vendor", "Pods", "Carthage",
}

var defaultExcluded = []string{
	".log", ".tmp", ".temp", ".swp", ".bak", ".old",
	".DS_Store", "Thumbs.db",
	".lock", "package-lock.json", "yarn.lock", "composer.lock", "Pipfile.lock",
	// Binary formats
	".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ico", ".svg",
	".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx",
	".zip", ".tar", ".gz", ".rar", ".7z",
	".exe", ".dll", ".so", ".dylib", ".jar", ".class", ".pyc", ".o",
	".mp3", ".wav", ".mp4", ".mov", ".avi",
}

var defaultLanguages = map[string]string{
	".py":            "python",
	".js":            "javascript",
	".jsx":           "jsx",
	".ts":            "typescript",
	".tsx":           "tsx",
	".html":          "html",
	".htm":           "html",
	".css":           "css",
	".scss":          "scss",
	".java":          "java",
	".kt":            "kotlin",
	".swift":         "swift",
	".c":             "c",
	".cpp":           "cpp",
	".h":             "c", // C or C++, default to C
	".hpp":           "cpp",
	".cs":            "csharp",
	".go":            "go",
	".php":           "php",
	".rb":            "ruby",
	".pl":            "perl",
	".sh":            "bash",
	".bat":           "batch",
	".ps1":           "powershell",
	".json":          "json",
	".yaml":          "yaml",
	".yml":           "yaml",
	".xml":           "xml",
	".toml":          "toml",
	".ini":           "ini",
	".cfg":           "ini",
	".md":            "markdown",
	".txt":           "text",
	".rst":           "rst",
	".tex":           "latex",
	".sql":           "sql",
	".dockerfile":    "dockerfile",
	"Dockerfile":     "dockerfile",
	".env":           "text",
	".gitignore":     "text",
	".gitattributes": "text",
}

// Arguments holds the command-line options for a run.
type Arguments struct {
	Directory      string // The directory to scan.
	Output         string // Destination path for the Markdown document.
	DetectEncoding bool   // Use statistical charset detection when UTF-8 fails.
	Header         bool   // Prepend the introductory header block.
	Tree           bool   // Include a tree of the emitted files in the header.
	WarnSizeKB     int    // Output size above which Result.Large is set.
}

// Defaults used by the command line.
const (
	DefaultOutput     = "project_context.md"
	DefaultWarnSizeKB = 750
)
