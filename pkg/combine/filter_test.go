package combine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"main.go", ".go"},
		{"README.MD", ".md"},
		{"archive.TAR.GZ", ".gz"},
		{"Dockerfile", ""},
		{".gitignore", ""},
		{"..hidden.txt", ".txt"},
		{"noext.", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extension(tt.name))
		})
	}
}

func TestFilter_Defaults(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name   string
		want   Decision
		reason Reason
	}{
		{"a.py", Include, ReasonIncluded},
		{"App.JSX", Include, ReasonIncluded},
		{"Dockerfile", Include, ReasonIncluded},
		{".gitignore", Include, ReasonIncluded},
		{".env", Include, ReasonIncluded},
		{"b.png", Exclude, ReasonExcluded},
		{"yarn.lock", Exclude, ReasonExcluded},
		{"package-lock.json", Exclude, ReasonExcluded},
		{".DS_Store", Exclude, ReasonExcluded},
		{"server.log", Exclude, ReasonExcluded},
		{"Makefile", Exclude, ReasonNotIncluded},
		{"main.rs", Exclude, ReasonNotIncluded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := cfg.Classify(tt.name)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.reason, reason)
			assert.Equal(t, tt.want, cfg.Filter(tt.name))
		})
	}
}

func TestFilter_ExclusionWins(t *testing.T) {
	cfg := Config{
		IncludedExtensions:        NewSet(".json", "special.txt", ".txt"),
		ExcludedNamesOrExtensions: NewSet("package-lock.json", ".txt"),
	}

	assert.Equal(t, Include, cfg.Filter("data.json"))
	assert.Equal(t, Exclude, cfg.Filter("package-lock.json"), "name exclusion beats extension inclusion")
	assert.Equal(t, Exclude, cfg.Filter("special.txt"), "extension exclusion beats name inclusion")
}

func TestFilter_TruthTable(t *testing.T) {
	names := []string{"x.a", "x.b", "y.a", "y.b", "x", "y"}
	sets := []Set{NewSet(), NewSet("x.a"), NewSet(".a"), NewSet("x.a", ".b"), NewSet("x", ".a")}

	for _, inc := range sets {
		for _, exc := range sets {
			cfg := Config{IncludedExtensions: inc, ExcludedNamesOrExtensions: exc}
			for _, n := range names {
				e := Extension(n)
				want := (inc.Has(n) || inc.Has(e)) && !(exc.Has(n) || exc.Has(e))
				assert.Equal(t, want, cfg.Filter(n) == Include, "name=%s inc=%v exc=%v", n, inc, exc)
			}
		}
	}
}

func TestSkipDir(t *testing.T) {
	cfg := DefaultConfig()

	for _, name := range []string{"node_modules", ".git", ".cache", "vendor", "__pycache__", "build"} {
		assert.True(t, cfg.SkipDir(name), name)
	}
	for _, name := range []string{"src", "internal", "Build", "docs"} {
		assert.False(t, cfg.SkipDir(name), name)
	}
}

func TestLanguage(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "python", cfg.Language("a.py"))
	assert.Equal(t, "python", cfg.Language("A.PY"))
	assert.Equal(t, "dockerfile", cfg.Language("Dockerfile"))
	assert.Equal(t, "dockerfile", cfg.Language("prod.Dockerfile"))
	assert.Equal(t, "text", cfg.Language(".gitignore"))
	assert.Equal(t, "", cfg.Language("Makefile"))
}

func TestDefaultConfigIsACopy(t *testing.T) {
	a := DefaultConfig()
	a.LanguageMap[".go"] = "golang"
	delete(a.IncludedExtensions, ".go")

	b := DefaultConfig()
	assert.Equal(t, "go", b.LanguageMap[".go"])
	assert.True(t, b.IncludedExtensions.Has(".go"))
}
