package languages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloc/internal/clocerr"
)

// TestRegistryResolvesCommonExtensions 确认常见后缀都能找到语言配置。
func TestRegistryResolvesCommonExtensions(t *testing.T) {
	registry := NewRegistry()

	cases := map[string]string{
		"go":    "Go",
		"rs":    "Rust",
		"py":    "Python",
		"js":    "JavaScript",
		"ts":    "TypeScript",
		"rb":    "Ruby",
		"java":  "Java",
		"cpp":   "C++",
		"h":     "C Header",
		"sql":   "SQL",
		"scss":  "Sass",
		"yaml":  "Yaml",
		"ipynb": "Jupyter Notebooks",
	}
	for ext, name := range cases {
		profile, ok := registry.Resolve(ext)
		require.True(t, ok, ext)
		assert.Equal(t, name, profile.Name, ext)
	}
}

func TestResolveIsCaseSensitiveWithoutDot(t *testing.T) {
	registry := NewRegistry()

	_, ok := registry.Resolve("GO")
	assert.False(t, ok)
	_, ok = registry.Resolve(".go")
	assert.False(t, ok)
}

func TestLookupReportsUnrecognized(t *testing.T) {
	registry := NewRegistry()

	profile, err := registry.Lookup("/src/pkg/main.go")
	require.NoError(t, err)
	assert.Equal(t, "Go", profile.Name)

	for _, path := range []string{"/src/data.xyz", "/src/Makefile", "/src/.bashrc"} {
		_, err := registry.Lookup(path)
		assert.True(t, clocerr.IsKind(err, clocerr.KindUnrecognized), path)
	}
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "gz", Extension("/tmp/archive.tar.gz"))
	assert.Equal(t, "rs", Extension("main.rs"))
	assert.Equal(t, "", Extension("/tmp/.gitignore"))
	assert.Equal(t, "", Extension("/tmp/LICENSE"))
	assert.Equal(t, "", Extension("/tmp/trailing."))
}

func TestLaterProfileWinsSharedExtension(t *testing.T) {
	registry := NewRegistryFrom([]Profile{
		{Name: "First", Extensions: []string{"x", "a"}},
		{Name: "Second", Extensions: []string{"x"}},
	})

	profile, ok := registry.Resolve("x")
	require.True(t, ok)
	assert.Equal(t, "Second", profile.Name)
	assert.Equal(t, []string{"a"}, registry.ExtensionsForLanguage("First"))
	assert.Nil(t, registry.ExtensionsForLanguage("Missing"))
}

func TestLanguagesSortedByName(t *testing.T) {
	languages := NewRegistry().Languages()
	require.NotEmpty(t, languages)

	for i := 1; i < len(languages); i++ {
		assert.LessOrEqual(t, languages[i-1].Name, languages[i].Name)
	}
}

func TestBuiltinProfilesAreWellFormed(t *testing.T) {
	for _, profile := range builtinProfiles() {
		assert.NotEmpty(t, profile.Name)
		assert.NotEmpty(t, profile.Extensions, profile.Name)
		for _, ext := range profile.Extensions {
			assert.NotContains(t, ext, ".", profile.Name)
		}
		for _, pair := range profile.Blocks {
			assert.NotEmpty(t, pair.Start, profile.Name)
			assert.NotEmpty(t, pair.End, profile.Name)
		}
	}
}
