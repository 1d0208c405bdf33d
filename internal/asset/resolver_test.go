package asset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doe2024.pdf"), []byte("%PDF-1.4"), 0644))

	r := NewResolver(dir, "/assets/pp")

	url, ok := r.Resolve("doe2024.pdf")
	assert.True(t, ok)
	assert.Equal(t, "/assets/pp/doe2024.pdf", url)

	url, ok = r.Resolve("doe2024-slides.pdf")
	assert.False(t, ok)
	assert.Empty(t, url)
}

func TestResolve_EmptyDir(t *testing.T) {
	r := NewResolver("", "/assets")
	_, ok := r.Resolve("anything.pdf")
	assert.False(t, ok)

	var nilResolver *Resolver
	_, ok = nilResolver.Resolve("anything.pdf")
	assert.False(t, ok)
}

func TestResolve_PrefixIsLiteral(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), nil, 0644))

	url, ok := NewResolver(dir, "https://cdn.example.org/pp").Resolve("a.pdf")
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.org/pp/a.pdf", url)
}

func TestAssetFileNames(t *testing.T) {
	assert.Equal(t, "doe2024.pdf", PaperFile("doe2024"))
	assert.Equal(t, "doe2024-slides.pdf", SlidesFile("doe2024"))
}

func TestInspect_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a pdf"), 0644))

	_, err := Inspect(path)
	assert.Error(t, err)
}

func TestInspect_Missing(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
}
