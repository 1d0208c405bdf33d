package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Explicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yml")
	require.NoError(t, os.WriteFile(path, []byte(`out_format: ts
bib_assets_dir: src/assets/pp
bib_assets_url_prefix: /assets/pp
people: data/people.yml
log_level: debug
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		OutFormat:          "ts",
		BibAssetsDir:       "src/assets/pp",
		BibAssetsURLPrefix: "/assets/pp",
		People:             "data/people.yml",
		LogLevel:           "debug",
	}, cfg)
}

func TestLoad_ExplicitMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestLoad_DefaultMissing(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad_DefaultPresent(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("out_format: json\n"), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutFormat)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("out_format: [json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	assert.Equal(t, filepath.Join(home, "site/people.yml"), ExpandPath("~/site/people.yml"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
	assert.Equal(t, "", ExpandPath(""))
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
