package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/md2docx/internal/configloader"
	"github.com/yaklabco/md2docx/pkg/config"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: t.TempDir(),
	})
	require.NoError(t, err)

	assert.Empty(t, result.LoadedFrom)
	assert.Empty(t, result.Config.Document.FontFamily)
	assert.True(t, result.Config.DetectLanguagesEnabled())
}

func TestLoadDiscoversProjectConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, ".md2docx.yml", "document:\n  font_family: Georgia\n")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
	})
	require.NoError(t, err)

	assert.Equal(t, path, result.LoadedFrom)
	assert.Equal(t, "Georgia", result.Config.Document.FontFamily)
}

func TestLoadPrefersYmlOverYaml(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yml := writeConfig(t, dir, ".md2docx.yml", "document:\n  font_family: First\n")
	writeConfig(t, dir, ".md2docx.yaml", "document:\n  font_family: Second\n")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
	})
	require.NoError(t, err)

	assert.Equal(t, yml, result.LoadedFrom)
	assert.Equal(t, "First", result.Config.Document.FontFamily)
}

func TestLoadExplicitPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, "custom.yml", "strict: true\n")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir:   dir,
		ExplicitPath: path,
	})
	require.NoError(t, err)

	assert.Equal(t, path, result.LoadedFrom)
	assert.True(t, result.Config.Strict)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	t.Parallel()

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		ExplicitPath: filepath.Join(t.TempDir(), "nope.yml"),
	})

	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, ".md2docx.yml", ":\n  - ][")

	_, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
	})

	assert.Error(t, err)
}

func TestLoadCLIOverlayWins(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, ".md2docx.yml", "document:\n  font_family: Georgia\n  font_size: 12\n")

	result, err := configloader.Load(context.Background(), configloader.LoadOptions{
		WorkingDir: dir,
		CLIConfig: &config.Config{
			Document: config.DocumentConfig{FontFamily: "Calibri"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Calibri", result.Config.Document.FontFamily)
	assert.Equal(t, 12, result.Config.Document.FontSizePoints)
}
