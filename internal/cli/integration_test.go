package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/md2docx/internal/cli"
)

const testMarkdown = "# Hello\n\nSome text with `code`.\n\n- a bullet\n"

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String() + stderr.String(), err
}

func TestIntegration_ConvertExplicitPaths(t *testing.T) {
	tmpDir := t.TempDir()
	mdFile := filepath.Join(tmpDir, "test.md")
	outFile := filepath.Join(tmpDir, "out.docx")
	require.NoError(t, os.WriteFile(mdFile, []byte(testMarkdown), 0644))

	output, err := execute(t, "convert", "--color", "never", mdFile, outFile)
	require.NoError(t, err)

	assert.Contains(t, output, "Converted test.md -> out.docx")
	assert.Contains(t, output, "3 blocks")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")), "output is not a zip container")
}

func TestIntegration_ConvertDerivesOutputPath(t *testing.T) {
	tmpDir := t.TempDir()
	mdFile := filepath.Join(tmpDir, "notes.md")
	require.NoError(t, os.WriteFile(mdFile, []byte(testMarkdown), 0644))

	_, err := execute(t, "convert", "--color", "never", mdFile)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(tmpDir, "notes.docx"))
	assert.NoError(t, statErr)
}

func TestIntegration_ConvertMissingInput(t *testing.T) {
	tmpDir := t.TempDir()
	missing := filepath.Join(tmpDir, "absent.md")

	_, err := execute(t, "convert", "--color", "never", missing)

	require.Error(t, err)
	assert.Equal(t, cli.ExitMissingInput, cli.ExitCodeFromError(err))

	// No output file may be produced.
	_, statErr := os.Stat(filepath.Join(tmpDir, "absent.docx"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestIntegration_ConvertStrict(t *testing.T) {
	tmpDir := t.TempDir()
	mdFile := filepath.Join(tmpDir, "linked.md")
	require.NoError(t, os.WriteFile(mdFile, []byte("see [docs](https://example.com)\n"), 0644))

	_, err := execute(t, "convert", "--color", "never", "--strict", mdFile)

	require.Error(t, err)
	assert.Equal(t, cli.ExitConversionError, cli.ExitCodeFromError(err))
}

func TestIntegration_ConvertWarnsOnFlattenedConstructs(t *testing.T) {
	tmpDir := t.TempDir()
	mdFile := filepath.Join(tmpDir, "linked.md")
	require.NoError(t, os.WriteFile(mdFile, []byte("see [docs](https://example.com)\n"), 0644))

	output, err := execute(t, "convert", "--color", "never", mdFile)
	require.NoError(t, err)

	assert.Contains(t, output, "unsupported construct")
	assert.Contains(t, output, "link")
}

func TestIntegration_ConvertWithConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	mdFile := filepath.Join(tmpDir, "test.md")
	cfgFile := filepath.Join(tmpDir, "custom.yml")
	require.NoError(t, os.WriteFile(mdFile, []byte(testMarkdown), 0644))
	require.NoError(t, os.WriteFile(cfgFile, []byte("strict: true\n"), 0644))

	// Clean input passes strict mode from the config file.
	_, err := execute(t, "convert", "--color", "never", "--config", cfgFile, mdFile)
	assert.NoError(t, err)

	// Input with a link fails under the same config.
	linked := filepath.Join(tmpDir, "linked.md")
	require.NoError(t, os.WriteFile(linked, []byte("[x](y)\n"), 0644))

	_, err = execute(t, "convert", "--color", "never", "--config", cfgFile, linked)
	assert.Error(t, err)
}

func TestIntegration_ConvertBadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	mdFile := filepath.Join(tmpDir, "test.md")
	cfgFile := filepath.Join(tmpDir, "bad.yml")
	require.NoError(t, os.WriteFile(mdFile, []byte(testMarkdown), 0644))
	require.NoError(t, os.WriteFile(cfgFile, []byte(":\n  - ]["), 0644))

	_, err := execute(t, "convert", "--config", cfgFile, mdFile)

	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCodeFromError(err))
}

func TestIntegration_Init(t *testing.T) {
	tmpDir := t.TempDir()
	cfgFile := filepath.Join(tmpDir, ".md2docx.yml")

	_, err := execute(t, "init", "--output", cfgFile)
	require.NoError(t, err)

	data, err := os.ReadFile(cfgFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "font_family")

	// A second init without --force must refuse to overwrite.
	_, err = execute(t, "init", "--output", cfgFile)
	assert.Error(t, err)

	_, err = execute(t, "init", "--output", cfgFile, "--force")
	assert.NoError(t, err)
}

func TestIntegration_TooManyArgs(t *testing.T) {
	_, err := execute(t, "convert", "a.md", "b.docx", "c.docx")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err))
}

func TestIntegration_UnknownFlag(t *testing.T) {
	_, err := execute(t, "convert", "--no-such-flag")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err))
}
