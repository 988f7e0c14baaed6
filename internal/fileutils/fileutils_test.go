package fileutils_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"romamo/ibkr-flex/internal/fileutils"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "report.xml")
	require.NoError(t, os.WriteFile(testFile, []byte("<x/>"), 0o600))

	assert.True(t, fileutils.FileExists(testFile))
	assert.False(t, fileutils.FileExists(filepath.Join(tmpDir, "nonexistent.xml")))
	assert.False(t, fileutils.FileExists(tmpDir))
}

func TestDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	assert.True(t, fileutils.DirectoryExists(tmpDir))
	assert.False(t, fileutils.DirectoryExists(filepath.Join(tmpDir, "nonexistent")))

	testFile := filepath.Join(tmpDir, "report.xml")
	require.NoError(t, os.WriteFile(testFile, []byte("<x/>"), 0o600))
	assert.False(t, fileutils.DirectoryExists(testFile))
}

func TestEnsureDirectoryExists(t *testing.T) {
	tmpDir := t.TempDir()

	newDir := filepath.Join(tmpDir, "new", "nested", "dir")
	require.NoError(t, fileutils.EnsureDirectoryExists(newDir))
	assert.True(t, fileutils.DirectoryExists(newDir))

	assert.NoError(t, fileutils.EnsureDirectoryExists(tmpDir))
}

func TestReadInput(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "report.xml")
	require.NoError(t, os.WriteFile(testFile, []byte("from file"), 0o600))

	data, err := fileutils.ReadInput(testFile, nil)
	require.NoError(t, err)
	assert.Equal(t, "from file", string(data))

	data, err = fileutils.ReadInput(fileutils.StdStream, strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(data))

	_, err = fileutils.ReadInput(filepath.Join(tmpDir, "missing.xml"), nil)
	assert.Error(t, err)
}

func TestWriteFileAtomic(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "sub", "report.xml")

	require.NoError(t, fileutils.WriteFileAtomic(target, []byte("first"), 0o644))
	require.NoError(t, fileutils.WriteFileAtomic(target, []byte("second"), 0o644))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteOutput(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, fileutils.WriteOutput("", []byte("to stdout"), &stdout))
	require.NoError(t, fileutils.WriteOutput(fileutils.StdStream, []byte("!"), &stdout))
	assert.Equal(t, "to stdout!", stdout.String())

	target := filepath.Join(t.TempDir(), "out.xml")
	require.NoError(t, fileutils.WriteOutput(target, []byte("to file"), &stdout))
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "to file", string(data))
}
