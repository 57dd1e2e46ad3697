package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChmod(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "test.txt")
	require.NoError(t, os.WriteFile(path, []byte("test"), 0644))

	require.NoError(t, Chmod(path, 0600))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}
}

func TestChmodDir(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "secure")
	require.NoError(t, os.MkdirAll(dir, 0755))

	require.NoError(t, Chmod(dir, 0700))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
	}
}

func TestCopyMetadata(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src.md")
	dst := filepath.Join(tmp, "dst.md")
	require.NoError(t, os.WriteFile(src, []byte("# src"), 0640))
	require.NoError(t, os.WriteFile(dst, []byte("# src"), 0644))

	stamp := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, stamp, stamp))

	srcInfo, err := os.Stat(src)
	require.NoError(t, err)
	require.NoError(t, CopyMetadata(dst, srcInfo))

	dstInfo, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, dstInfo.ModTime().Equal(stamp), "mtime = %v, want %v", dstInfo.ModTime(), stamp)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0640), dstInfo.Mode().Perm())
	}
}

func TestCopyMetadata_MissingDestination(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src.md")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0644))
	info, err := os.Stat(src)
	require.NoError(t, err)

	assert.Error(t, CopyMetadata(filepath.Join(tmp, "nope.md"), info))
}
