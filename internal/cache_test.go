package internal

import (
	"go/token"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/organisemyprojects/guilint/internal/types"
)

func testIssue(filename string) tt.Issue {
	return tt.Issue{
		Rule:     "widget-naming",
		Category: tt.CategoryNaming,
		Filename: filename,
		Severity: tt.SeverityError,
		Message:  "test issue",
		Start:    token.Position{Filename: filename, Line: 1, Column: 1},
		End:      token.Position{Filename: filename, Line: 1, Column: 10},
	}
}

func writeTestSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCacheSetGet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestSource(t, dir, "app.py", "x = 1\n")

	cache, err := NewCache(dir)
	require.NoError(t, err)

	issues := []tt.Issue{testIssue(path)}
	require.NoError(t, cache.Set(path, issues))

	got, ok := cache.Get(path)
	require.True(t, ok)
	assert.Equal(t, issues, got)
}

func TestCacheMissForUnknownFile(t *testing.T) {
	t.Parallel()

	cache, err := NewCache(t.TempDir())
	require.NoError(t, err)

	_, ok := cache.Get("never-seen.py")
	assert.False(t, ok)
}

func TestCacheInvalidatedByContentChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestSource(t, dir, "app.py", "x = 1\n")

	cache, err := NewCache(dir)
	require.NoError(t, err)
	require.NoError(t, cache.Set(path, []tt.Issue{testIssue(path)}))

	require.NoError(t, os.WriteFile(path, []byte("x = 2\n"), 0o644))

	_, ok := cache.Get(path)
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestSource(t, dir, "app.py", "x = 1\n")

	cache, err := NewCache(dir)
	require.NoError(t, err)
	require.NoError(t, cache.Set(path, []tt.Issue{testIssue(path)}))

	cache.SetMaxAge(-time.Second)

	_, ok := cache.Get(path)
	assert.False(t, ok)
}

func TestCachePersistsAcrossInstances(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestSource(t, dir, "app.py", "x = 1\n")

	cache, err := NewCache(dir)
	require.NoError(t, err)
	issues := []tt.Issue{testIssue(path)}
	require.NoError(t, cache.Set(path, issues))

	reopened, err := NewCache(dir)
	require.NoError(t, err)

	got, ok := reopened.Get(path)
	require.True(t, ok)
	assert.Equal(t, issues, got)
}

func TestCacheInvalidateAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestSource(t, dir, "app.py", "x = 1\n")

	cache, err := NewCache(dir)
	require.NoError(t, err)
	require.NoError(t, cache.Set(path, []tt.Issue{testIssue(path)}))

	cache.InvalidateAll()

	_, ok := cache.Get(path)
	assert.False(t, ok)
}
