package catalog_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rocket-stove/internal/catalog"
)

func TestCache_ReusesUnchangedFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "rocket_stove.csv", []byte(rocketStove))
	cache := catalog.NewCache(path)
	assert.Equal(t, path, cache.Path())
	assert.False(t, cache.Cached())

	first, err := cache.Load()
	require.NoError(t, err)
	assert.True(t, cache.Cached())

	second, err := cache.Load()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Callers own their copy.
	first.Titles[0] = "mutated"
	first.URLs["Stove Test"] = append(first.URLs["Stove Test"], "extra")

	third, err := cache.Load()
	require.NoError(t, err)
	assert.Equal(t, "Rocket Stove Build", third.Titles[0])
	assert.Equal(t, []string{"https://youtu.be/def456"}, third.URLs["Stove Test"])
}

func TestCache_ReloadsChangedFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "rocket_stove.csv", []byte(rocketStove))
	cache := catalog.NewCache(path)

	c, err := cache.Load()
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	require.NoError(t, os.WriteFile(path, []byte(rocketStove+"Stove Test,https://youtu.be/ghi789\n"), 0o600))
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))

	c, err = cache.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
}

func TestCache_Invalidate(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "rocket_stove.csv", []byte(rocketStove))
	cache := catalog.NewCache(path)

	_, err := cache.Load()
	require.NoError(t, err)
	cache.Invalidate()
	assert.False(t, cache.Cached())

	_, err = cache.Load()
	require.NoError(t, err)
	assert.True(t, cache.Cached())
}

func TestCache_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "rocket_stove.csv")
	cache := catalog.NewCache(path)

	_, err := cache.Load()
	require.ErrorIs(t, err, catalog.ErrResourceUnavailable)

	writeFile(t, dir, "rocket_stove.csv", []byte("title,url\nbroken\n"))
	_, err = cache.Load()
	require.ErrorIs(t, err, catalog.ErrMalformedRecord)
	assert.False(t, cache.Cached())

	require.NoError(t, os.WriteFile(path, []byte(rocketStove), 0o600))
	future := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, future, future))
	c, err := cache.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	require.NoError(t, os.Remove(path))
	_, err = cache.Load()
	require.ErrorIs(t, err, catalog.ErrResourceUnavailable)
	assert.False(t, cache.Cached())
}
