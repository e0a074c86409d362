package images

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewMemeStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save("cat.png", bytes.NewReader([]byte("img-bytes"))))

	path, ok := store.Path("cat.png")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "memes", "cat.png"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("img-bytes"), data)

	_, ok = store.Path("dog.png")
	assert.False(t, ok)

	require.NoError(t, store.Remove("cat.png"))
	_, ok = store.Path("cat.png")
	assert.False(t, ok)

	// removing twice is not an error
	assert.NoError(t, store.Remove("cat.png"))
}

func TestStore_rejectsPathTricks(t *testing.T) {
	store, err := NewMemeStore(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "../../etc/passwd", "a/b.png", ".hidden"} {
		assert.Error(t, store.Save(name, bytes.NewReader(nil)), name)
		_, ok := store.Path(name)
		assert.False(t, ok, name)
	}
}
