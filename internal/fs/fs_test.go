package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS(t *testing.T) {
	tmp := t.TempDir()
	lfs := LocalFS{}

	dir := filepath.Join(tmp, "subdir")
	require.NoError(t, lfs.MkdirAll(dir, 0o755))

	f, err := lfs.CreateTemp(dir, ".tmp-*")
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(f.Name()))

	_, err = f.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, f.Sync())
	require.NoError(t, f.Close())

	target := filepath.Join(dir, "set.txt")
	require.NoError(t, lfs.Rename(f.Name(), target))
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, lfs.Remove(target))
	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err))
}

func TestFaultyFS(t *testing.T) {
	dir := t.TempDir()
	boom := errors.New("disk on fire")

	t.Run("FailAfterBytes", func(t *testing.T) {
		ffs := NewFaultyFS(nil)
		ffs.Default = Fault{FailAfterBytes: 4}

		f, err := ffs.CreateTemp(dir, "w-*")
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		_, err = f.Write([]byte("abc"))
		require.NoError(t, err)
		_, err = f.Write([]byte("de"))
		assert.ErrorIs(t, err, ErrInjected)
		assert.Equal(t, int64(3), ffs.Written())
	})

	t.Run("FailOnSync", func(t *testing.T) {
		ffs := NewFaultyFS(nil)
		ffs.AddRule("sync-", Fault{FailAfterBytes: -1, FailOnSync: true, Err: boom})

		f, err := ffs.CreateTemp(dir, "sync-*")
		require.NoError(t, err)
		assert.ErrorIs(t, f.Sync(), boom)
		require.NoError(t, f.Close())

		other, err := ffs.CreateTemp(dir, "plain-*")
		require.NoError(t, err)
		assert.NoError(t, other.Sync())
		require.NoError(t, other.Close())
	})

	t.Run("FailOnClose", func(t *testing.T) {
		ffs := NewFaultyFS(nil)
		ffs.Default = Fault{FailAfterBytes: -1, FailOnClose: true}

		f, err := ffs.CreateTemp(dir, "close-*")
		require.NoError(t, err)
		assert.ErrorIs(t, f.Close(), ErrInjected)
	})

	t.Run("FailOnRename", func(t *testing.T) {
		ffs := NewFaultyFS(nil)
		ffs.AddRule("mv-", Fault{FailAfterBytes: -1, FailOnRename: true})

		f, err := ffs.CreateTemp(dir, "mv-*")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		err = ffs.Rename(f.Name(), filepath.Join(dir, "target"))
		assert.ErrorIs(t, err, ErrInjected)
		require.NoError(t, ffs.Remove(f.Name()))
	})
}
