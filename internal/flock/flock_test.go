//go:build unix

package flock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openLockFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.OpenFile(filepath.Join(t.TempDir(), "test.lock"), os.O_CREATE|os.O_RDWR, 0o600)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestExclusive(t *testing.T) {
	t.Run("acquires and releases", func(t *testing.T) {
		f := openLockFile(t)

		require.NoError(t, Exclusive(f.Fd()))
		require.NoError(t, Unlock(f.Fd()))
	})

	t.Run("second descriptor is refused while held", func(t *testing.T) {
		f := openLockFile(t)
		require.NoError(t, Exclusive(f.Fd()))

		other, err := os.OpenFile(f.Name(), os.O_RDWR, 0o600)
		require.NoError(t, err)
		defer func() { _ = other.Close() }()

		assert.Error(t, Exclusive(other.Fd()))

		// Released locks can be picked up by the waiter.
		require.NoError(t, Unlock(f.Fd()))
		assert.NoError(t, Exclusive(other.Fd()))
		require.NoError(t, Unlock(other.Fd()))
	})
}
