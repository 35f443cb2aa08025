package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
	taskdeckerrors "github.com/taskdeck/taskdeck/internal/errors"
)

// setupTestStore creates a FileStore against a file in a temp directory.
func setupTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	return s, path
}

// writeRaw writes raw bytes to the store path.
func writeRaw(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// testDoc builds a small valid document.
func testDoc() *domain.TaskFile {
	created := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	return &domain.TaskFile{
		NextID: 3,
		Tasks: []domain.Task{
			{ID: 1, Title: "Buy milk", CreatedAt: created},
			{ID: 2, Title: "Read notes", CreatedAt: created},
		},
	}
}

func TestNewFileStore(t *testing.T) {
	t.Run("binds to path", func(t *testing.T) {
		s, err := NewFileStore("/some/where/tasks.json")
		require.NoError(t, err)
		assert.Equal(t, "/some/where/tasks.json", s.Path())
	})

	t.Run("rejects empty path", func(t *testing.T) {
		_, err := NewFileStore("")
		require.Error(t, err)
		assert.ErrorIs(t, err, taskdeckerrors.ErrEmptyValue)
	})
}

func TestFileStore_Load(t *testing.T) {
	t.Run("missing file returns default document without touching disk", func(t *testing.T) {
		s, path := setupTestStore(t)

		doc, err := s.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(1), doc.NextID)
		assert.Empty(t, doc.Tasks)

		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err), "load must not create the file")
	})

	t.Run("round-trips a saved document", func(t *testing.T) {
		s, _ := setupTestStore(t)
		want := testDoc()

		require.NoError(t, s.Save(context.Background(), want))

		got, err := s.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want.NextID, got.NextID)
		assert.Equal(t, want.Tasks, got.Tasks)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		s, _ := setupTestStore(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := s.Load(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFileStore_Load_Corrupt(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"malformed JSON", `{invalid json`},
		{"missing next_id", `{"tasks": []}`},
		{"tasks not a sequence", `{"next_id": 1, "tasks": 5}`},
		{"task missing title", `{"next_id": 2, "tasks": [{"id": 1, "created_at": "2026-08-26T10:00:00Z"}]}`},
		{"task missing created_at", `{"next_id": 2, "tasks": [{"id": 1, "title": "A"}]}`},
		{"duplicate ids", `{"next_id": 3, "tasks": [
			{"id": 1, "title": "A", "created_at": "2026-08-26T10:00:00Z"},
			{"id": 1, "title": "B", "created_at": "2026-08-26T10:00:00Z"}]}`},
		{"id equal to next_id", `{"next_id": 2, "tasks": [
			{"id": 2, "title": "A", "created_at": "2026-08-26T10:00:00Z"}]}`},
		{"id above next_id", `{"next_id": 2, "tasks": [
			{"id": 7, "title": "A", "created_at": "2026-08-26T10:00:00Z"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, path := setupTestStore(t)
			writeRaw(t, path, tc.content)

			_, err := s.Load(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, taskdeckerrors.ErrStoreCorrupt)
			// The path is part of the message for manual inspection.
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestFileStore_Save(t *testing.T) {
	t.Run("creates file lazily with secure permissions", func(t *testing.T) {
		s, path := setupTestStore(t)

		require.NoError(t, s.Save(context.Background(), testDoc()))

		info, err := os.Stat(path)
		require.NoError(t, err)
		if runtime.GOOS != "windows" {
			assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
		}
	})

	t.Run("writes indented JSON with snake_case fields", func(t *testing.T) {
		s, path := setupTestStore(t)

		require.NoError(t, s.Save(context.Background(), testDoc()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"next_id": 3`)
		assert.Contains(t, string(data), `"created_at": "2026-08-26T10:00:00Z"`)

		var doc domain.TaskFile
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Len(t, doc.Tasks, 2)
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		s, path := setupTestStore(t)

		require.NoError(t, s.Save(context.Background(), testDoc()))

		matches, err := filepath.Glob(path + ".tmp-*")
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("removes stray temp files from prior attempts", func(t *testing.T) {
		s, path := setupTestStore(t)
		stray := path + ".tmp-stale123"
		writeRaw(t, stray, "partial garbage")

		require.NoError(t, s.Save(context.Background(), testDoc()))

		_, err := os.Stat(stray)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("missing target directory is an I/O error", func(t *testing.T) {
		s, err := NewFileStore(filepath.Join(t.TempDir(), "no-such-dir", "tasks.json"))
		require.NoError(t, err)

		err = s.Save(context.Background(), testDoc())
		require.Error(t, err)
		assert.NotErrorIs(t, err, taskdeckerrors.ErrStoreCorrupt)
	})

	t.Run("failed save leaves original file untouched", func(t *testing.T) {
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("permission-based failure injection unavailable")
		}

		s, path := setupTestStore(t)
		require.NoError(t, s.Save(context.Background(), testDoc()))

		original, err := os.ReadFile(path)
		require.NoError(t, err)

		// Make the directory read-only so temp file creation fails
		// before the atomic replace.
		dir := filepath.Dir(path)
		require.NoError(t, os.Chmod(dir, 0o500))
		t.Cleanup(func() { _ = os.Chmod(dir, 0o750) })

		updated := testDoc()
		updated.NextID = 4
		err = s.Save(context.Background(), updated)
		require.Error(t, err)

		require.NoError(t, os.Chmod(dir, 0o750))
		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, original, after, "original must be byte-for-byte unchanged")
	})

	t.Run("rejects nil document", func(t *testing.T) {
		s, _ := setupTestStore(t)
		err := s.Save(context.Background(), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, taskdeckerrors.ErrEmptyValue)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		s, _ := setupTestStore(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, s.Save(ctx, testDoc()), context.Canceled)
	})
}

func TestFileStore_Lock(t *testing.T) {
	t.Run("acquires and releases", func(t *testing.T) {
		s, _ := setupTestStore(t)

		release, err := s.Lock(context.Background())
		require.NoError(t, err)
		release()

		// Re-acquirable after release.
		release, err = s.Lock(context.Background())
		require.NoError(t, err)
		release()
	})

	t.Run("times out while held", func(t *testing.T) {
		s, path := setupTestStore(t)

		release, err := s.Lock(context.Background())
		require.NoError(t, err)
		defer release()

		contender, err := NewFileStore(path, WithLockTimeout(150*time.Millisecond))
		require.NoError(t, err)

		_, err = contender.Lock(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, taskdeckerrors.ErrLockTimeout)
	})

	t.Run("honors context cancellation while waiting", func(t *testing.T) {
		s, path := setupTestStore(t)

		release, err := s.Lock(context.Background())
		require.NoError(t, err)
		defer release()

		contender, err := NewFileStore(path, WithLockTimeout(5*time.Second))
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		_, err = contender.Lock(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
