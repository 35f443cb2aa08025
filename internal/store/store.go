// Package store provides durable, crash-safe persistence for the taskdeck
// store file. It owns the on-disk representation and the atomic save
// protocol; it has no knowledge of task semantics beyond the schema.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskdeck/taskdeck/internal/constants"
	"github.com/taskdeck/taskdeck/internal/domain"
	taskdeckerrors "github.com/taskdeck/taskdeck/internal/errors"
	"github.com/taskdeck/taskdeck/internal/flock"
)

// Store defines the interface for task file persistence operations.
type Store interface {
	// Load reads and validates the full store document.
	// Returns the default document if the file does not exist.
	Load(ctx context.Context) (*domain.TaskFile, error)

	// Save atomically replaces the store file with the given document.
	// On any failure before the atomic replace, the original file is
	// left completely untouched.
	Save(ctx context.Context, doc *domain.TaskFile) error

	// Lock acquires an exclusive advisory lock serializing concurrent
	// invocations around a load-mutate-save cycle. The returned release
	// function must be called exactly once.
	Lock(ctx context.Context) (release func(), err error)
}

// FileStore implements Store against a single file path.
// One FileStore is created per invocation and discarded at process exit.
type FileStore struct {
	path        string
	lockTimeout time.Duration
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithLockTimeout overrides the advisory lock acquisition timeout.
func WithLockTimeout(d time.Duration) Option {
	return func(s *FileStore) {
		s.lockTimeout = d
	}
}

// NewFileStore creates a FileStore bound to the given path.
func NewFileStore(path string, opts ...Option) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("store path %w", taskdeckerrors.ErrEmptyValue)
	}
	s := &FileStore{
		path:        path,
		lockTimeout: constants.DefaultLockTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path returns the store file path this FileStore is bound to.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and validates the full store document.
//
// If the file does not exist, the default document (next_id=1, no tasks)
// is returned without touching disk. Any parse or invariant failure wraps
// errors.ErrStoreCorrupt with the path and violated invariant; callers
// must treat that as unrecoverable for this invocation — the store never
// auto-repairs, to avoid masking data loss.
func (s *FileStore) Load(ctx context.Context) (*domain.TaskFile, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(s.path) //#nosec G304 -- path comes from validated configuration
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewTaskFile(), nil
		}
		return nil, fmt.Errorf("failed to read store file %s: %w", s.path, err)
	}

	var doc domain.TaskFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: malformed JSON (%v): %w", s.path, err, taskdeckerrors.ErrStoreCorrupt)
	}
	if doc.Tasks == nil {
		doc.Tasks = []domain.Task{}
	}
	if err := doc.Validate(); err != nil {
		return nil, taskdeckerrors.Wrap(err, s.path)
	}

	return &doc, nil
}

// Save atomically replaces the store file with the given document.
//
// The protocol, in required order: serialize fully in memory, write to a
// temporary file in the target's directory, sync it to storage, rename it
// over the target, then best-effort sync the containing directory. A crash
// at any point leaves either the old or the new content observable, never
// a mixture. The store never creates the target directory; a missing
// directory surfaces as an I/O error.
func (s *FileStore) Save(ctx context.Context, doc *domain.TaskFile) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if doc == nil {
		return fmt.Errorf("failed to save store file: document %w", taskdeckerrors.ErrEmptyValue)
	}

	logger := zerolog.Ctx(ctx)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize store file: %w", err)
	}

	// Best-effort removal of temp files left behind by prior failed
	// attempts. Failure to clean up is logged, not fatal.
	s.cleanupStrayTemps(logger)

	dir := filepath.Dir(s.path)
	base := filepath.Base(s.path)

	// The random suffix keeps concurrent invocations from colliding on
	// the temp file; the temp file must live in the target's directory
	// so the final rename stays on one filesystem.
	tmp, err := os.CreateTemp(dir, base+tempSuffixPattern)
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if err := tmp.Chmod(constants.FilePerm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set temp file permissions: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write store data: %w", err)
	}

	// Sync before rename so the bytes survive a crash immediately after
	// the replace.
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync store data: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace store file: %w", err)
	}

	// Sync the directory so the rename itself is durable. Failure here is
	// non-fatal: content is durable, the directory entry possibly not yet.
	if err := syncDir(dir); err != nil {
		logger.Debug().Err(err).Str("dir", dir).Msg("directory sync after rename failed")
	}

	return nil
}

// tempSuffixPattern is appended to the store file name for temp files.
// The '*' is replaced by os.CreateTemp with a random string.
const tempSuffixPattern = ".tmp-*"

// cleanupStrayTemps removes temp files matching our naming pattern that a
// prior failed save may have left behind.
func (s *FileStore) cleanupStrayTemps(logger *zerolog.Logger) {
	pattern := s.path + ".tmp-*"
	matches, err := filepath.Glob(pattern)
	if err != nil {
		logger.Debug().Err(err).Str("pattern", pattern).Msg("stray temp scan failed")
		return
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			logger.Debug().Err(err).Str("file", m).Msg("stray temp removal failed")
		} else {
			logger.Debug().Str("file", m).Msg("removed stray temp file")
		}
	}
}

// syncDir flushes directory metadata so a completed rename survives a crash.
func syncDir(dir string) error {
	d, err := os.Open(dir) //#nosec G304 -- directory of the validated store path
	if err != nil {
		return err
	}
	defer func() { _ = d.Close() }()
	return d.Sync()
}

// Lock acquires an exclusive advisory lock on <path>.lock, retrying until
// the configured timeout. It respects context cancellation during the
// retry loop. The lock serializes whole load-mutate-save cycles across
// concurrent taskdeck processes; readers do not need it because the
// atomic rename already guarantees they never observe a torn file.
func (s *FileStore) Lock(ctx context.Context) (func(), error) {
	lockPath := s.path + ".lock"

	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, constants.FilePerm) //#nosec G304 -- derived from validated store path
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	deadline := time.Now().Add(s.lockTimeout)
	for {
		select {
		case <-ctx.Done():
			_ = f.Close()
			return nil, ctx.Err()
		default:
		}

		if err := flock.Exclusive(f.Fd()); err == nil {
			return func() {
				_ = flock.Unlock(f.Fd())
				_ = f.Close()
			}, nil
		}

		if time.Now().After(deadline) {
			_ = f.Close()
			return nil, fmt.Errorf("failed to acquire lock on %s: %w", lockPath, taskdeckerrors.ErrLockTimeout)
		}

		time.Sleep(constants.LockRetryInterval)
	}
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
