package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "context"))
	})

	t.Run("wrapped error preserves the chain", func(t *testing.T) {
		err := Wrap(ErrTaskNotFound, "failed to delete task 3")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTaskNotFound)
		assert.Equal(t, "failed to delete task 3: task not found", err.Error())
	})

	t.Run("double wrap still matches the sentinel", func(t *testing.T) {
		err := Wrap(Wrap(ErrStoreCorrupt, "inner"), "outer")
		assert.ErrorIs(t, err, ErrStoreCorrupt)
	})
}

func TestWrapf(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, Wrapf(nil, "task %d", 3))
	})

	t.Run("formats the context", func(t *testing.T) {
		err := Wrapf(ErrTaskNotFound, "failed to complete task %d", 7)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTaskNotFound)
		assert.Contains(t, err.Error(), "failed to complete task 7")
	})
}

func TestIsUserInput(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "empty title", err: ErrEmptyTitle, want: true},
		{name: "invalid task id", err: ErrInvalidTaskID, want: true},
		{name: "invalid output format", err: ErrInvalidOutputFormat, want: true},
		{name: "wrapped empty title", err: fmt.Errorf("add: %w", ErrEmptyTitle), want: true},
		{name: "not found is not user input", err: ErrTaskNotFound, want: false},
		{name: "corrupt store is not user input", err: ErrStoreCorrupt, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUserInput(tt.err))
		})
	}
}

func TestUserInfo(t *testing.T) {
	t.Run("known sentinel returns info", func(t *testing.T) {
		info, ok := UserInfo(ErrTaskNotFound)
		require.True(t, ok)
		assert.NotEmpty(t, info.Message)
		assert.NotEmpty(t, info.Action)
	})

	t.Run("wrapped sentinel still matches", func(t *testing.T) {
		err := Wrapf(ErrStoreCorrupt, "load %s", "tasks.json")
		info, ok := UserInfo(err)
		require.True(t, ok)
		assert.Contains(t, info.Message, "corrupted")
	})

	t.Run("unknown error has no info", func(t *testing.T) {
		_, ok := UserInfo(errors.New("boom"))
		assert.False(t, ok)
	})

	t.Run("every entry is reachable through errors.Is", func(t *testing.T) {
		for _, entry := range errorInfoEntries {
			info, ok := UserInfo(fmt.Errorf("wrapped: %w", entry.err))
			assert.True(t, ok)
			assert.NotEmpty(t, info.Message)
		}
	})
}
