package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	before := time.Now()
	got := RealClock{}.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestFixed_Now(t *testing.T) {
	want := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	clk := Fixed(want)

	assert.Equal(t, want, clk.Now())
	// Repeated reads do not advance.
	assert.Equal(t, want, clk.Now())
}
