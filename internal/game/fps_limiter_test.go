package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFPSLimiterUnlimitedReturnsImmediately(t *testing.T) {
	f := NewFPSLimiter()
	start := time.Now()
	for range 100 {
		f.wait(0)
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
	assert.True(t, f.next.IsZero())
}

func TestFPSLimiterPacesFrames(t *testing.T) {
	f := NewFPSLimiter()
	start := time.Now()
	for range 5 {
		f.wait(100)
	}
	// Five 10ms intervals
	assert.GreaterOrEqual(t, time.Since(start), 45*time.Millisecond)
}
