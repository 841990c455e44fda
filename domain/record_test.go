package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecordLess(t *testing.T) {
	fast := Record{Moves: 10, Elapsed: time.Second}
	slow := Record{Moves: 10, Elapsed: 2 * time.Second}
	long := Record{Moves: 12, Elapsed: time.Millisecond}

	assert.True(t, fast.Less(slow))
	assert.False(t, slow.Less(fast))
	assert.True(t, slow.Less(long))
	assert.False(t, fast.Less(fast))
}
