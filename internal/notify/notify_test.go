package notify_test

import (
	"testing"
	"time"

	"foodcourt-web/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenter_PushAndExpire(t *testing.T) {
	center := notify.NewCenter(30 * time.Millisecond)

	center.Push("s1", "Order placed", notify.SeveritySuccess)

	active := center.Active("s1")
	require.Len(t, active, 1)
	assert.Equal(t, "Order placed", active[0].Message)
	assert.Equal(t, notify.SeveritySuccess, active[0].Severity)
	assert.NotZero(t, active[0].ID)

	assert.Eventually(t, func() bool {
		return len(center.Active("s1")) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestCenter_IDsAreUniqueWithinSession(t *testing.T) {
	center := notify.NewCenter(time.Second)

	center.Push("s1", "first", notify.SeverityError)
	center.Push("s1", "second", notify.SeverityError)
	center.Push("s1", "third", notify.SeverityError)

	active := center.Active("s1")
	require.Len(t, active, 3)
	seen := map[int64]bool{}
	for _, n := range active {
		assert.False(t, seen[n.ID])
		seen[n.ID] = true
	}
}

func TestCenter_SessionsAreIsolated(t *testing.T) {
	center := notify.NewCenter(time.Second)

	center.Push("s1", "only for s1", notify.SeveritySuccess)

	assert.Len(t, center.Active("s1"), 1)
	assert.Empty(t, center.Active("s2"))
}

func TestCenter_ExpiryRemovesOnlyTheExpired(t *testing.T) {
	center := notify.NewCenter(40 * time.Millisecond)

	center.Push("s1", "early", notify.SeverityError)
	time.Sleep(25 * time.Millisecond)
	center.Push("s1", "late", notify.SeverityError)

	assert.Eventually(t, func() bool {
		active := center.Active("s1")
		return len(active) == 1 && active[0].Message == "late"
	}, time.Second, 5*time.Millisecond)

	assert.Eventually(t, func() bool {
		return len(center.Active("s1")) == 0
	}, time.Second, 5*time.Millisecond)
}
