package attendance

import (
	"testing"
	"time"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closed(userID string, start, end time.Time) attendance.WorkSession {
	minutes := int(end.Sub(start).Minutes())
	return attendance.WorkSession{
		UserID:          userID,
		Start:           start,
		End:             &end,
		DurationMinutes: &minutes,
	}
}

func TestAggregate_DailyBucketing(t *testing.T) {
	day2 := testDay.AddDate(0, 0, 1)
	window := attendance.Window{From: testDay, To: testDay.AddDate(0, 0, 2)}
	sessions := []attendance.WorkSession{
		closed("u1", at(9, 0), at(17, 0)),
		closed("u1", day2.Add(9*time.Hour), day2.Add(13*time.Hour)),
	}

	summary := Aggregate(sessions, nil, window, day2.Add(18*time.Hour))

	assert.Equal(t, 480, summary.DailyMinutes["2024-03-11"])
	assert.Equal(t, 240, summary.DailyMinutes["2024-03-12"])
	assert.Equal(t, 720, summary.TotalMinutes)
}

func TestAggregate_CrossMidnightCreditsEndDay(t *testing.T) {
	window := attendance.Window{From: testDay, To: testDay.AddDate(0, 0, 2)}
	// Night shift 23:00 -> 01:00: all 120 minutes land on the check-out day.
	sessions := []attendance.WorkSession{
		closed("u1", at(23, 0), testDay.AddDate(0, 0, 1).Add(time.Hour)),
	}

	summary := Aggregate(sessions, nil, window, testDay.AddDate(0, 0, 1).Add(2*time.Hour))

	assert.Equal(t, 0, summary.DailyMinutes["2024-03-11"])
	assert.Equal(t, 120, summary.DailyMinutes["2024-03-12"])
}

func TestAggregate_OpenSessionCountsTowardTotals(t *testing.T) {
	now := at(9, 0).Add(20 * time.Hour)
	window := attendance.Window{From: testDay, To: now.Add(time.Minute)}
	events := []attendance.Event{
		punch("u1", at(9, 0), attendance.EventCheckIn, false),
	}

	sessions, _ := ReconstructSessions(events, window, now)
	summary := Aggregate(sessions, events, window, now)

	// 20 hours worked so far, but too old to still count as in-office.
	assert.Equal(t, 1200, summary.TotalMinutes)
	assert.Empty(t, summary.ActiveUserIDs)
}

func TestAggregate_FreshOpenSessionIsActive(t *testing.T) {
	now := at(11, 0)
	window := dayWindow()
	events := []attendance.Event{
		punch("u1", at(9, 0), attendance.EventCheckIn, false),
	}

	sessions, _ := ReconstructSessions(events, window, now)
	summary := Aggregate(sessions, events, window, now)

	assert.Equal(t, 120, summary.TotalMinutes)
	assert.Equal(t, []string{"u1"}, summary.ActiveUserIDs)
}

func TestAggregate_LateCounts(t *testing.T) {
	window := attendance.Window{From: testDay, To: testDay.AddDate(0, 0, 2)}
	day2 := testDay.AddDate(0, 0, 1)
	events := []attendance.Event{
		punch("u1", at(9, 10), attendance.EventCheckIn, true),
		punch("u1", at(17, 0), attendance.EventCheckOut, false),
		punch("u1", day2.Add(9*time.Hour+30*time.Minute), attendance.EventCheckIn, true),
		punch("u2", at(9, 20), attendance.EventCheckIn, true),
		punch("u3", at(8, 0), attendance.EventCheckIn, false),
	}

	summary := Aggregate(nil, events, window, day2.Add(10*time.Hour))

	assert.Equal(t, 3, summary.LateCount)
	assert.Equal(t, []string{"u1", "u2"}, summary.LateUserIDs)
}

func TestAggregate_LatenessIgnoresCheckOuts(t *testing.T) {
	// A late flag on a check-out is meaningless; only arrivals count.
	events := []attendance.Event{
		punch("u1", at(17, 0), attendance.EventCheckOut, true),
	}

	summary := Aggregate(nil, events, dayWindow(), at(18, 0))

	assert.Zero(t, summary.LateCount)
	assert.Empty(t, summary.LateUserIDs)
}

func TestAggregate_EmptyInput(t *testing.T) {
	summary := Aggregate(nil, nil, dayWindow(), at(12, 0))

	assert.Zero(t, summary.TotalMinutes)
	assert.Zero(t, summary.LateCount)
	assert.Empty(t, summary.DailyMinutes)
	assert.Empty(t, summary.ActiveUserIDs)
}

func TestIsCurrentlyActive(t *testing.T) {
	now := at(12, 0)

	t.Run("fresh open session", func(t *testing.T) {
		sessions := []attendance.WorkSession{
			{UserID: "u1", Start: at(9, 0)},
		}
		assert.True(t, IsCurrentlyActive(sessions, now))
	})

	t.Run("stale open session", func(t *testing.T) {
		sessions := []attendance.WorkSession{
			{UserID: "u1", Start: now.Add(-20 * time.Hour)},
		}
		assert.False(t, IsCurrentlyActive(sessions, now))
	})

	t.Run("latest session closed", func(t *testing.T) {
		sessions := []attendance.WorkSession{
			{UserID: "u1", Start: at(7, 0)},
			closed("u1", at(9, 0), at(11, 0)),
		}
		assert.False(t, IsCurrentlyActive(sessions, now))
	})

	t.Run("no sessions", func(t *testing.T) {
		assert.False(t, IsCurrentlyActive(nil, now))
	})
}

func TestReconstructPerUser_SplitsByUser(t *testing.T) {
	window := dayWindow()
	events := []attendance.Event{
		punch("u1", at(9, 0), attendance.EventCheckIn, false),
		punch("u1", at(17, 0), attendance.EventCheckOut, false),
		punch("u2", at(10, 0), attendance.EventCheckIn, false),
	}

	sessions, anomalies := reconstructPerUser(events, window, at(11, 0))

	require.Len(t, sessions, 2)
	assert.Empty(t, anomalies)
	assert.Equal(t, "u1", sessions[0].UserID)
	assert.False(t, sessions[0].IsOpen())
	assert.Equal(t, "u2", sessions[1].UserID)
	assert.True(t, sessions[1].IsOpen())
}
