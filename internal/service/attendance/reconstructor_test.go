package attendance

import (
	"testing"
	"time"

	"github.com/HamdullahAltun/personel-takip-sub003/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return testDay.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func punch(userID string, ts time.Time, kind attendance.EventKind, late bool) attendance.Event {
	return attendance.Event{UserID: userID, Timestamp: ts, Kind: kind, IsLate: late}
}

func dayWindow() attendance.Window {
	return attendance.Window{From: testDay, To: testDay.AddDate(0, 0, 1)}
}

func TestReconstructSessions_PairsAlternatingPunches(t *testing.T) {
	events := []attendance.Event{
		punch("u1", at(8, 0), attendance.EventCheckIn, false),
		punch("u1", at(12, 0), attendance.EventCheckOut, false),
		punch("u1", at(13, 0), attendance.EventCheckIn, false),
		punch("u1", at(17, 0), attendance.EventCheckOut, false),
	}

	sessions, anomalies := ReconstructSessions(events, dayWindow(), at(18, 0))

	require.Len(t, sessions, 2)
	assert.Empty(t, anomalies)

	require.NotNil(t, sessions[0].DurationMinutes)
	assert.Equal(t, 240, *sessions[0].DurationMinutes)
	require.NotNil(t, sessions[1].DurationMinutes)
	assert.Equal(t, 240, *sessions[1].DurationMinutes)
	assert.False(t, sessions[0].IsOpen())
	assert.False(t, sessions[1].IsOpen())
}

func TestReconstructSessions_FullWorkday(t *testing.T) {
	events := []attendance.Event{
		punch("u1", at(8, 55), attendance.EventCheckIn, true),
		punch("u1", at(17, 5), attendance.EventCheckOut, false),
	}

	sessions, anomalies := ReconstructSessions(events, dayWindow(), at(18, 0))

	require.Len(t, sessions, 1)
	assert.Empty(t, anomalies)
	require.NotNil(t, sessions[0].DurationMinutes)
	assert.Equal(t, 490, *sessions[0].DurationMinutes)
}

func TestReconstructSessions_DoubleCheckInKeepsMostRecent(t *testing.T) {
	events := []attendance.Event{
		punch("u1", at(8, 0), attendance.EventCheckIn, false),
		punch("u1", at(8, 10), attendance.EventCheckIn, false),
		punch("u1", at(17, 0), attendance.EventCheckOut, false),
	}

	sessions, anomalies := ReconstructSessions(events, dayWindow(), at(18, 0))

	require.Len(t, sessions, 1)
	assert.Equal(t, at(8, 10), sessions[0].Start)
	require.NotNil(t, sessions[0].DurationMinutes)
	assert.Equal(t, 490, *sessions[0].DurationMinutes)

	require.Len(t, anomalies, 1)
	assert.Equal(t, attendance.AnomalyDoubleCheckIn, anomalies[0].Kind)
}

func TestReconstructSessions_OrphanCheckOutDiscarded(t *testing.T) {
	events := []attendance.Event{
		punch("u1", at(7, 0), attendance.EventCheckOut, false),
		punch("u1", at(9, 0), attendance.EventCheckIn, false),
		punch("u1", at(17, 0), attendance.EventCheckOut, false),
	}

	sessions, anomalies := ReconstructSessions(events, dayWindow(), at(18, 0))

	require.Len(t, sessions, 1)
	assert.Equal(t, at(9, 0), sessions[0].Start)

	require.Len(t, anomalies, 1)
	assert.Equal(t, attendance.AnomalyOrphanCheckOut, anomalies[0].Kind)
}

func TestReconstructSessions_ClockSkewClampsToZero(t *testing.T) {
	events := []attendance.Event{
		punch("u1", at(9, 0), attendance.EventCheckIn, false),
		punch("u1", at(8, 30), attendance.EventCheckOut, false),
	}
	// Out-of-order timestamps can reach us when a device clock drifts;
	// ordering is by insertion here to simulate that.
	window := dayWindow()

	sessions, anomalies := ReconstructSessions(events, window, at(18, 0))

	require.Len(t, sessions, 1)
	require.NotNil(t, sessions[0].DurationMinutes)
	assert.Equal(t, 0, *sessions[0].DurationMinutes)
	assert.True(t, sessions[0].Anomalous)

	require.Len(t, anomalies, 1)
	assert.Equal(t, attendance.AnomalyClockSkew, anomalies[0].Kind)
}

func TestReconstructSessions_TrailingOpenSession(t *testing.T) {
	events := []attendance.Event{
		punch("u1", at(9, 0), attendance.EventCheckIn, false),
	}

	sessions, anomalies := ReconstructSessions(events, dayWindow(), at(11, 0))

	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].IsOpen())
	assert.Nil(t, sessions[0].DurationMinutes)
	assert.False(t, sessions[0].Stale)
	assert.Empty(t, anomalies)
}

func TestReconstructSessions_StaleOpenSession(t *testing.T) {
	now := at(9, 0).Add(20 * time.Hour)
	window := attendance.Window{From: testDay, To: now.Add(time.Minute)}
	events := []attendance.Event{
		punch("u1", at(9, 0), attendance.EventCheckIn, false),
	}

	sessions, anomalies := ReconstructSessions(events, window, now)

	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].IsOpen())
	assert.True(t, sessions[0].Stale)

	require.Len(t, anomalies, 1)
	assert.Equal(t, attendance.AnomalyStaleOpenSession, anomalies[0].Kind)
}

func TestReconstructSessions_EmptyInput(t *testing.T) {
	sessions, anomalies := ReconstructSessions(nil, dayWindow(), at(12, 0))
	assert.Empty(t, sessions)
	assert.Empty(t, anomalies)
}

func TestReconstructSessions_IgnoresEventsOutsideWindow(t *testing.T) {
	events := []attendance.Event{
		punch("u1", testDay.Add(-2*time.Hour), attendance.EventCheckIn, false),
		punch("u1", at(9, 0), attendance.EventCheckIn, false),
		punch("u1", at(17, 0), attendance.EventCheckOut, false),
	}

	sessions, anomalies := ReconstructSessions(events, dayWindow(), at(18, 0))

	require.Len(t, sessions, 1)
	assert.Equal(t, at(9, 0), sessions[0].Start)
	assert.Empty(t, anomalies)
}
