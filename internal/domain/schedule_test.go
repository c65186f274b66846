package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bclub/TableReservationService/pkg/types"
)

func interval(start, end string) Interval {
	return Interval{
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func activeReservation(tableID int64, start, end string) *Reservation {
	return &Reservation{
		ID:        1,
		UserID:    1,
		TableID:   tableID,
		Date:      "2024-06-01",
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Status:    StatusActive,
	}
}

func TestGenerateSlots_DefaultSchedule(t *testing.T) {
	// Открытие 15:00, закрытие 00:00 (конец суток), слот 2 часа
	slots, err := GenerateSlots("15:00", "00:00", 2)
	require.NoError(t, err)

	expected := []Interval{
		interval("15:00", "17:00"),
		interval("17:00", "19:00"),
		interval("19:00", "21:00"),
		interval("21:00", "23:00"),
		interval("23:00", "01:00"),
	}
	assert.Equal(t, expected, slots)
}

func TestGenerateSlots_LastSlotWrapsPastMidnight(t *testing.T) {
	slots, err := GenerateSlots("15:00", "00:00", 2)
	require.NoError(t, err)
	require.Len(t, slots, 5)

	// Конец последнего слота не обрезается по времени закрытия
	last := slots[len(slots)-1]
	assert.Equal(t, types.TimeString("23:00"), last.StartTime)
	assert.Equal(t, types.TimeString("01:00"), last.EndTime)
}

func TestGenerateSlots_EvenSplit(t *testing.T) {
	slots, err := GenerateSlots("10:00", "14:00", 2)
	require.NoError(t, err)

	expected := []Interval{
		interval("10:00", "12:00"),
		interval("12:00", "14:00"),
	}
	assert.Equal(t, expected, slots)
}

func TestGenerateSlots_InvalidDuration(t *testing.T) {
	_, err := GenerateSlots("15:00", "00:00", 0)
	assert.ErrorIs(t, err, ErrInvalidSlotDuration)

	_, err = GenerateSlots("15:00", "00:00", -1)
	assert.ErrorIs(t, err, ErrInvalidSlotDuration)
}

func TestOverlaps_TouchingIntervalsDoNotOverlap(t *testing.T) {
	a := interval("10:00", "12:00")
	b := interval("12:00", "14:00")

	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestOverlaps_PartialOverlap(t *testing.T) {
	a := interval("17:00", "19:00")
	b := interval("18:00", "20:00")

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
}

func TestOverlaps_FullContainment(t *testing.T) {
	outer := interval("10:00", "14:00")
	inner := interval("11:00", "12:00")

	assert.True(t, outer.Overlaps(inner))
	assert.True(t, inner.Overlaps(outer))
}

func TestOverlaps_IdenticalIntervals(t *testing.T) {
	a := interval("10:00", "12:00")
	b := interval("10:00", "12:00")

	assert.True(t, a.Overlaps(b))
}

func TestOverlaps_DisjointIntervals(t *testing.T) {
	a := interval("10:00", "11:00")
	b := interval("13:00", "14:00")

	assert.False(t, a.Overlaps(b))
	assert.False(t, b.Overlaps(a))
}

func TestComputeAvailability_MarksBookedSlots(t *testing.T) {
	slots, err := GenerateSlots("15:00", "00:00", 2)
	require.NoError(t, err)

	reservations := []*Reservation{
		activeReservation(3, "17:00", "19:00"),
	}

	availability := ComputeAvailability(slots, reservations, 3)
	require.Len(t, availability, 5)

	assert.True(t, availability[0].IsAvailable)  // 15:00-17:00
	assert.False(t, availability[1].IsAvailable) // 17:00-19:00
	assert.True(t, availability[2].IsAvailable)  // 19:00-21:00
	assert.True(t, availability[3].IsAvailable)  // 21:00-23:00
	assert.True(t, availability[4].IsAvailable)  // 23:00-01:00
}

func TestComputeAvailability_IgnoresOtherTables(t *testing.T) {
	slots, err := GenerateSlots("15:00", "00:00", 2)
	require.NoError(t, err)

	reservations := []*Reservation{
		activeReservation(5, "17:00", "19:00"),
	}

	availability := ComputeAvailability(slots, reservations, 3)
	for _, slot := range availability {
		assert.True(t, slot.IsAvailable)
	}
}

func TestComputeAvailability_IgnoresInactiveReservations(t *testing.T) {
	slots, err := GenerateSlots("15:00", "00:00", 2)
	require.NoError(t, err)

	cancelled := activeReservation(3, "17:00", "19:00")
	cancelled.Status = StatusCancelled
	completed := activeReservation(3, "19:00", "21:00")
	completed.Status = StatusCompleted

	availability := ComputeAvailability(slots, []*Reservation{cancelled, completed}, 3)
	for _, slot := range availability {
		assert.True(t, slot.IsAvailable)
	}
}

func TestFindConflict_ReturnsOverlappingReservation(t *testing.T) {
	existing := activeReservation(3, "17:00", "19:00")
	reservations := []*Reservation{existing}

	conflict := FindConflict(interval("18:00", "20:00"), 3, reservations)
	require.NotNil(t, conflict)
	assert.Equal(t, existing.ID, conflict.ID)
}

func TestFindConflict_NoConflictOnTouchingInterval(t *testing.T) {
	reservations := []*Reservation{
		activeReservation(3, "17:00", "19:00"),
	}

	assert.Nil(t, FindConflict(interval("19:00", "21:00"), 3, reservations))
	assert.Nil(t, FindConflict(interval("15:00", "17:00"), 3, reservations))
}

func TestCanTransitionTo(t *testing.T) {
	active := &Reservation{Status: StatusActive}
	assert.True(t, active.CanTransitionTo(StatusCompleted))
	assert.True(t, active.CanTransitionTo(StatusCancelled))
	assert.True(t, active.CanTransitionTo(StatusActive))

	completed := &Reservation{Status: StatusCompleted}
	assert.False(t, completed.CanTransitionTo(StatusActive))
	assert.False(t, completed.CanTransitionTo(StatusCancelled))

	cancelled := &Reservation{Status: StatusCancelled}
	assert.False(t, cancelled.CanTransitionTo(StatusActive))
	assert.False(t, cancelled.CanTransitionTo(StatusCompleted))
}
