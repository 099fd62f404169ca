package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var selectorNow = time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)

func TestSelector_PicksMinimumEstimatedWait(t *testing.T) {
	sel := NewSelector(nil)

	selection, err := sel.Assign([]DoctorLoad{
		{DoctorID: "doc-a", Available: true, QueueLength: 4, AvgConsultationMinutes: 15, MaxPerDay: 40},
		{DoctorID: "doc-b", Available: true, QueueLength: 1, AvgConsultationMinutes: 15, MaxPerDay: 40},
	}, 0, selectorNow)
	require.NoError(t, err)

	assert.Equal(t, "doc-b", selection.DoctorID)
	assert.Equal(t, 2, selection.QueuePosition)
	assert.Greater(t, selection.EstimatedWait, 0.0)
}

func TestSelector_OverloadPenaltyFlipsChoice(t *testing.T) {
	sel := NewSelector(nil)

	// B has the shorter raw queue, but sits at 90% of daily capacity; the
	// overload penalty must push its estimate past A's.
	selection, err := sel.Assign([]DoctorLoad{
		{DoctorID: "doc-a", Available: true, QueueLength: 5, AvgConsultationMinutes: 10, ServedToday: 2, MaxPerDay: 20},
		{DoctorID: "doc-b", Available: true, QueueLength: 1, AvgConsultationMinutes: 20, ServedToday: 18, MaxPerDay: 20},
	}, 0.2, selectorNow)
	require.NoError(t, err)

	assert.Equal(t, "doc-a", selection.DoctorID)
	assert.Equal(t, 6, selection.QueuePosition)
}

func TestSelector_TieBreaks(t *testing.T) {
	sel := NewSelector(nil)

	t.Run("shorter queue wins at equal wait", func(t *testing.T) {
		// doc-a's longer queue of quick consultations estimates the same
		// minutes as doc-b's shorter queue of slow ones.
		selection, err := sel.Assign([]DoctorLoad{
			{DoctorID: "doc-a", Available: true, QueueLength: 2, AvgConsultationMinutes: 10, MaxPerDay: 40},
			{DoctorID: "doc-b", Available: true, QueueLength: 1, AvgConsultationMinutes: 20, MaxPerDay: 40},
		}, 0, selectorNow)
		require.NoError(t, err)
		assert.Equal(t, "doc-b", selection.DoctorID)
	})

	t.Run("lexicographic doctor ID breaks full ties", func(t *testing.T) {
		selection, err := sel.Assign([]DoctorLoad{
			{DoctorID: "doc-b", Available: true, QueueLength: 1, AvgConsultationMinutes: 15, MaxPerDay: 40},
			{DoctorID: "doc-a", Available: true, QueueLength: 1, AvgConsultationMinutes: 15, MaxPerDay: 40},
		}, 0, selectorNow)
		require.NoError(t, err)
		assert.Equal(t, "doc-a", selection.DoctorID)
	})
}

func TestSelector_FiltersIneligibleDoctors(t *testing.T) {
	sel := NewSelector(nil)

	selection, err := sel.Assign([]DoctorLoad{
		{DoctorID: "doc-busy", Available: false, QueueLength: 0, AvgConsultationMinutes: 10, MaxPerDay: 40},
		{DoctorID: "doc-full", Available: true, QueueLength: 0, AvgConsultationMinutes: 10, ServedToday: 40, MaxPerDay: 40},
		{DoctorID: "doc-ok", Available: true, QueueLength: 9, AvgConsultationMinutes: 30, MaxPerDay: 40},
	}, 0, selectorNow)
	require.NoError(t, err)

	assert.Equal(t, "doc-ok", selection.DoctorID)
}

func TestSelector_QueueAtRemainingCapacityIsIneligible(t *testing.T) {
	sel := NewSelector(nil)

	// 38 served + 2 queued = 40: accepting one more would break the
	// capacity invariant.
	_, err := sel.Assign([]DoctorLoad{
		{DoctorID: "doc-a", Available: true, QueueLength: 2, AvgConsultationMinutes: 10, ServedToday: 38, MaxPerDay: 40},
	}, 0, selectorNow)

	assert.ErrorIs(t, err, ErrNoCapacity)
}

func TestSelector_NoCapacity(t *testing.T) {
	sel := NewSelector(nil)

	_, err := sel.Assign([]DoctorLoad{
		{DoctorID: "doc-a", Available: true, QueueLength: 0, AvgConsultationMinutes: 10, ServedToday: 20, MaxPerDay: 20},
		{DoctorID: "doc-b", Available: true, QueueLength: 0, AvgConsultationMinutes: 10, ServedToday: 20, MaxPerDay: 20},
	}, 0, selectorNow)

	assert.ErrorIs(t, err, ErrNoCapacity)
}

func TestSelector_UnknownDepartment(t *testing.T) {
	sel := NewSelector(nil)

	_, err := sel.Assign(nil, 0, selectorNow)

	assert.ErrorIs(t, err, ErrUnknownDepartment)
}
