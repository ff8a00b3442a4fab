package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybook/EB-BookingService/internal/domain"
)

func TestSweepQuery_MarkPastDue(t *testing.T) {
	now := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	query, args, err := sweepQuery(domain.StatusCurrent, domain.StatusPast, slotEndedCond(now))
	require.NoError(t, err)

	// Strict cutoff: a slot ending exactly at now is not yet past,
	// matching domain.TimeSlot.HasEnded
	assert.Contains(t, query, "ts.slot_date + ts.end_time < $3")
	assert.Contains(t, query, "UPDATE bookings b SET appointment_status = $1")
	assert.Contains(t, query, "FROM time_slots ts")
	assert.Contains(t, query, "b.slot_id = ts.slot_id")
	assert.Contains(t, query, "b.appointment_status = $2")
	assert.Equal(t, []interface{}{domain.StatusPast, domain.StatusCurrent, now}, args)
}

func TestSweepQuery_RevivePastDue(t *testing.T) {
	now := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	query, args, err := sweepQuery(domain.StatusPast, domain.StatusCurrent, slotNotEndedCond(now))
	require.NoError(t, err)

	// Exact complement of the mark condition, so a booking whose slot was
	// moved back into the future always flips back to current
	assert.Contains(t, query, "ts.slot_date + ts.end_time >= $3")
	assert.Contains(t, query, "b.appointment_status = $2")
	assert.Equal(t, []interface{}{domain.StatusCurrent, domain.StatusPast, now}, args)
}
