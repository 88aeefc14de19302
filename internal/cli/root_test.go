package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/vigor/internal/constants"
	"github.com/julianstephens/vigor/internal/models"
)

func TestParseWeekdays(t *testing.T) {
	got, err := ParseWeekdays("mon,Wednesday,5")
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, got)

	_, err = ParseWeekdays("funday")
	assert.Error(t, err)

	_, err = ParseWeekdays("7")
	assert.Error(t, err)
}

func TestParseScheduleDaily(t *testing.T) {
	rec, err := ParseSchedule("07:00, 18:30")
	require.NoError(t, err)

	assert.Equal(t, constants.RecurrenceDaily, rec.Kind)
	require.Len(t, rec.Entries, 2)
	assert.Equal(t, "07:00", rec.Entries[0].TimeOfDay)
	assert.Equal(t, "18:30", rec.Entries[1].TimeOfDay)
}

func TestParseScheduleWeekly(t *testing.T) {
	rec, err := ParseSchedule("wed@18:30")
	require.NoError(t, err)

	assert.Equal(t, constants.RecurrenceWeekly, rec.Kind)
	require.Len(t, rec.Entries, 1)
	require.NotNil(t, rec.Entries[0].Weekday)
	assert.Equal(t, time.Wednesday, *rec.Entries[0].Weekday)
	assert.Equal(t, "18:30", rec.Entries[0].TimeOfDay)
}

func TestParseScheduleRandom(t *testing.T) {
	rec, err := ParseSchedule("random")
	require.NoError(t, err)
	require.Len(t, rec.Entries, 1)
	assert.True(t, rec.Entries[0].IsRandom())
}

func TestParseScheduleEmpty(t *testing.T) {
	rec, err := ParseSchedule("  ")
	require.NoError(t, err)
	assert.False(t, rec.Scheduled())
}

func TestParseScheduleInvalid(t *testing.T) {
	_, err := ParseSchedule("noon")
	assert.Error(t, err)

	_, err = ParseSchedule("someday@07:00")
	assert.Error(t, err)
}

func TestFormatRecurrence(t *testing.T) {
	rec, err := ParseSchedule("07:00,18:30")
	require.NoError(t, err)
	assert.Equal(t, "daily at 07:00, 18:30", FormatRecurrence(rec))

	rec, err = ParseSchedule("wed@18:30")
	require.NoError(t, err)
	assert.Equal(t, "weekly at Wed 18:30", FormatRecurrence(rec))

	assert.Equal(t, "unscheduled", FormatRecurrence(models.Recurrence{}))
}
