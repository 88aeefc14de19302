package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/vigor/internal/constants"
)

func wd(d time.Weekday) *time.Weekday { return &d }

func TestRecurrenceValidate(t *testing.T) {
	tests := []struct {
		name    string
		rec     Recurrence
		wantErr bool
	}{
		{
			name:    "empty schedule is valid",
			rec:     Recurrence{},
			wantErr: false,
		},
		{
			name: "daily with clock time",
			rec: Recurrence{
				Kind:    constants.RecurrenceDaily,
				Entries: []ScheduleEntry{{TimeOfDay: "07:00"}},
			},
			wantErr: false,
		},
		{
			name: "daily with random sentinel",
			rec: Recurrence{
				Kind:    constants.RecurrenceDaily,
				Entries: []ScheduleEntry{{TimeOfDay: constants.RandomTime}},
			},
			wantErr: false,
		},
		{
			name: "weekly requires a weekday",
			rec: Recurrence{
				Kind:    constants.RecurrenceWeekly,
				Entries: []ScheduleEntry{{TimeOfDay: "07:00"}},
			},
			wantErr: true,
		},
		{
			name: "daily must not carry a weekday",
			rec: Recurrence{
				Kind:    constants.RecurrenceDaily,
				Entries: []ScheduleEntry{{TimeOfDay: "07:00", Weekday: wd(time.Monday)}},
			},
			wantErr: true,
		},
		{
			name: "malformed time of day",
			rec: Recurrence{
				Kind:    constants.RecurrenceDaily,
				Entries: []ScheduleEntry{{TimeOfDay: "7am"}},
			},
			wantErr: true,
		},
		{
			name: "unknown kind",
			rec: Recurrence{
				Kind:    "monthly",
				Entries: []ScheduleEntry{{TimeOfDay: "07:00"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRecurrenceDueOn(t *testing.T) {
	wednesday := time.Date(2026, 8, 26, 12, 0, 0, 0, time.Local)
	require.Equal(t, time.Wednesday, wednesday.Weekday())

	t.Run("unscheduled is never due", func(t *testing.T) {
		assert.False(t, Recurrence{}.DueOn(wednesday))
	})

	t.Run("daily is due every day", func(t *testing.T) {
		rec := Recurrence{
			Kind:    constants.RecurrenceDaily,
			Entries: []ScheduleEntry{{TimeOfDay: "07:00"}},
		}
		for i := range 7 {
			assert.True(t, rec.DueOn(wednesday.AddDate(0, 0, i)))
		}
	})

	t.Run("weekly is due only on matching weekdays", func(t *testing.T) {
		rec := Recurrence{
			Kind:    constants.RecurrenceWeekly,
			Entries: []ScheduleEntry{{TimeOfDay: "18:30", Weekday: wd(time.Wednesday)}},
		}
		assert.True(t, rec.DueOn(wednesday))
		assert.False(t, rec.DueOn(wednesday.AddDate(0, 0, 1)))
	})
}

func TestScheduleEntryMinutes(t *testing.T) {
	assert.Equal(t, 7*60, ScheduleEntry{TimeOfDay: "07:00"}.Minutes())
	assert.Equal(t, 18*60+30, ScheduleEntry{TimeOfDay: "18:30"}.Minutes())

	// Random sorts after every concrete clock time.
	random := ScheduleEntry{TimeOfDay: constants.RandomTime}
	assert.True(t, random.IsRandom())
	assert.Greater(t, random.Minutes(), ScheduleEntry{TimeOfDay: "23:59"}.Minutes())
}

func TestRecurrenceEarliestMinutes(t *testing.T) {
	rec := Recurrence{
		Kind: constants.RecurrenceDaily,
		Entries: []ScheduleEntry{
			{TimeOfDay: constants.RandomTime},
			{TimeOfDay: "18:30"},
			{TimeOfDay: "07:00"},
		},
	}
	assert.Equal(t, 7*60, rec.EarliestMinutes())

	randomOnly := Recurrence{
		Kind:    constants.RecurrenceDaily,
		Entries: []ScheduleEntry{{TimeOfDay: constants.RandomTime}},
	}
	assert.Equal(t, 24*60, randomOnly.EarliestMinutes())
}
