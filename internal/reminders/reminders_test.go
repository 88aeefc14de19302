package reminders

import (
	"fmt"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/vigor/internal/constants"
	vigorerrors "github.com/julianstephens/vigor/internal/errors"
	"github.com/julianstephens/vigor/internal/models"
)

type call struct {
	weekly    bool
	weekday   time.Weekday
	timeOfDay string
	payload   Payload
}

type fakeFacility struct {
	calls      []call
	cancels    int
	failTimes  map[string]error
	cancelsErr error
}

func newFakeFacility() *fakeFacility {
	return &fakeFacility{failTimes: make(map[string]error)}
}

func (f *fakeFacility) CancelAll() error {
	if f.cancelsErr != nil {
		return f.cancelsErr
	}
	f.cancels++
	f.calls = nil
	return nil
}

func (f *fakeFacility) ScheduleDaily(timeOfDay string, p Payload) error {
	if err := f.failTimes[timeOfDay]; err != nil {
		return err
	}
	f.calls = append(f.calls, call{timeOfDay: timeOfDay, payload: p})
	return nil
}

func (f *fakeFacility) ScheduleWeekly(weekday time.Weekday, timeOfDay string, p Payload) error {
	if err := f.failTimes[timeOfDay]; err != nil {
		return err
	}
	f.calls = append(f.calls, call{weekly: true, weekday: weekday, timeOfDay: timeOfDay, payload: p})
	return nil
}

func wd(d time.Weekday) *time.Weekday { return &d }

func testItems() []models.Item {
	return []models.Item{
		{
			ID:        "it-walk",
			RoutineID: "rt-1",
			Name:      "Evening walk",
			Recurrence: models.Recurrence{
				Kind:    constants.RecurrenceWeekly,
				Entries: []models.ScheduleEntry{{TimeOfDay: "18:30", Weekday: wd(time.Wednesday)}},
			},
		},
		{
			ID:        "it-stretch",
			RoutineID: "rt-1",
			Name:      "Morning stretch",
			Recurrence: models.Recurrence{
				Kind:    constants.RecurrenceDaily,
				Entries: []models.ScheduleEntry{{TimeOfDay: "07:00"}},
			},
		},
		{
			ID:     "it-surprise",
			GoalID: "gl-1",
			Name:   "Surprise check",
			Recurrence: models.Recurrence{
				Kind:    constants.RecurrenceDaily,
				Entries: []models.ScheduleEntry{{TimeOfDay: constants.RandomTime}},
			},
		},
	}
}

func TestRescheduleIsCancelAndReplace(t *testing.T) {
	facility := newFakeFacility()
	sched := New(facility)

	res, err := sched.Reschedule(testItems())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Scheduled)
	assert.Equal(t, 1, res.Skipped)
	assert.Empty(t, res.Errors)

	// A second pass with a smaller item set leaves only the second set.
	res, err = sched.Reschedule(testItems()[:1])
	require.NoError(t, err)
	assert.Equal(t, 1, res.Scheduled)
	assert.Equal(t, 2, facility.cancels)
	require.Len(t, facility.calls, 1)
	assert.Equal(t, "it-walk", facility.calls[0].payload.ItemID)
}

func TestRescheduleAbortsWhenCancelFails(t *testing.T) {
	facility := newFakeFacility()
	facility.cancelsErr = fmt.Errorf("facility down")

	_, err := New(facility).Reschedule(testItems())
	require.Error(t, err)
	assert.Empty(t, facility.calls)
}

func TestReschedulePerTriggerFailureDoesNotAbortBatch(t *testing.T) {
	facility := newFakeFacility()
	facility.failTimes["07:00"] = fmt.Errorf("slot rejected")

	res, err := New(facility).Reschedule(testItems())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Scheduled)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Error(), "it-stretch")
}

func TestReschedulePermissionDenied(t *testing.T) {
	facility := newFakeFacility()
	denied := vigorerrors.NewPermission("schedule reminder", fmt.Errorf("denied by OS"))
	facility.failTimes["07:00"] = denied
	facility.failTimes["18:30"] = denied

	res, err := New(facility).Reschedule(testItems())
	require.NoError(t, err)

	assert.Equal(t, 0, res.Scheduled)
	assert.Len(t, res.Errors, 2)
}

func TestPlanOrderingAndWeekdays(t *testing.T) {
	triggers, skipped := New(nil).Plan(testItems())

	assert.Equal(t, 1, skipped)
	require.Len(t, triggers, 2)
	assert.Equal(t, "07:00", triggers[0].TimeOfDay)
	assert.False(t, triggers[0].Weekly)
	assert.Equal(t, "18:30", triggers[1].TimeOfDay)
	assert.True(t, triggers[1].Weekly)
	assert.Equal(t, time.Wednesday, triggers[1].Weekday)
}

func TestFormatPlanGolden(t *testing.T) {
	triggers, skipped := New(nil).Plan(testItems())

	g := goldie.New(t)
	g.Assert(t, "plan_report", []byte(FormatPlan(triggers, skipped)))
}

func TestFormatPlanEmpty(t *testing.T) {
	out := FormatPlan(nil, 0)
	assert.Equal(t, "No reminders to schedule.\n", out)
}
