package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/smena/internal/command"
	"github.com/alexanderramin/smena/internal/contract"
	"github.com/alexanderramin/smena/internal/domain"
	"github.com/alexanderramin/smena/internal/repository"
	"github.com/alexanderramin/smena/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommandService(t *testing.T) (CommandService, ScheduleService, RecordService) {
	t.Helper()
	db := testutil.NewTestDB(t)
	scheduleRepo := repository.NewSQLiteScheduleRepo(db)
	recordRepo := repository.NewSQLiteRecordRepo(db)
	uow := testutil.NewTestUoW(db)
	locks := NewUserLocks()
	clock := testutil.FixedClock(fixedNow)

	schedules := NewScheduleService(scheduleRepo, recordRepo, uow, locks, WithClock(clock))
	records := NewRecordService(recordRepo, uow, locks, WithClock(clock))
	commands := NewCommandService(schedules, records, WithClock(clock))
	return commands, schedules, records
}

func TestCommandService_BareTimesRecordsToday(t *testing.T) {
	commands, _, records := newTestCommandService(t)
	ctx := context.Background()

	outcome, err := commands.Execute(ctx, contract.CommandRequest{UserID: 1, Text: "09:00 18:30 смена"})
	require.NoError(t, err)
	assert.Equal(t, string(command.ActionRecordToday), outcome.Action)
	require.NotNil(t, outcome.Record)
	assert.Equal(t, "2024-05-22", outcome.Record.Date)
	assert.Equal(t, 9, outcome.Record.Hours)
	assert.Equal(t, "смена", outcome.Record.Notes)

	stats, err := records.Stats(ctx, contract.StatsRequest{UserID: 1, Period: domain.PeriodAll})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Summary.TotalRecords)
}

func TestCommandService_DatedShiftSetsDay(t *testing.T) {
	commands, schedules, _ := newTestCommandService(t)
	ctx := context.Background()

	outcome, err := commands.Execute(ctx, contract.CommandRequest{UserID: 1, Text: "2024-05-25 10:00 19:00"})
	require.NoError(t, err)
	assert.Equal(t, string(command.ActionSetDay), outcome.Action)
	require.NotNil(t, outcome.Day)
	assert.Equal(t, 9.0, outcome.Day.Hours)

	month, err := schedules.GetOrCreateMonth(ctx, 1, 2024, time.May)
	require.NoError(t, err)
	assert.True(t, month["2024-05-25"].Working)
}

func TestCommandService_DayOff(t *testing.T) {
	commands, schedules, _ := newTestCommandService(t)
	ctx := context.Background()

	outcome, err := commands.Execute(ctx, contract.CommandRequest{UserID: 1, Text: "2024-05-26 выходной"})
	require.NoError(t, err)
	assert.Equal(t, string(command.ActionDayOff), outcome.Action)
	require.NotNil(t, outcome.Day)
	assert.False(t, outcome.Day.Working)
	assert.Equal(t, command.DayOffLabel, outcome.Day.Notes)

	month, err := schedules.GetOrCreateMonth(ctx, 1, 2024, time.May)
	require.NoError(t, err)
	assert.Equal(t, command.DayOffLabel, month["2024-05-26"].Notes)
}

func TestCommandService_TemplateBlockTargetsCurrentMonth(t *testing.T) {
	commands, _, _ := newTestCommandService(t)
	ctx := context.Background()

	outcome, err := commands.Execute(ctx, contract.CommandRequest{
		UserID: 1,
		Text:   "пн 09:00 18:00\nвт 09:00 18:00",
	})
	require.NoError(t, err)
	assert.Equal(t, string(command.ActionApplyTemplate), outcome.Action)
	require.Len(t, outcome.Days, 31)

	byDate := make(map[string]domain.DayEntry, len(outcome.Days))
	for _, day := range outcome.Days {
		byDate[day.Date] = day
	}
	assert.True(t, byDate["2024-05-06"].Working)  // Monday
	assert.True(t, byDate["2024-05-07"].Working)  // Tuesday
	assert.False(t, byDate["2024-05-08"].Working) // Wednesday untouched
}

func TestCommandService_ChatterReturnsNoMatch(t *testing.T) {
	commands, _, _ := newTestCommandService(t)

	_, err := commands.Execute(context.Background(), contract.CommandRequest{UserID: 1, Text: "привет, как дела?"})
	assert.ErrorIs(t, err, domain.ErrNoMatch)
}

func TestCommandService_MissingUser(t *testing.T) {
	commands, _, _ := newTestCommandService(t)

	_, err := commands.Execute(context.Background(), contract.CommandRequest{UserID: 0, Text: "09:00 18:00"})
	assert.ErrorIs(t, err, domain.ErrMissingUser)
}

func TestCommandService_BadTimeSurfacesInvalidTime(t *testing.T) {
	commands, _, _ := newTestCommandService(t)

	_, err := commands.Execute(context.Background(), contract.CommandRequest{UserID: 1, Text: "25:00 18:00"})
	assert.ErrorIs(t, err, domain.ErrInvalidTime)
}
