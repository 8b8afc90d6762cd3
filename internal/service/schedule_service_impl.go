package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/smena/internal/contract"
	"github.com/alexanderramin/smena/internal/db"
	"github.com/alexanderramin/smena/internal/domain"
	"github.com/alexanderramin/smena/internal/repository"
)

type scheduleService struct {
	schedules repository.ScheduleRepo
	records   repository.RecordRepo
	uow       db.UnitOfWork
	locks     *UserLocks
	opts      options
}

// NewScheduleService creates the schedule service. All mutating calls are
// serialized per user through locks.
func NewScheduleService(schedules repository.ScheduleRepo, records repository.RecordRepo, uow db.UnitOfWork, locks *UserLocks, opts ...Option) ScheduleService {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &scheduleService{schedules: schedules, records: records, uow: uow, locks: locks, opts: o}
}

func (s *scheduleService) GetOrCreateMonth(ctx context.Context, userID int64, year int, month time.Month) (schedule domain.MonthSchedule, err error) {
	started := s.opts.clock()
	defer func() {
		observe(ctx, s.opts.observer, "get_or_create_month", started, err, map[string]any{"user_id": userID})
	}()

	if userID == 0 {
		return nil, domain.ErrMissingUser
	}
	if err = domain.ValidateYearMonth(year, month); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	if err = s.ensureMonth(ctx, userID, year, month); err != nil {
		return nil, err
	}
	return s.schedules.GetMonth(ctx, userID, domain.MonthKey(year, month))
}

func (s *scheduleService) MonthView(ctx context.Context, req contract.MonthRequest) (resp *contract.MonthResponse, err error) {
	started := s.opts.clock()
	defer func() {
		observe(ctx, s.opts.observer, "month_view", started, err, map[string]any{"user_id": req.UserID, "month": req.MonthKey})
	}()

	year, month, err := domain.ParseMonthKey(req.MonthKey)
	if err != nil {
		return nil, err
	}
	schedule, err := s.GetOrCreateMonth(ctx, req.UserID, year, month)
	if err != nil {
		return nil, err
	}

	all, err := s.records.ListByUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]*domain.WorkRecord)
	for _, r := range domain.FilterByMonth(all, year, month) {
		byDate[r.Date] = r
	}

	days := make([]contract.DayView, 0, len(schedule))
	for _, date := range schedule.Dates() {
		view := contract.DayView{DayEntry: schedule[date]}
		if rec, ok := byDate[date]; ok {
			view.ActualStart = rec.StartTime
			view.ActualEnd = rec.EndTime
			view.ActualHours = rec.DecimalHours()
			view.Recorded = true
		}
		days = append(days, view)
	}

	return &contract.MonthResponse{
		MonthKey: req.MonthKey,
		Days:     days,
		Stats:    domain.ComputeMonthStats(schedule),
	}, nil
}

func (s *scheduleService) SetDay(ctx context.Context, req contract.SetDayRequest) (entry *domain.DayEntry, err error) {
	started := s.opts.clock()
	defer func() {
		observe(ctx, s.opts.observer, "set_day", started, err, map[string]any{"user_id": req.UserID, "date": req.Date})
	}()

	if req.UserID == 0 {
		return nil, domain.ErrMissingUser
	}
	day, err := domain.NewDayEntry(req.Date, req.Working, req.StartTime, req.EndTime, req.Notes)
	if err != nil {
		return nil, err
	}
	date, _ := domain.ParseDate(req.Date)

	unlock := s.locks.Lock(req.UserID)
	defer unlock()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSchedules := repository.NewSQLiteScheduleRepo(tx)
		if err := ensureMonthTx(ctx, txSchedules, req.UserID, date.Year(), date.Month()); err != nil {
			return err
		}
		return txSchedules.UpsertDay(ctx, req.UserID, day)
	})
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func (s *scheduleService) ApplyTemplate(ctx context.Context, req contract.ApplyTemplateRequest) (schedule domain.MonthSchedule, err error) {
	started := s.opts.clock()
	defer func() {
		observe(ctx, s.opts.observer, "apply_template", started, err, map[string]any{"user_id": req.UserID, "month": req.MonthKey})
	}()

	if req.UserID == 0 {
		return nil, domain.ErrMissingUser
	}
	if _, _, err = domain.ParseMonthKey(req.MonthKey); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(req.UserID)
	defer unlock()

	var updated domain.MonthSchedule
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSchedules := repository.NewSQLiteScheduleRepo(tx)

		count, err := txSchedules.CountDays(ctx, req.UserID, req.MonthKey)
		if err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("%s: %w", req.MonthKey, domain.ErrMonthNotFound)
		}

		month, err := txSchedules.GetMonth(ctx, req.UserID, req.MonthKey)
		if err != nil {
			return err
		}

		for _, date := range month.Dates() {
			day, _ := domain.ParseDate(date)
			slot, ok := req.Template[int(day.Weekday())]
			if !ok {
				continue
			}
			entry, err := domain.NewDayEntry(date, slot.Working, slot.StartTime, slot.EndTime, slot.Notes)
			if err != nil {
				return err
			}
			if err := txSchedules.UpsertDay(ctx, req.UserID, entry); err != nil {
				return err
			}
			month[date] = entry
		}
		updated = month
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ensureMonth creates the dense month inside its own transaction when it
// does not exist yet.
func (s *scheduleService) ensureMonth(ctx context.Context, userID int64, year int, month time.Month) error {
	count, err := s.schedules.CountDays(ctx, userID, domain.MonthKey(year, month))
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return ensureMonthTx(ctx, repository.NewSQLiteScheduleRepo(tx), userID, year, month)
	})
}

// ensureMonthTx synthesizes the dense all-non-working month within an
// existing transaction if no day rows exist for it.
func ensureMonthTx(ctx context.Context, schedules repository.ScheduleRepo, userID int64, year int, month time.Month) error {
	key := domain.MonthKey(year, month)
	count, err := schedules.CountDays(ctx, userID, key)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	fresh, err := domain.NewMonthSchedule(year, month)
	if err != nil {
		return err
	}
	entries := make([]domain.DayEntry, 0, len(fresh))
	for _, date := range fresh.Dates() {
		entries = append(entries, fresh[date])
	}
	return schedules.InsertDays(ctx, userID, entries)
}
