package service

import (
	"context"

	"github.com/alexanderramin/smena/internal/contract"
	"github.com/alexanderramin/smena/internal/db"
	"github.com/alexanderramin/smena/internal/domain"
	"github.com/alexanderramin/smena/internal/repository"
	"github.com/google/uuid"
)

type recordService struct {
	records repository.RecordRepo
	uow     db.UnitOfWork
	locks   *UserLocks
	opts    options
}

// NewRecordService creates the record service. The flat log is a
// projection of the canonical month maps: recording hours mirrors the day
// into the month schedule inside the same transaction.
func NewRecordService(records repository.RecordRepo, uow db.UnitOfWork, locks *UserLocks, opts ...Option) RecordService {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &recordService{records: records, uow: uow, locks: locks, opts: o}
}

func (s *recordService) RecordHours(ctx context.Context, req contract.RecordHoursRequest) (record *domain.WorkRecord, err error) {
	started := s.opts.clock()
	defer func() {
		observe(ctx, s.opts.observer, "record_hours", started, err, map[string]any{"user_id": req.UserID, "date": req.Date})
	}()

	if req.UserID == 0 {
		return nil, domain.ErrMissingUser
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if req.StartTime == "" || req.EndTime == "" {
		return nil, domain.ErrInvalidTime
	}
	hours, minutes, total, err := domain.SplitHoursMinutes(req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	rec := &domain.WorkRecord{
		ID:           uuid.New().String(),
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Hours:        hours,
		Minutes:      minutes,
		TotalMinutes: total,
		Notes:        req.Notes,
		RecordedAt:   s.opts.clock().UTC(),
	}
	day, err := domain.NewDayEntry(req.Date, true, req.StartTime, req.EndTime, req.Notes)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(req.UserID)
	defer unlock()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRecords := repository.NewSQLiteRecordRepo(tx)
		txSchedules := repository.NewSQLiteScheduleRepo(tx)

		if err := txRecords.Upsert(ctx, req.UserID, rec); err != nil {
			return err
		}
		if err := ensureMonthTx(ctx, txSchedules, req.UserID, date.Year(), date.Month()); err != nil {
			return err
		}
		return txSchedules.UpsertDay(ctx, req.UserID, day)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *recordService) Stats(ctx context.Context, req contract.StatsRequest) (resp *contract.StatsResponse, err error) {
	started := s.opts.clock()
	defer func() {
		observe(ctx, s.opts.observer, "stats", started, err, map[string]any{"user_id": req.UserID, "period": string(req.Period)})
	}()

	if req.UserID == 0 {
		return nil, domain.ErrMissingUser
	}
	period := req.Period
	if period == "" {
		period = domain.PeriodMonth
	}
	if !domain.ValidPeriods[period] {
		// Unknown periods fall back to the unfiltered log, mirroring the
		// tracker's historical behavior.
		period = domain.PeriodAll
	}

	all, err := s.records.ListByUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	filtered := domain.FilterByPeriod(all, period, s.opts.clock())

	return &contract.StatsResponse{
		Period:  period,
		Summary: domain.Summarize(filtered),
		Records: filtered,
	}, nil
}
