package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/smena/internal/command"
	"github.com/alexanderramin/smena/internal/contract"
	"github.com/alexanderramin/smena/internal/domain"
)

type commandService struct {
	schedules ScheduleService
	records   RecordService
	opts      options
}

// NewCommandService routes free-text chat lines through the parser and
// into the store operations.
func NewCommandService(schedules ScheduleService, records RecordService, opts ...Option) CommandService {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &commandService{schedules: schedules, records: records, opts: o}
}

func (s *commandService) Execute(ctx context.Context, req contract.CommandRequest) (outcome *contract.CommandOutcome, err error) {
	started := s.opts.clock()
	defer func() {
		// Chatter that matches nothing is expected; keep it out of the
		// error stream.
		logged := err
		if errors.Is(logged, domain.ErrNoMatch) {
			logged = nil
		}
		observe(ctx, s.opts.observer, "execute_command", started, logged, map[string]any{"user_id": req.UserID})
	}()

	if req.UserID == 0 {
		return nil, domain.ErrMissingUser
	}
	intent, err := command.Parse(req.Text, s.opts.clock())
	if err != nil {
		return nil, err
	}

	switch intent.Action {
	case command.ActionSetDay:
		day, err := s.schedules.SetDay(ctx, contract.SetDayRequest{
			UserID:    req.UserID,
			Date:      intent.Date,
			Working:   true,
			StartTime: intent.StartTime,
			EndTime:   intent.EndTime,
			Notes:     intent.Notes,
		})
		if err != nil {
			return nil, err
		}
		return &contract.CommandOutcome{Action: string(intent.Action), Day: day}, nil

	case command.ActionDayOff:
		day, err := s.schedules.SetDay(ctx, contract.SetDayRequest{
			UserID:  req.UserID,
			Date:    intent.Date,
			Working: false,
			Notes:   intent.Notes,
		})
		if err != nil {
			return nil, err
		}
		return &contract.CommandOutcome{Action: string(intent.Action), Day: day}, nil

	case command.ActionRecordToday:
		rec, err := s.records.RecordHours(ctx, contract.RecordHoursRequest{
			UserID:    req.UserID,
			Date:      intent.Date,
			StartTime: intent.StartTime,
			EndTime:   intent.EndTime,
			Notes:     intent.Notes,
		})
		if err != nil {
			return nil, err
		}
		return &contract.CommandOutcome{Action: string(intent.Action), Record: rec}, nil

	case command.ActionApplyTemplate:
		// A chat template block targets the current month, initializing
		// it on first use.
		now := s.opts.clock()
		if _, err := s.schedules.GetOrCreateMonth(ctx, req.UserID, now.Year(), now.Month()); err != nil {
			return nil, err
		}
		month, err := s.schedules.ApplyTemplate(ctx, contract.ApplyTemplateRequest{
			UserID:   req.UserID,
			MonthKey: domain.MonthKey(now.Year(), now.Month()),
			Template: intent.Template,
		})
		if err != nil {
			return nil, err
		}
		days := make([]domain.DayEntry, 0, len(month))
		for _, date := range month.Dates() {
			days = append(days, month[date])
		}
		return &contract.CommandOutcome{Action: string(intent.Action), Days: days}, nil
	}
	return nil, domain.ErrNoMatch
}
