// Package httpapi exposes the schedule engine over a small JSON API. It
// is a thin translation layer: core errors become status codes and every
// body is wrapped in the contract.Result envelope.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/smena/internal/domain"
	"github.com/alexanderramin/smena/internal/repository"
	"github.com/alexanderramin/smena/internal/service"
)

// Server wires the service layer to HTTP handlers.
type Server struct {
	schedules service.ScheduleService
	records   service.RecordService
	commands  service.CommandService
	logger    *slog.Logger
	clock     func() time.Time
}

// Option customizes server construction.
type Option func(*Server)

// WithLogger attaches a request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock allows tests to control the default month and stats cutoffs.
func WithClock(clock func() time.Time) Option {
	return func(s *Server) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewServer creates an API server over the given services.
func NewServer(schedules service.ScheduleService, records service.RecordService, commands service.CommandService, opts ...Option) *Server {
	s := &Server{
		schedules: schedules,
		records:   records,
		commands:  commands,
		logger:    slog.New(slog.DiscardHandler),
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/schedule/{userID}", s.handleGetSchedule)
	mux.HandleFunc("POST /api/day/set", s.handleSetDay)
	mux.HandleFunc("POST /api/template/apply", s.handleApplyTemplate)
	mux.HandleFunc("POST /api/hours/record", s.handleRecordHours)
	mux.HandleFunc("GET /api/hours/stats/{userID}", s.handleStats)
	mux.HandleFunc("POST /api/command", s.handleCommand)
	return mux
}

// ListenAndServe blocks serving the API until the context is canceled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	s.logger.Info("api listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusFor maps core errors to HTTP status codes. The core never knows
// about HTTP; this is the only place that translation happens.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingUser),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidTime),
		errors.Is(err, domain.ErrDuplicateWeekday):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMonthNotFound),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
