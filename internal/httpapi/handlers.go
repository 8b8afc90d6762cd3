package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/alexanderramin/smena/internal/contract"
	"github.com/alexanderramin/smena/internal/domain"
)

func (s *Server) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	monthKey := r.URL.Query().Get("month")
	if monthKey == "" {
		now := s.clock()
		monthKey = domain.MonthKey(now.Year(), now.Month())
	}

	resp, err := s.schedules.MonthView(r.Context(), contract.MonthRequest{UserID: userID, MonthKey: monthKey})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.OK(resp))
}

func (s *Server) handleSetDay(w http.ResponseWriter, r *http.Request) {
	var req contract.SetDayRequest
	if !s.decode(w, r, &req) {
		return
	}
	day, err := s.schedules.SetDay(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.OK(day))
}

func (s *Server) handleApplyTemplate(w http.ResponseWriter, r *http.Request) {
	var req contract.ApplyTemplateRequest
	if !s.decode(w, r, &req) {
		return
	}
	month, err := s.schedules.ApplyTemplate(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.OK(month))
}

func (s *Server) handleRecordHours(w http.ResponseWriter, r *http.Request) {
	var req contract.RecordHoursRequest
	if !s.decode(w, r, &req) {
		return
	}
	rec, err := s.records.RecordHours(r.Context(), req)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.OK(rec))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUserID(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	period := domain.Period(r.URL.Query().Get("period"))

	resp, err := s.records.Stats(r.Context(), contract.StatsRequest{UserID: userID, Period: period})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.OK(resp))
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req contract.CommandRequest
	if !s.decode(w, r, &req) {
		return
	}
	outcome, err := s.commands.Execute(r.Context(), req)
	if errors.Is(err, domain.ErrNoMatch) {
		// Conversational chatter is not an error worth surfacing.
		writeJSON(w, http.StatusOK, contract.OK(&contract.CommandOutcome{Action: "no_match"}))
		return
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contract.OK(outcome))
}

// decode reads a JSON body, answering 400 on malformed input.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, contract.Fail("malformed request body"))
		return false
	}
	return true
}

// fail logs the error and writes the failure envelope with the mapped
// status code.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, contract.Fail(err.Error()))
}

func pathUserID(r *http.Request) (int64, error) {
	raw := r.PathValue("userID")
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID == 0 {
		return 0, domain.ErrMissingUser
	}
	return userID, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
