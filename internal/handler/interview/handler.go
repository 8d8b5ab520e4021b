package interview

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	interviewModel "github.com/akshtaaaaa/excel-mock-interviewer/internal/model/interview"
	interviewService "github.com/akshtaaaaa/excel-mock-interviewer/internal/service/interview"
)

// Handler exposes the interview flow over HTTP.
type Handler struct {
	svc *interviewService.Service
}

// New creates the interview handler.
func New(svc *interviewService.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the interview endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/tracks", h.handleListTracks)
	r.Post("/session", h.handleStartSession)
	r.Get("/session/{sessionID}", h.handleGetSession)
	r.Post("/session/{sessionID}/question", h.handleNextQuestion)
	r.Post("/session/{sessionID}/answer", h.handleSubmitAnswer)
	r.Post("/session/{sessionID}/skip", h.handleSkip)
	r.Get("/session/{sessionID}/summary", h.handleSummary)
	r.Get("/session/{sessionID}/report", h.handleReport)
}

func (h *Handler) handleListTracks(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Tracks())
}

func (h *Handler) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CandidateName string `json:"candidateName"`
		TrackID       string `json:"trackId"`
		MaxTurns      int    `json:"maxTurns"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.TrackID == "" {
		respondError(w, http.StatusBadRequest, "trackId is required")
		return
	}

	session, err := h.svc.StartSession(payload.CandidateName, payload.TrackID, payload.MaxTurns)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, session)
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.GetSession(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, session)
}

func (h *Handler) handleNextQuestion(w http.ResponseWriter, r *http.Request) {
	turn, err := h.svc.NextQuestion(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, turn)
}

func (h *Handler) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Answer string `json:"answer"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.Answer == "" {
		respondError(w, http.StatusBadRequest, "answer is required")
		return
	}

	turn, err := h.svc.SubmitAnswer(r.Context(), chi.URLParam(r, "sessionID"), payload.Answer)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, turn)
}

func (h *Handler) handleSkip(w http.ResponseWriter, r *http.Request) {
	turn, err := h.svc.SkipTurn(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, turn)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	now := time.Now()
	filename := fmt.Sprintf("excel_interview_results_%s.txt", now.Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(interviewService.BuildReport(summary, now)))
}

// statusFor maps domain errors onto HTTP statuses.
func statusFor(err error) int {
	var genErr *interviewService.GenerationError
	var evalErr *interviewService.EvaluationError

	switch {
	case errors.Is(err, interviewService.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, interviewModel.ErrNoOpenTurn),
		errors.Is(err, interviewModel.ErrTurnAlreadyOpen),
		errors.Is(err, interviewModel.ErrNoAnsweredTurn),
		errors.Is(err, interviewModel.ErrSessionComplete):
		return http.StatusConflict
	case errors.As(err, &genErr), errors.As(err, &evalErr):
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
