// Package httpapi exposes the consultation engine over HTTP. Every
// endpoint is stateless: the caller submits the full answer history on
// each request, mirroring the engine's own contract.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/abhisek/dermatype/internal/classify"
	"github.com/abhisek/dermatype/internal/confidence"
	"github.com/abhisek/dermatype/internal/consult"
	"github.com/abhisek/dermatype/internal/questionbank"
	"github.com/abhisek/dermatype/internal/router"
	"github.com/abhisek/dermatype/internal/store"
)

// Server serves the consultation API over a fixed question bank and
// policy. The consultation repository is optional; without one,
// classifications are returned but not persisted.
type Server struct {
	bank          *questionbank.Bank
	policy        consult.Policy
	consultations store.ConsultationRepo
}

// NewServer creates a server. Pass a nil repo to disable persistence.
func NewServer(bank *questionbank.Bank, policy consult.Policy, consultations store.ConsultationRepo) *Server {
	return &Server{
		bank:          bank,
		policy:        policy,
		consultations: consultations,
	}
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/advance", s.handleAdvance)
		r.Post("/classify", s.handleClassify)
		if s.consultations != nil {
			r.Get("/consultations", s.handleListConsultations)
			r.Get("/consultations/{id}", s.handleGetConsultation)
		}
	})

	return r
}

// ConsultationRequest is the shared request body for advance and
// classify: the answers so far plus any explicit demographics.
type ConsultationRequest struct {
	Answers      consult.History      `json:"answers"`
	Demographics consult.Demographics `json:"demographics"`
}

// OptionPayload is one selectable answer in an API response.
type OptionPayload struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// QuestionPayload is the wire form of a question.
type QuestionPayload struct {
	ID      string          `json:"id"`
	Phase   string          `json:"phase"`
	Prompt  string          `json:"prompt"`
	Options []OptionPayload `json:"options"`
}

// AdvanceResponse reports either the next question or completion.
type AdvanceResponse struct {
	Done               bool                `json:"done"`
	Question           *QuestionPayload    `json:"question,omitempty"`
	EstimatedRemaining int                 `json:"estimated_remaining"`
	Snapshot           confidence.Snapshot `json:"snapshot"`
}

// ClassifyResponse carries the terminal result and, when persistence is
// enabled, the ID the consultation was saved under.
type ClassifyResponse struct {
	ConsultationID string           `json:"consultation_id,omitempty"`
	Result         *classify.Result `json:"result"`
}

// ConsultationPayload is the wire form of a stored consultation.
type ConsultationPayload struct {
	ID           string               `json:"id"`
	CreatedAt    time.Time            `json:"created_at"`
	Answers      consult.History      `json:"answers"`
	Demographics consult.Demographics `json:"demographics"`
	Result       *classify.Result     `json:"result"`
	Advice       string               `json:"advice,omitempty"`
}

// SummaryPayload is the wire form of a consultation listing entry.
type SummaryPayload struct {
	ID             string    `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Primary        string    `json:"primary"`
	Tier           string    `json:"tier"`
	Confidence     float64   `json:"confidence"`
	QuestionsAsked int       `json:"questions_asked"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	var req ConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res, err := router.Advance(s.bank, s.policy, req.Answers, req.Demographics)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := AdvanceResponse{
		Done:               res.Done,
		EstimatedRemaining: res.EstimatedRemaining,
		Snapshot:           res.Snapshot,
	}
	if res.Question != nil {
		resp.Question = toQuestionPayload(*res.Question)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req ConsultationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	demo := consult.DeriveDemographics(s.bank, req.Answers).Merge(req.Demographics)
	result, err := classify.Classify(s.bank, req.Answers, demo)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := ClassifyResponse{Result: result}
	if s.consultations != nil {
		c := &store.Consultation{
			ID:           uuid.NewString(),
			Answers:      req.Answers,
			Demographics: demo,
			Result:       result,
		}
		if err := s.consultations.Save(r.Context(), c); err != nil {
			http.Error(w, "failed to save consultation", http.StatusInternalServerError)
			return
		}
		resp.ConsultationID = c.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListConsultations(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	summaries, err := s.consultations.List(r.Context(), limit)
	if err != nil {
		http.Error(w, "failed to list consultations", http.StatusInternalServerError)
		return
	}

	out := make([]SummaryPayload, len(summaries))
	for i, sum := range summaries {
		out[i] = SummaryPayload{
			ID:             sum.ID,
			CreatedAt:      sum.CreatedAt,
			Primary:        sum.Primary,
			Tier:           sum.Tier,
			Confidence:     sum.Confidence,
			QuestionsAsked: sum.QuestionsAsked,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetConsultation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, err := s.consultations.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "consultation not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "failed to load consultation", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ConsultationPayload{
		ID:           c.ID,
		CreatedAt:    c.CreatedAt,
		Answers:      c.Answers,
		Demographics: c.Demographics,
		Result:       c.Result,
		Advice:       c.Advice,
	})
}

func toQuestionPayload(q questionbank.Question) *QuestionPayload {
	p := &QuestionPayload{
		ID:      q.ID,
		Phase:   q.Phase.String(),
		Prompt:  q.Prompt,
		Options: make([]OptionPayload, len(q.Options)),
	}
	for i, o := range q.Options {
		p.Options[i] = OptionPayload{ID: o.ID, Label: o.Label}
	}
	return p
}

// writeDomainError maps engine errors to status codes. Invalid answers
// are the caller's fault; everything else is ours.
func writeDomainError(w http.ResponseWriter, err error) {
	var invalid *consult.InvalidAnswerError
	if errors.As(err, &invalid) {
		http.Error(w, invalid.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
