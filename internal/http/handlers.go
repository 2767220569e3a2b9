package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"focusfinance/internal/core"
	"focusfinance/internal/store"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	profile := s.profile.Get(r.Context())
	data := struct {
		Theme    string
		Username string
		Avatar   string
	}{
		Theme:    string(s.theme.Current(r.Context())),
		Username: profile.Username,
		Avatar:   profile.AvatarURL(),
	}

	if err := s.templates.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Dashboard template execution failed", "error", err, "template", "dashboard.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleTransactions serves the collection: GET lists, POST creates.
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.ledger.List(r.Context()))
	case http.MethodPost:
		s.handleCreateTransaction(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// createTransactionRequest keeps the amount raw so both JSON numbers and
// quoted strings ("12,50") pass through the same parser.
type createTransactionRequest struct {
	Type        string          `json:"type"`
	Amount      json.RawMessage `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.WarnContext(r.Context(), "Malformed transaction payload", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amountStr := strings.Trim(strings.TrimSpace(string(req.Amount)), `"`)
	amount, err := core.ParseAmount(amountStr)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid amount")
		return
	}

	tx, err := s.ledger.Add(r.Context(), store.AddParams{
		Type:        core.TransactionType(strings.TrimSpace(req.Type)),
		Amount:      amount,
		Category:    sanitizeInput(req.Category),
		Description: sanitizeInput(req.Description),
		Date:        strings.TrimSpace(req.Date),
	})
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, tx)
}

// handleTransactionByID serves DELETE /api/transactions/{id}. Deleting an
// unknown id still answers 204; the ledger is unchanged either way.
func (s *Server) handleTransactionByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", "DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/transactions/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	s.ledger.Remove(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

type statsResponse struct {
	Totals    core.Totals           `json:"totals"`
	Trend     []core.TrendPoint     `json:"trend"`
	Breakdown []core.CategoryAmount `json:"breakdown"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ledger := s.ledger.List(r.Context())
	writeJSON(w, http.StatusOK, statsResponse{
		Totals:    core.ComputeTotals(ledger),
		Trend:     core.WeeklyTrend(ledger, time.Now()),
		Breakdown: core.ExpenseBreakdown(ledger),
	})
}

// handleCategories serves the curated category suggestions per type. The
// ledger accepts arbitrary labels; these only feed the entry form.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{
		"income":  core.IncomeCategories,
		"expense": core.ExpenseCategories,
	})
}

func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	text := s.advisor.Refresh(r.Context(), s.ledger.List(r.Context()))
	writeJSON(w, http.StatusOK, map[string]string{"advice": text})
}

type profileResponse struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	ProfilePic string `json:"profilePic,omitempty"`
	AvatarURL  string `json:"avatarUrl"`
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		p := s.profile.Get(r.Context())
		writeJSON(w, http.StatusOK, profileResponse{
			Username:   p.Username,
			Email:      p.Email,
			ProfilePic: p.ProfilePic,
			AvatarURL:  p.AvatarURL(),
		})
	case http.MethodPut:
		var p core.Profile
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		p.Username = sanitizeInput(p.Username)
		p.Email = sanitizeInput(p.Email)
		if err := s.profile.Update(r.Context(), p); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		stored := s.profile.Get(r.Context())
		writeJSON(w, http.StatusOK, profileResponse{
			Username:   stored.Username,
			Email:      stored.Email,
			ProfilePic: stored.ProfilePic,
			AvatarURL:  stored.AvatarURL(),
		})
	default:
		w.Header().Set("Allow", "GET, PUT")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"theme": string(s.theme.Current(r.Context()))})
}

func (s *Server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	next := s.theme.Toggle(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"theme": string(next)})
}
