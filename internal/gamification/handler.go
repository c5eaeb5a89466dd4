package gamification

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/20238643/UPSC-PrepHub/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the quiz-history and stats endpoints.
func (h *Handler) RegisterRoutes(api *mux.Router) {
	api.HandleFunc("/quiz-history", h.SubmitQuiz).Methods("POST")
	api.HandleFunc("/quiz-history/{email}", h.GetHistory).Methods("GET")
	api.HandleFunc("/stats/{email}", h.GetStats).Methods("GET")
}

func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: "Invalid request body."})
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Subject = strings.TrimSpace(req.Subject)

	resp, err := h.service.RecordQuizResult(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidSubmission):
			writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: "Missing required fields."})
		case errors.Is(err, models.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, models.MessageResponse{Message: "User not found."})
		default:
			log.Printf("[gamification] save quiz result for %s: %v", req.Email, err)
			writeJSON(w, http.StatusInternalServerError, models.MessageResponse{Message: "Server error saving quiz history."})
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(strings.ToLower(mux.Vars(r)["email"]))

	resp, err := h.service.GetHistory(r.Context(), email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, models.MessageResponse{Message: "User not found."})
			return
		}
		log.Printf("[gamification] fetch history for %s: %v", email, err)
		writeJSON(w, http.StatusInternalServerError, models.MessageResponse{Message: "Server error fetching quiz history."})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(strings.ToLower(mux.Vars(r)["email"]))

	resp, err := h.service.GetStats(r.Context(), email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, models.MessageResponse{Message: "User not found."})
			return
		}
		log.Printf("[gamification] fetch stats for %s: %v", email, err)
		writeJSON(w, http.StatusInternalServerError, models.MessageResponse{Message: "Server error fetching stats."})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
