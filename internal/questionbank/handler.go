package questionbank

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/20238643/UPSC-PrepHub/internal/models"
)

type Handler struct {
	bank *Bank
}

func NewHandler(bank *Bank) *Handler {
	return &Handler{bank: bank}
}

// RegisterRoutes mounts the question bank endpoints.
func (h *Handler) RegisterRoutes(api *mux.Router) {
	api.HandleFunc("/questions/{subject}", h.GetQuestions).Methods("GET")
	api.HandleFunc("/subjects", h.GetSubjects).Methods("GET")
}

func (h *Handler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	subject := mux.Vars(r)["subject"]

	questions, err := h.bank.Sample(subject, DefaultSampleSize)
	if err != nil {
		if errors.Is(err, models.ErrSubjectNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"error": fmt.Sprintf("No questions found for subject: %s", subject),
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Could not read questions database."})
		return
	}

	writeJSON(w, http.StatusOK, questions)
}

func (h *Handler) GetSubjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.SubjectsResponse{Subjects: h.bank.Subjects()})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
