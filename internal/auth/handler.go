package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/20238643/UPSC-PrepHub/internal/gamification"
	"github.com/20238643/UPSC-PrepHub/internal/middleware"
	"github.com/20238643/UPSC-PrepHub/internal/models"
	"github.com/20238643/UPSC-PrepHub/internal/store"
)

type Handler struct {
	store  store.UserStore
	secret []byte
}

func NewHandler(st store.UserStore, secret []byte) *Handler {
	return &Handler{store: st, secret: secret}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: "Invalid request body."})
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Name = strings.TrimSpace(req.Name)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: "All fields are required."})
		return
	}

	if len(req.Password) < 8 {
		writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: "Password must be at least 8 characters."})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.MessageResponse{Message: "Server error during registration."})
		return
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		QuizHistory:  []models.QuizAttempt{},
		CreatedAt:    time.Now(),
	}

	if err := h.store.Create(r.Context(), user); err != nil {
		if errors.Is(err, models.ErrEmailExists) {
			writeJSON(w, http.StatusConflict, models.MessageResponse{Message: "An account with this email already exists."})
			return
		}
		log.Printf("[auth] create user %s: %v", req.Email, err)
		writeJSON(w, http.StatusInternalServerError, models.MessageResponse{Message: "Server error during registration."})
		return
	}

	token, err := h.generateToken(user.Email)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.MessageResponse{Message: "Server error during registration."})
		return
	}

	writeJSON(w, http.StatusCreated, models.RegisterResponse{
		Success: true,
		Message: fmt.Sprintf("Welcome %s! Registration successful.", user.Name),
		Token:   token,
		User:    user.Info(),
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: "Invalid request body."})
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, models.MessageResponse{Message: "Email and password are required."})
		return
	}

	user, err := h.store.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			writeJSON(w, http.StatusUnauthorized, models.MessageResponse{Message: "Invalid email or password."})
			return
		}
		log.Printf("[auth] lookup user %s: %v", req.Email, err)
		writeJSON(w, http.StatusInternalServerError, models.MessageResponse{Message: "Server error during login."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeJSON(w, http.StatusUnauthorized, models.MessageResponse{Message: "Invalid email or password."})
		return
	}

	token, err := h.generateToken(user.Email)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.MessageResponse{Message: "Server error during login."})
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    gamification.Profile(user),
	})
}

func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.MessageResponse{Message: "Authentication required."})
		return
	}

	user, err := h.store.GetByEmail(r.Context(), email)
	if err != nil {
		writeJSON(w, http.StatusNotFound, models.MessageResponse{Message: "User not found."})
		return
	}

	writeJSON(w, http.StatusOK, user.Info())
}

func (h *Handler) generateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(72 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.secret)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
