package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cohort-tools-backend/internal/models"
	"cohort-tools-backend/internal/storage"
)

// UserStore is the slice of the storage gateway the auth handlers need.
type UserStore interface {
	CreateUser(ctx context.Context, email, name, passwordHash string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type Handler struct {
	store UserStore
}

func NewHandler(store UserStore) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/signup", h.Signup)
	r.Post("/auth/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(Middleware)
		r.Get("/auth/verify", h.Verify)
	})
}

// Signup registers a new user account
// @Summary User signup
// @Description Validates email and password policy, hashes the password and creates the user
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.SignupRequest true "Signup payload"
// @Success 201 {object} map[string]interface{} "Created user"
// @Failure 400 {object} map[string]string "Validation failure or duplicate email"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		writeMessage(w, http.StatusBadRequest, "Provide email, password and name")
		return
	}

	if !ValidateEmail(req.Email) {
		writeMessage(w, http.StatusBadRequest, "Provide a valid email address.")
		return
	}

	if !ValidatePassword(req.Password) {
		writeMessage(w, http.StatusBadRequest,
			"Password must have at least 6 characters and contain at least one number, one lowercase and one uppercase letter.")
		return
	}

	passwordHash, err := HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	user, err := h.store.CreateUser(r.Context(), req.Email, req.Name, passwordHash)
	if err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			writeMessage(w, http.StatusBadRequest, "User already exists.")
			return
		}
		log.Printf("Error creating user: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{"user": user.Public()})
}

// Login authenticates a user and returns a signed auth token
// @Summary User login
// @Description Verifies email and password, returns a 6h bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Login credentials"
// @Success 200 {object} map[string]string "Auth token"
// @Failure 400 {object} map[string]string "Missing credentials"
// @Failure 401 {object} map[string]string "Unknown email or wrong password"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Provide email and password")
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			writeMessage(w, http.StatusUnauthorized, "User not found")
			return
		}
		log.Printf("Error looking up user: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	if !CheckPassword(req.Password, user.PasswordHash) {
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := GenerateToken(user)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"authToken": token})
}

// Verify returns the identity payload of a valid bearer token
// @Summary Verify token
// @Description Returns the token payload when the bearer token is valid
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "Token payload"
// @Failure 401 {string} string "Unauthorized"
// @Security BearerAuth
// @Router /auth/verify [get]
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"id":    claims.UserID,
		"email": claims.Email,
		"name":  claims.Name,
	})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
