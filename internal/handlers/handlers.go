package handlers

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

// Store is the slice of the storage gateway the record handlers need.
type Store interface {
	ListCohorts(ctx context.Context) ([]models.Cohort, error)
	GetCohort(ctx context.Context, id string) (*models.Cohort, error)
	CreateCohort(ctx context.Context, attrs models.Attributes) (*models.Cohort, error)
	UpdateCohort(ctx context.Context, id string, attrs models.Attributes) (*models.Cohort, error)
	ListStudents(ctx context.Context) ([]models.Student, error)
}

type Handler struct {
	store Store
}

func New(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	// Cohorts
	r.Get("/api/cohorts", h.GetCohorts)
	r.Post("/api/cohorts", h.CreateCohort)
	r.Get("/api/cohorts/{id}", h.GetCohort)
	r.Put("/api/cohorts/{id}", h.UpdateCohort)

	// Students
	r.Get("/api/students", h.GetStudents)
}

// GetCohorts lists all cohorts
// @Summary List cohorts
// @Tags cohorts
// @Produce json
// @Success 200 {array} object "All cohorts"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/cohorts [get]
func (h *Handler) GetCohorts(w http.ResponseWriter, r *http.Request) {
	cohorts, err := h.store.ListCohorts(r.Context())
	if err != nil {
		log.Printf("Error retrieving cohorts: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve cohorts")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cohorts)
}

// GetCohort returns one cohort by id
// @Summary Get cohort
// @Tags cohorts
// @Produce json
// @Param id path string true "Cohort id"
// @Success 200 {object} object "Cohort"
// @Failure 404 {object} map[string]string "Cohort not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/cohorts/{id} [get]
func (h *Handler) GetCohort(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cohort, err := h.store.GetCohort(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrCohortNotFound) {
			writeError(w, http.StatusNotFound, "Cohort not found")
			return
		}
		log.Printf("Error retrieving cohort %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed retrieving specific Cohort")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cohort)
}

// CreateCohort creates a cohort from the request document
// @Summary Create cohort
// @Tags cohorts
// @Accept json
// @Produce json
// @Param cohort body object true "Cohort fields"
// @Success 201 {object} object "Created cohort"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/cohorts [post]
func (h *Handler) CreateCohort(w http.ResponseWriter, r *http.Request) {
	attrs, err := decodeAttributes(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cohort, err := h.store.CreateCohort(r.Context(), attrs)
	if err != nil {
		log.Printf("Error creating cohort: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create cohort")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(cohort)
}

// UpdateCohort merges partial fields into an existing cohort
// @Summary Update cohort
// @Tags cohorts
// @Accept json
// @Produce json
// @Param id path string true "Cohort id"
// @Param cohort body object true "Partial cohort fields"
// @Success 200 {object} object "Updated cohort"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Cohort not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/cohorts/{id} [put]
func (h *Handler) UpdateCohort(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	attrs, err := decodeAttributes(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cohort, err := h.store.UpdateCohort(r.Context(), id, attrs)
	if err != nil {
		if errors.Is(err, storage.ErrCohortNotFound) {
			writeError(w, http.StatusNotFound, "Cohort not found")
			return
		}
		log.Printf("Error updating cohort %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to update cohort")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cohort)
}

// GetStudents lists all students
// @Summary List students
// @Tags students
// @Produce json
// @Success 200 {array} object "All students"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/students [get]
func (h *Handler) GetStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.store.ListStudents(r.Context())
	if err != nil {
		log.Printf("Error retrieving students: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve students")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(students)
}

// decodeAttributes reads the request body as an open document. The id is
// store-assigned, so any client-supplied id field is dropped.
func decodeAttributes(r *http.Request) (models.Attributes, error) {
	var attrs models.Attributes
	if err := json.NewDecoder(r.Body).Decode(&attrs); err != nil {
		return nil, err
	}
	delete(attrs, "id")
	delete(attrs, "_id")
	return attrs, nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
