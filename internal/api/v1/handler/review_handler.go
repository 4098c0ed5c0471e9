package handler

import (
	"encoding/json"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ReviewHandler handles review endpoints
type ReviewHandler struct {
	reviewService service.ReviewService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService service.ReviewService, validate *validator.Validate, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, validate: validate, logger: logger}
}

// RegisterRoutes mounts review routes. Both are public.
func (h *ReviewHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/reviews", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.listReviews(w, r)
		case http.MethodPost:
			h.createReview(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

func (h *ReviewHandler) createReview(w http.ResponseWriter, r *http.Request) {
	var req dto.ReviewCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, validationDetail(err))
		return
	}
	review := &model.Review{
		Name:    req.Name,
		Rating:  *req.Rating,
		Comment: req.Comment,
		Course:  req.Course,
	}
	created, err := h.reviewService.Create(r.Context(), review)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create review")
		writeError(w, http.StatusInternalServerError, "Failed to create review")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ReviewHandler) listReviews(w http.ResponseWriter, r *http.Request) {
	approved, err := boolFilter(r, "approved")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, map[string]string{"approved": "must be a boolean"})
		return
	}
	reviews, err := h.reviewService.List(r.Context(), approved)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list reviews")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}
