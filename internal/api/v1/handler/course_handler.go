package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"app/internal/api/v1/dto"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CourseHandler handles course endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, validate *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{courseService: courseService, validate: validate, logger: logger}
}

// RegisterRoutes mounts course routes. Listing is public; create and delete
// require an admin session.
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	create := authMw(http.HandlerFunc(h.createCourse))
	mux.HandleFunc("/courses", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.listCourses(w, r)
		case http.MethodPost:
			create.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
	mux.Handle("/courses/", authMw(http.HandlerFunc(h.deleteCourse)))
}

func (h *CourseHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	var req dto.CourseCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, validationDetail(err))
		return
	}
	course := &model.Course{
		Name:        req.Name,
		Stream:      req.Stream,
		Type:        req.Type,
		Description: req.Description,
		Duration:    req.Duration,
		Features:    req.Features,
	}
	created, err := h.courseService.Create(r.Context(), course)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create course")
		writeError(w, http.StatusInternalServerError, "Failed to create course")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.List(r.Context(), r.URL.Query().Get("stream"))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list courses")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve courses")
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

func (h *CourseHandler) deleteCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/courses/")
	if err := h.courseService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			writeError(w, http.StatusNotFound, "Course not found")
			return
		}
		h.logger.Error().Err(err).Str("id", id).Msg("failed to delete course")
		writeError(w, http.StatusInternalServerError, "Failed to delete course")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Course deleted"})
}
