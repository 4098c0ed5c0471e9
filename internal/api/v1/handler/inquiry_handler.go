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

// InquiryHandler handles admission inquiry endpoints
type InquiryHandler struct {
	inquiryService service.InquiryService
	validate       *validator.Validate
	logger         zerolog.Logger
}

// NewInquiryHandler creates a new InquiryHandler
func NewInquiryHandler(inquiryService service.InquiryService, validate *validator.Validate, logger zerolog.Logger) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService, validate: validate, logger: logger}
}

// RegisterRoutes mounts inquiry routes. Submitting is public; the status
// update requires an admin session.
func (h *InquiryHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.HandleFunc("/inquiries", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.listInquiries(w, r)
		case http.MethodPost:
			h.createInquiry(w, r)
		default:
			http.NotFound(w, r)
		}
	})
	mux.Handle("/inquiries/", authMw(http.HandlerFunc(h.updateStatus)))
}

func (h *InquiryHandler) createInquiry(w http.ResponseWriter, r *http.Request) {
	var req dto.InquiryCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, validationDetail(err))
		return
	}
	inquiry := &model.Inquiry{
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            req.Email,
		CourseInterested: req.CourseInterested,
		Message:          req.Message,
	}
	created, err := h.inquiryService.Create(r.Context(), inquiry)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create inquiry")
		writeError(w, http.StatusInternalServerError, "Failed to create inquiry")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *InquiryHandler) listInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.inquiryService.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list inquiries")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve inquiries")
		return
	}
	writeJSON(w, http.StatusOK, inquiries)
}

func (h *InquiryHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/inquiries/")
	status := r.URL.Query().Get("status")
	if status == "" {
		writeError(w, http.StatusUnprocessableEntity, map[string]string{"status": "failed on the 'required' rule"})
		return
	}
	if err := h.inquiryService.UpdateStatus(r.Context(), id, status); err != nil {
		if errors.Is(err, service.ErrInquiryNotFound) {
			writeError(w, http.StatusNotFound, "Inquiry not found")
			return
		}
		h.logger.Error().Err(err).Str("id", id).Msg("failed to update inquiry status")
		writeError(w, http.StatusInternalServerError, "Failed to update inquiry")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Status updated"})
}
