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

// NoticeHandler handles notice-board endpoints
type NoticeHandler struct {
	noticeService service.NoticeService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewNoticeHandler creates a new NoticeHandler
func NewNoticeHandler(noticeService service.NoticeService, validate *validator.Validate, logger zerolog.Logger) *NoticeHandler {
	return &NoticeHandler{noticeService: noticeService, validate: validate, logger: logger}
}

// RegisterRoutes mounts notice routes. Listing is public; create and delete
// require an admin session.
func (h *NoticeHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	create := authMw(http.HandlerFunc(h.createNotice))
	mux.HandleFunc("/notices", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.listNotices(w, r)
		case http.MethodPost:
			create.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
	mux.Handle("/notices/", authMw(http.HandlerFunc(h.deleteNotice)))
}

func (h *NoticeHandler) createNotice(w http.ResponseWriter, r *http.Request) {
	var req dto.NoticeCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, validationDetail(err))
		return
	}
	notice := &model.Notice{
		Title:    req.Title,
		Content:  req.Content,
		Priority: req.Priority,
	}
	created, err := h.noticeService.Create(r.Context(), notice)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create notice")
		writeError(w, http.StatusInternalServerError, "Failed to create notice")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *NoticeHandler) listNotices(w http.ResponseWriter, r *http.Request) {
	active, err := boolFilter(r, "active")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, map[string]string{"active": "must be a boolean"})
		return
	}
	notices, err := h.noticeService.List(r.Context(), active)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list notices")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve notices")
		return
	}
	writeJSON(w, http.StatusOK, notices)
}

func (h *NoticeHandler) deleteNotice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/notices/")
	if err := h.noticeService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNoticeNotFound) {
			writeError(w, http.StatusNotFound, "Notice not found")
			return
		}
		h.logger.Error().Err(err).Str("id", id).Msg("failed to delete notice")
		writeError(w, http.StatusInternalServerError, "Failed to delete notice")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Notice deleted"})
}
