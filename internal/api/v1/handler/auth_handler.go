package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// AuthHandler handles the admin login endpoint
type AuthHandler struct {
	authService service.AuthService
	validate    *validator.Validate
	logger      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService, validate *validator.Validate, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, validate: validate, logger: logger}
}

// RegisterRoutes mounts the login route.
func (h *AuthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/admin/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		h.login(w, r)
	})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminLoginDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, validationDetail(err))
		return
	}
	admin, tok, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same message for unknown user and wrong password.
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error().Err(err).Msg("admin login failed")
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	writeJSON(w, http.StatusOK, dto.AdminLoginResponseDTO{
		ID:       admin.ID,
		Username: admin.Username,
		Token:    tok,
	})
}
